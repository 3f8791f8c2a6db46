package spreadsheet

import (
	"fmt"

	"github.com/vendaflow/backoffice-api/internal/domain"
)

// SaleOrderSchema monta o schema da aba de pedidos. O número de canais ativos
// decide se a coluna de canal sobrevive; zero canais é erro de cadastro.
func SaleOrderSchema(flags FeatureFlags, websiteCount int) (Schema, error) {
	if err := flags.Validate(); err != nil {
		return Schema{}, err
	}
	if websiteCount == 0 {
		return Schema{}, fmt.Errorf("%w: a empresa não possui canal de venda ativo", domain.ErrConfiguration)
	}

	base := baseSaleOrderSchema(flags)
	steps := []transformStep{
		reduceSaleOrderProductIdentity,
		reduceSaleOrderServiceSegment,
		reduceSaleOrderWebsiteCount(websiteCount),
		reduceSaleOrderNoOrderCode,
	}
	return applySteps(base, steps)
}

func baseSaleOrderSchema(flags FeatureFlags) Schema {
	return Schema{
		Flags: flags,
		FormatValue: map[string]FormatFunc{
			HeaderOrderNumber:      FormatString,
			HeaderChannel:          FormatString,
			HeaderOrderDate:        FormatString,
			HeaderStatus:           FormatString,
			HeaderSKUVariant:       FormatString,
			HeaderOrderQuantity:    FormatInt,
			HeaderUnitFullPrice:    FormatPrice,
			HeaderUnitSalePrice:    FormatPrice,
			HeaderTotalPaidProduct: FormatPrice,
			HeaderCPFCNPJ:          FormatString,
			HeaderEmail:            FormatString,
			HeaderCustomerName:     FormatString,
			HeaderPhone:            FormatString,
			HeaderShipping:         FormatPrice,
			HeaderPaymentMethod:    FormatString,
			HeaderInstallments:     FormatInt,
		},
		RequiredColumns: map[string]struct{}{
			HeaderOrderNumber:      {},
			HeaderChannel:          {},
			HeaderOrderDate:        {},
			HeaderStatus:           {},
			HeaderSKUVariant:       {},
			HeaderOrderQuantity:    {},
			HeaderTotalPaidProduct: {},
		},
		Validations: []Validation{
			positiveValidation(HeaderUnitFullPrice, "Preço De Unitário"),
			positiveValidation(HeaderUnitSalePrice, "Preço Por Unitário"),
			positiveValidation(HeaderTotalPaidProduct, "Preço Pago Total Produto"),
			positiveValidation(HeaderShipping, "Frete Total Pedido"),
			{
				Header: HeaderCustomerName,
				Validate: func(row Row) bool {
					return MaxLength(row, HeaderCustomerName, 255)
				},
				ErrorMessage: func(row Row) string {
					return fmt.Sprintf("Nome %q deve possuir no máximo 255 caracteres", fmt.Sprint(row[HeaderCustomerName]))
				},
			},
			{
				Header: HeaderEmail,
				Validate: func(row Row) bool {
					return MaxLength(row, HeaderEmail, 100)
				},
				ErrorMessage: func(row Row) string {
					return fmt.Sprintf("Email %q deve possuir no máximo 100 caracteres", fmt.Sprint(row[HeaderEmail]))
				},
			},
			positiveValidation(HeaderInstallments, "Parcelas Pedido"),
		},
		ColumnKeys: map[string]string{
			KeySaleOrderNumber:     HeaderOrderNumber,
			KeyWebsiteName:         HeaderChannel,
			KeyDate:                HeaderOrderDate,
			KeyStatus:              HeaderStatus,
			KeySupplierSKUColor:    HeaderSKUVariant,
			KeySupplierSKUSize:     HeaderSKUVariant,
			KeyQuantity:            HeaderOrderQuantity,
			KeyFullPrice:           HeaderUnitFullPrice,
			KeySalePrice:           HeaderUnitSalePrice,
			KeyTotalPaidPrice:      HeaderTotalPaidProduct,
			KeyCPFCNPJ:             HeaderCPFCNPJ,
			KeyEmail:               HeaderEmail,
			KeyName:                HeaderCustomerName,
			KeyPhone:               HeaderPhone,
			KeyShippingRevenue:     HeaderShipping,
			KeyPaymentMethodType:   HeaderPaymentMethod,
			KeyPaymentInstallments: HeaderInstallments,
			KeyIsServiceOrderItem:  headerServiceOrderItemPlaceholder,
		},
	}
}

// reduceSaleOrderProductIdentity trata a ausência de código de produto. Sem
// catálogo, as colunas de item caem por completo; com catálogo, são renomeadas
// para a identidade por nome. As chaves internas são mantidas mesmo quando a
// coluna cai: o valor é gerado fora da planilha na etapa de importação.
func reduceSaleOrderProductIdentity(s Schema) (Schema, error) {
	if s.Flags.HasProductCode {
		return s, nil
	}

	if !s.Flags.HasCatalog {
		delete(s.FormatValue, HeaderSKUVariant)
		delete(s.FormatValue, HeaderOrderQuantity)
		delete(s.RequiredColumns, HeaderSKUVariant)
		delete(s.RequiredColumns, HeaderOrderQuantity)
		return s, nil
	}

	s.renameFormat(HeaderSKUVariant, HeaderProductName)
	s.renameFormat(HeaderOrderQuantity, HeaderProductQuantity)
	s.swapRequired(HeaderSKUVariant, HeaderProductName)
	s.swapRequired(HeaderOrderQuantity, HeaderProductQuantity)

	s.ColumnKeys[KeySupplierSKUColor] = HeaderProductName
	s.ColumnKeys[KeySupplierSKUSize] = HeaderProductName
	s.ColumnKeys[KeyQuantity] = HeaderProductQuantity
	return s, nil
}

// reduceSaleOrderServiceSegment adapta o schema para pedidos de serviço:
// preços unitários e frete caem, o total pago perde o vínculo com produto e a
// coluna de nome do serviço entra. A obrigatoriedade condicional entre item e
// serviço na mesma linha é validada fora do schema, na etapa de importação.
func reduceSaleOrderServiceSegment(s Schema) (Schema, error) {
	if !s.Flags.IsServiceSegment {
		return s, nil
	}

	if s.Flags.HasCatalog {
		if s.Flags.HasProductCode {
			s.renameFormat(HeaderSKUVariant, HeaderProductCode)
			s.renameFormat(HeaderOrderQuantity, HeaderProductQuantity)

			delete(s.RequiredColumns, HeaderSKUVariant)
			delete(s.RequiredColumns, HeaderOrderQuantity)

			s.ColumnKeys[KeySupplierSKUColor] = HeaderProductCode
			s.ColumnKeys[KeySupplierSKUSize] = HeaderProductCode
			s.ColumnKeys[KeyQuantity] = HeaderProductQuantity
		} else {
			delete(s.RequiredColumns, HeaderProductName)
			delete(s.RequiredColumns, HeaderProductQuantity)
		}
	}

	delete(s.FormatValue, HeaderUnitFullPrice)
	delete(s.FormatValue, HeaderUnitSalePrice)
	s.renameFormat(HeaderTotalPaidProduct, HeaderTotalPaid)
	delete(s.FormatValue, HeaderShipping)
	s.FormatValue[HeaderServiceName] = FormatString

	s.swapRequired(HeaderTotalPaidProduct, HeaderTotalPaid)

	s.dropValidation(HeaderUnitFullPrice)
	s.dropValidation(HeaderUnitSalePrice)
	s.Validations = append(s.Validations, positiveValidation(HeaderTotalPaid, "Preço Pago Total"))
	s.dropValidation(HeaderTotalPaidProduct)
	s.dropValidation(HeaderShipping)

	delete(s.ColumnKeys, KeyFullPrice)
	delete(s.ColumnKeys, KeySalePrice)
	s.ColumnKeys[KeyTotalPaidPrice] = HeaderTotalPaid
	delete(s.ColumnKeys, KeyShippingRevenue)
	s.ColumnKeys[KeyProductColorName] = HeaderServiceName
	return s, nil
}

// reduceSaleOrderWebsiteCount derruba a coluna de canal quando só existe um
// canal ativo; o nome do canal é resolvido na importação.
func reduceSaleOrderWebsiteCount(websiteCount int) transformStep {
	return func(s Schema) (Schema, error) {
		if websiteCount != 1 {
			return s, nil
		}
		delete(s.FormatValue, HeaderChannel)
		delete(s.RequiredColumns, HeaderChannel)
		return s, nil
	}
}

// reduceSaleOrderNoOrderCode derruba número e status do pedido quando a
// empresa não controla código de pedido; ambos são gerados na importação.
func reduceSaleOrderNoOrderCode(s Schema) (Schema, error) {
	if s.Flags.HasOrderCode {
		return s, nil
	}
	delete(s.FormatValue, HeaderOrderNumber)
	delete(s.FormatValue, HeaderStatus)
	delete(s.RequiredColumns, HeaderOrderNumber)
	delete(s.RequiredColumns, HeaderStatus)
	return s, nil
}
