package spreadsheet

import (
	"fmt"

	"github.com/vendaflow/backoffice-api/internal/domain"
)

// transformStep passo puro de redução do schema: recebe uma cópia, devolve a
// variante reduzida. A ordem dos passos é contrato e não pode mudar.
type transformStep func(Schema) (Schema, error)

func applySteps(base Schema, steps []transformStep) (Schema, error) {
	cur := base
	for _, step := range steps {
		next, err := step(cur.Clone())
		if err != nil {
			return Schema{}, err
		}
		cur = next
	}
	return cur, nil
}

func positiveValidation(header, label string) Validation {
	return Validation{
		Header: header,
		Validate: func(row Row) bool {
			return IsPositiveNumber(row, header)
		},
		ErrorMessage: func(row Row) string {
			return fmt.Sprintf("%s %q deve ser um número maior que zero", label, fmt.Sprint(row[header]))
		},
	}
}

// ProductSchema monta o schema da aba de produtos para as flags informadas.
// As dimensões humanizadas do vendedor entram como cabeçalhos; quando ainda
// não resolvidas, os placeholders padrão são usados.
func ProductSchema(flags FeatureFlags, dimensions [3]string) (Schema, error) {
	if err := flags.Validate(); err != nil {
		return Schema{}, err
	}
	if !flags.HasCatalog {
		return Schema{}, fmt.Errorf("%w: catálogo é obrigatório para gerar o modelo de produtos", domain.ErrConfiguration)
	}
	if dimensions == ([3]string{}) {
		dimensions = FakeDimensions
	}

	base := baseProductSchema(flags, dimensions)
	steps := []transformStep{
		reduceProductNoProductCode(dimensions),
		reduceProductServiceSegment,
	}
	return applySteps(base, steps)
}

func baseProductSchema(flags FeatureFlags, dimensions [3]string) Schema {
	s := Schema{
		Flags: flags,
		FormatValue: map[string]FormatFunc{
			HeaderSKU:          FormatString,
			HeaderSKUVariant:   FormatString,
			HeaderName:         FormatString,
			HeaderVariant:      FormatString,
			HeaderFullPrice:    FormatPrice,
			HeaderSpecialPrice: FormatPrice,
			HeaderGrossCost:    FormatFloat,
			dimensions[0]:      FormatString,
			dimensions[1]:      FormatString,
			dimensions[2]:      FormatString,
			HeaderAge:          FormatString,
			HeaderColor:        FormatString,
			HeaderSeason:       FormatString,
			HeaderStock:        FormatInt,
			HeaderLastReceipt:  FormatDateTime,
		},
		RequiredColumns: map[string]struct{}{
			HeaderSKU:        {},
			HeaderSKUVariant: {},
			HeaderVariant:    {},
			HeaderName:       {},
			HeaderFullPrice:  {},
			dimensions[0]:    {},
			dimensions[1]:    {},
			dimensions[2]:    {},
		},
		Validations: []Validation{
			{
				Header: HeaderVariant,
				Validate: func(row Row) bool {
					return NotBlank(row, HeaderVariant)
				},
				ErrorMessage: func(row Row) string {
					return fmt.Sprintf("Valor %q inválido para %q", fmt.Sprint(row[HeaderVariant]), HeaderVariant)
				},
			},
			positiveValidation(HeaderFullPrice, "Preço DE"),
			positiveValidation(HeaderSpecialPrice, "Preço POR"),
			positiveValidation(HeaderGrossCost, "Custo Médio Unitário"),
		},
		UniqueTogether: [][]string{
			{HeaderSKU, HeaderVariant},
			{HeaderSKUVariant},
		},
		ColumnKeys: map[string]string{
			KeySupplierSKUModel: HeaderSKU,
			KeySupplierSKUColor: HeaderSKU,
			KeySupplierSKUSize:  HeaderSKUVariant,
			KeySizeName:         HeaderVariant,
			KeyFullPrice:        HeaderFullPrice,
			KeySpecialPrice:     HeaderSpecialPrice,
			KeyGrossCost:        HeaderGrossCost,
			KeyAgeName:          HeaderAge,
			KeyColorName:        HeaderColor,
			KeySeason:           HeaderSeason,
			KeyProductColorName: HeaderName,
			KeyStock:            HeaderStock,
			KeyLastDate:         HeaderLastReceipt,
		},
	}
	return s
}

// reduceProductNoProductCode colapsa a identidade SKU/variante em um único
// nome de produto quando a empresa não trabalha com código próprio. As
// dimensões deixam de ser exigidas.
func reduceProductNoProductCode(dimensions [3]string) transformStep {
	return func(s Schema) (Schema, error) {
		if s.Flags.HasProductCode {
			return s, nil
		}

		delete(s.FormatValue, HeaderSKU)
		delete(s.FormatValue, HeaderSKUVariant)
		s.renameFormat(HeaderName, HeaderProductName)
		delete(s.FormatValue, HeaderVariant)
		for _, dim := range dimensions {
			delete(s.FormatValue, dim)
		}

		delete(s.RequiredColumns, HeaderSKU)
		delete(s.RequiredColumns, HeaderSKUVariant)
		s.swapRequired(HeaderName, HeaderProductName)
		delete(s.RequiredColumns, HeaderVariant)
		for _, dim := range dimensions {
			delete(s.RequiredColumns, dim)
		}

		s.dropValidation(HeaderVariant)

		s.UniqueTogether = [][]string{{HeaderProductName}}

		s.ColumnKeys[KeySupplierSKUModel] = HeaderProductName
		s.ColumnKeys[KeySupplierSKUColor] = HeaderProductName
		s.ColumnKeys[KeySupplierSKUSize] = HeaderProductName
		s.ColumnKeys[KeySizeName] = HeaderProductName
		s.ColumnKeys[KeyProductColorName] = HeaderProductName

		s.IgnoreDimensions = true
		return s, nil
	}
}

// reduceProductServiceSegment adapta o schema para empresas de serviços:
// custo vira custo de serviço e as colunas de moda caem. Quando a empresa
// usa código próprio, a identidade colapsa no código do produto.
func reduceProductServiceSegment(s Schema) (Schema, error) {
	if !s.Flags.IsServiceSegment {
		return s, nil
	}

	s.renameFormat(HeaderGrossCost, HeaderServiceCost)
	delete(s.FormatValue, HeaderAge)
	delete(s.FormatValue, HeaderColor)
	delete(s.FormatValue, HeaderSeason)
	delete(s.FormatValue, HeaderStock)
	delete(s.FormatValue, HeaderLastReceipt)

	s.Validations = append(s.Validations, positiveValidation(HeaderServiceCost, "Custo para o Serviço"))
	s.dropValidation(HeaderGrossCost)

	s.ColumnKeys[KeyGrossCost] = HeaderServiceCost
	delete(s.ColumnKeys, KeyAgeName)
	delete(s.ColumnKeys, KeyColorName)
	delete(s.ColumnKeys, KeySeason)
	delete(s.ColumnKeys, KeyStock)
	delete(s.ColumnKeys, KeyLastDate)

	if s.Flags.HasProductCode {
		s.renameFormat(HeaderSKU, HeaderProductCode)
		delete(s.FormatValue, HeaderSKUVariant)
		delete(s.FormatValue, HeaderVariant)

		s.swapRequired(HeaderSKU, HeaderProductCode)
		delete(s.RequiredColumns, HeaderSKUVariant)
		delete(s.RequiredColumns, HeaderVariant)

		s.dropValidation(HeaderVariant)

		s.UniqueTogether = [][]string{{HeaderProductCode}}

		s.ColumnKeys[KeySupplierSKUModel] = HeaderProductCode
		s.ColumnKeys[KeySupplierSKUColor] = HeaderProductCode
		s.ColumnKeys[KeySupplierSKUSize] = HeaderProductCode
		s.ColumnKeys[KeySizeName] = HeaderName
	}
	return s, nil
}
