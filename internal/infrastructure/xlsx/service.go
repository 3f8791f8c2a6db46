package xlsx

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/vendaflow/backoffice-api/internal/application/ports"
	"github.com/vendaflow/backoffice-api/internal/domain"
	"github.com/vendaflow/backoffice-api/internal/domain/spreadsheet"
)

// TemplateInput parâmetros já resolvidos pela camada de aplicação para a
// montagem do modelo: flags da empresa, aba ativa, canais, tamanhos
// cadastrados e os nomes finais das colunas de dimensão.
type TemplateInput struct {
	Flags            spreadsheet.FeatureFlags
	ActiveSheet      spreadsheet.ActiveSheet
	WebsiteNames     []string
	SupplierSKUSizes []string
	Dimensions       [3]string
}

// TemplateService transforma o modelo mestre na variante da empresa e o
// serializa para download. Com templatePath vazio o modelo mestre é
// construído em memória a cada geração.
type TemplateService struct {
	templatePath string
	log          zerolog.Logger
}

var _ ports.TemplateRenderer = (*TemplateService)(nil)

func NewTemplateService(templatePath string, log zerolog.Logger) *TemplateService {
	return &TemplateService{
		templatePath: templatePath,
		log:          log.With().Str("componente", "template_xlsx").Logger(),
	}
}

// Render implementa a porta de geração da camada de aplicação.
func (s *TemplateService) Render(in ports.TemplateRenderInput) ([]byte, error) {
	f, err := s.openMaster()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return s.Generate(f, TemplateInput{
		Flags:            in.Flags,
		ActiveSheet:      in.ActiveSheet,
		WebsiteNames:     in.WebsiteNames,
		SupplierSKUSizes: in.SupplierSKUSizes,
		Dimensions:       in.Dimensions,
	})
}

func (s *TemplateService) openMaster() (*excelize.File, error) {
	if s.templatePath == "" {
		return BuildMasterTemplate()
	}
	f, err := excelize.OpenFile(s.templatePath)
	if err != nil {
		return nil, fmt.Errorf("abrir modelo mestre: %w", err)
	}
	return f, nil
}

// Generate aplica as mutações sobre o workbook já aberto. A aba de opções é
// sempre atualizada primeiro: as validações das outras abas dependem dela.
func (s *TemplateService) Generate(f *excelize.File, in TemplateInput) ([]byte, error) {
	if err := in.Flags.Validate(); err != nil {
		return nil, err
	}
	if len(in.WebsiteNames) == 0 {
		return nil, fmt.Errorf("%w: a empresa não possui canal de venda ativo", domain.ErrConfiguration)
	}
	if in.Dimensions == ([3]string{}) {
		in.Dimensions = spreadsheet.FakeDimensions
	}

	if err := updateOptionsSheet(f, optionsData{
		WebsiteNames:     in.WebsiteNames,
		SupplierSKUSizes: in.SupplierSKUSizes,
		SKUListColumn:    skuListColumn(in.Flags),
	}); err != nil {
		return nil, fmt.Errorf("atualizar aba de opções: %w", err)
	}

	if err := s.updateProductSheet(f, in); err != nil {
		return nil, fmt.Errorf("atualizar aba de produtos: %w", err)
	}
	if err := s.updateSaleOrderSheet(f, in); err != nil {
		return nil, fmt.Errorf("atualizar aba de pedidos: %w", err)
	}

	active := string(in.ActiveSheet)
	if !in.Flags.HasCatalog && active == spreadsheet.SheetProduct {
		active = spreadsheet.SheetSaleOrder
	}
	index, err := f.GetSheetIndex(active)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar modelo: %w", err)
	}

	s.log.Debug().
		Bool("servicos", in.Flags.IsServiceSegment).
		Bool("catalogo", in.Flags.HasCatalog).
		Int("canais", len(in.WebsiteNames)).
		Msg("Modelo de planilha gerado")
	return buf.Bytes(), nil
}

// updateProductSheet reduz a aba de produtos para a variante da empresa; sem
// catálogo a aba inteira cai.
func (s *TemplateService) updateProductSheet(f *excelize.File, in TemplateInput) error {
	if !in.Flags.HasCatalog {
		return f.DeleteSheet(spreadsheet.SheetProduct)
	}

	m := NewSheetMutator(f, spreadsheet.SheetProduct)

	if !in.Flags.HasProductCode {
		for _, header := range []string{spreadsheet.HeaderSKU, spreadsheet.HeaderSKUVariant} {
			if err := m.DeleteColumn(header); err != nil {
				return err
			}
		}
		if err := m.RenameHeader(spreadsheet.HeaderName, spreadsheet.HeaderProductName); err != nil {
			return err
		}
		for _, header := range []string{
			spreadsheet.HeaderVariant,
			spreadsheet.HeaderDimension1,
			spreadsheet.HeaderDimension2,
			spreadsheet.HeaderDimension3,
		} {
			if err := m.DeleteColumn(header); err != nil {
				return err
			}
		}
	}

	if in.Flags.IsServiceSegment {
		for _, header := range []string{
			spreadsheet.HeaderAge,
			spreadsheet.HeaderColor,
			spreadsheet.HeaderSeason,
			spreadsheet.HeaderStock,
			spreadsheet.HeaderLastReceipt,
		} {
			if err := m.DeleteColumn(header); err != nil {
				return err
			}
		}
		if in.Flags.HasProductCode {
			if err := m.RenameHeader(spreadsheet.HeaderSKU, spreadsheet.HeaderProductCode); err != nil {
				return err
			}
			for _, header := range []string{spreadsheet.HeaderSKUVariant, spreadsheet.HeaderVariant} {
				if err := m.DeleteColumn(header); err != nil {
					return err
				}
			}
		}
		if err := m.RenameHeader(spreadsheet.HeaderGrossCost, spreadsheet.HeaderServiceCost); err != nil {
			return err
		}
	}

	if in.Flags.HasProductCode {
		placeholders := [3]string{
			spreadsheet.HeaderDimension1,
			spreadsheet.HeaderDimension2,
			spreadsheet.HeaderDimension3,
		}
		for i, placeholder := range placeholders {
			if err := m.RenameHeader(placeholder, in.Dimensions[i]); err != nil {
				return err
			}
		}
	}

	if err := m.ApplyDateFormat(spreadsheet.HeaderLastReceipt); err != nil {
		return err
	}
	return m.AdjustColumnWidths()
}

// updateSaleOrderSheet reduz a aba de pedidos e instala as validações de
// dados. O registro de coordenadas acompanha cada remoção para que as faixas
// das validações apontem para as posições finais.
func (s *TemplateService) updateSaleOrderSheet(f *excelize.File, in TemplateInput) error {
	m := NewSheetMutator(f, spreadsheet.SheetSaleOrder)
	flags := in.Flags

	coords := spreadsheet.NewCoordinates(map[string]int{
		"website": 2,
		"status":  4,
		"sku":     5,
	})

	if !flags.HasCatalog {
		for _, header := range []string{spreadsheet.HeaderSKUVariant, spreadsheet.HeaderOrderQuantity} {
			if err := m.DeleteColumn(header); err != nil {
				return err
			}
		}
		coords.Drop("sku")
	}

	if flags.HasCatalog && !flags.HasProductCode {
		if err := m.RenameHeader(spreadsheet.HeaderSKUVariant, spreadsheet.HeaderProductName); err != nil {
			return err
		}
		if err := m.RenameHeader(spreadsheet.HeaderOrderQuantity, spreadsheet.HeaderProductQuantity); err != nil {
			return err
		}
	}

	if !flags.HasOrderCode {
		for _, header := range []string{spreadsheet.HeaderOrderNumber, spreadsheet.HeaderStatus} {
			if err := m.DeleteColumn(header); err != nil {
				return err
			}
		}
		if err := coords.Offset("website", -1); err != nil {
			return err
		}
		coords.Drop("status")
		if err := coords.Offset("sku", -2); err != nil {
			return err
		}
	}

	if len(in.WebsiteNames) == 1 {
		if err := m.DeleteColumn(spreadsheet.HeaderChannel); err != nil {
			return err
		}
		coords.Drop("website")
		if err := coords.Offset("status", -1); err != nil {
			return err
		}
		if err := coords.Offset("sku", -1); err != nil {
			return err
		}
	}

	if flags.IsServiceSegment {
		if flags.HasCatalog {
			if flags.HasProductCode {
				if err := m.RenameHeader(spreadsheet.HeaderSKUVariant, spreadsheet.HeaderProductCode); err != nil {
					return err
				}
				if err := m.RenameHeader(spreadsheet.HeaderOrderQuantity, spreadsheet.HeaderProductQuantity); err != nil {
					return err
				}
			}
			index, err := m.HeaderIndex(spreadsheet.HeaderProductQuantity)
			if err != nil {
				return err
			}
			if err := coords.Add("quantity", spreadsheet.Col(index)); err != nil {
				return err
			}
		}

		for _, header := range []string{spreadsheet.HeaderUnitFullPrice, spreadsheet.HeaderUnitSalePrice} {
			if err := m.DeleteColumn(header); err != nil {
				return err
			}
		}
		if err := m.RenameHeader(spreadsheet.HeaderTotalPaidProduct, spreadsheet.HeaderTotalPaid); err != nil {
			return err
		}
		if err := m.DeleteColumn(spreadsheet.HeaderShipping); err != nil {
			return err
		}
		if err := m.InsertColumnBefore(spreadsheet.HeaderTotalPaid, spreadsheet.HeaderServiceName); err != nil {
			return err
		}
		index, err := m.HeaderIndex(spreadsheet.HeaderServiceName)
		if err != nil {
			return err
		}
		if err := coords.Add("service", spreadsheet.Col(index)); err != nil {
			return err
		}
		// As remoções do bloco de serviço ficam à direita das coordenadas de
		// validação já registradas; nenhum deslocamento adicional é preciso.
	}

	if err := s.installValidations(f, m, coords, in); err != nil {
		return err
	}

	if err := s.fillDefaultSKU(f, coords, in); err != nil {
		return err
	}

	if err := m.ApplyDateFormat(spreadsheet.HeaderOrderDate); err != nil {
		return err
	}
	return m.AdjustColumnWidths()
}

func (s *TemplateService) installValidations(f *excelize.File, m *SheetMutator, coords *spreadsheet.Coordinates, in TemplateInput) error {
	flags := in.Flags

	if col, err := coords.Get("website"); err != nil {
		return err
	} else if col.Valid {
		dv := websiteValidation(columnSqref(col), in.WebsiteNames)
		if err := f.AddDataValidation(spreadsheet.SheetSaleOrder, dv); err != nil {
			return err
		}
	}

	if col, err := coords.Get("status"); err != nil {
		return err
	} else if col.Valid {
		statusOptions, err := extractColumnValues(f, spreadsheet.SheetOptions,
			optionsStatusColumn, spreadsheet.OptionsTableStartRow, spreadsheet.OptionsHeaderRow+3)
		if err != nil {
			return err
		}
		dv := statusValidation(columnSqref(col), statusOptions)
		if err := f.AddDataValidation(spreadsheet.SheetSaleOrder, dv); err != nil {
			return err
		}
	}

	skuCol, err := coords.Get("sku")
	if err != nil {
		return err
	}
	if !skuCol.Valid {
		return nil
	}

	if flags.IsServiceSegment && flags.HasCatalog {
		names, err := s.resolveServiceNames(m, flags, len(in.WebsiteNames))
		if err != nil {
			return err
		}

		dv := conditionalSKUValidation(columnSqref(skuCol), names)
		if err := f.AddDataValidation(spreadsheet.SheetSaleOrder, dv); err != nil {
			return err
		}

		quantityCol, err := coords.Get("quantity")
		if err != nil {
			return err
		}
		dv = quantityValidation(columnSqref(quantityCol), names)
		if err := f.AddDataValidation(spreadsheet.SheetSaleOrder, dv); err != nil {
			return err
		}

		serviceCol, err := coords.Get("service")
		if err != nil {
			return err
		}
		dv = serviceValidation(columnSqref(serviceCol), names)
		return f.AddDataValidation(spreadsheet.SheetSaleOrder, dv)
	}

	dv := skuListValidation(columnSqref(skuCol))
	return f.AddDataValidation(spreadsheet.SheetSaleOrder, dv)
}

// resolveServiceNames resolve os nomes de exibição usados nas mensagens das
// validações condicionais, partindo das chaves internas do schema para que
// renomes de cabeçalho não quebrem as mensagens.
func (s *TemplateService) resolveServiceNames(m *SheetMutator, flags spreadsheet.FeatureFlags, websiteCount int) (serviceHeaderNames, error) {
	schema, err := spreadsheet.SaleOrderSchema(flags, websiteCount)
	if err != nil {
		return serviceHeaderNames{}, err
	}

	resolve := func(key string) (string, error) {
		header, ok := schema.Header(key)
		if !ok {
			return "", fmt.Errorf("%w: chave %q", domain.ErrUnknownColumn, key)
		}
		index, err := m.HeaderIndex(header)
		if err != nil {
			return "", err
		}
		name, err := m.HeaderName(index)
		if err != nil {
			return "", err
		}
		return spreadsheet.DisplayName(name), nil
	}

	var names serviceHeaderNames
	if names.SKU, err = resolve(spreadsheet.KeySupplierSKUSize); err != nil {
		return serviceHeaderNames{}, err
	}
	if names.Quantity, err = resolve(spreadsheet.KeyQuantity); err != nil {
		return serviceHeaderNames{}, err
	}
	if names.Service, err = resolve(spreadsheet.KeyProductColorName); err != nil {
		return serviceHeaderNames{}, err
	}
	return names, nil
}

// fillDefaultSKU copia a primeira identidade da aba de produtos para a
// primeira linha de dados da aba de pedidos, como valor de exemplo.
func (s *TemplateService) fillDefaultSKU(f *excelize.File, coords *spreadsheet.Coordinates, in TemplateInput) error {
	skuCol, err := coords.Get("sku")
	if err != nil {
		return err
	}
	if !skuCol.Valid || !in.Flags.HasCatalog {
		return nil
	}

	productSchema, err := spreadsheet.ProductSchema(in.Flags, in.Dimensions)
	if err != nil {
		return err
	}
	header, ok := productSchema.Header(spreadsheet.KeySupplierSKUSize)
	if !ok {
		return fmt.Errorf("%w: chave %q", domain.ErrUnknownColumn, spreadsheet.KeySupplierSKUSize)
	}

	pm := NewSheetMutator(f, spreadsheet.SheetProduct)
	index, err := pm.HeaderIndex(header)
	if err != nil {
		return err
	}

	sourceRef, err := excelize.CoordinatesToCellName(index, spreadsheet.TableStartRow)
	if err != nil {
		return err
	}
	value, err := f.GetCellValue(spreadsheet.SheetProduct, sourceRef)
	if err != nil {
		return err
	}
	if value == "" {
		return nil
	}

	targetRef, err := excelize.CoordinatesToCellName(skuCol.Index, spreadsheet.TableStartRow)
	if err != nil {
		return err
	}
	return f.SetCellValue(spreadsheet.SheetSaleOrder, targetRef, value)
}

func columnSqref(col spreadsheet.Column) string {
	letter := spreadsheet.ColumnName(col.Index)
	return fmt.Sprintf("%s%d:%s%d", letter, spreadsheet.TableStartRow, letter, spreadsheet.MaxRows)
}
