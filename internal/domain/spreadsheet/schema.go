package spreadsheet

// Row uma linha da planilha já indexada por cabeçalho.
type Row map[string]any

// FormatFunc coage o valor bruto de uma célula para o tipo esperado.
type FormatFunc func(v any) (any, error)

// Validation regra de validação por linha, na ordem em que deve ser aplicada.
type Validation struct {
	Header       string
	Validate     func(Row) bool
	ErrorMessage func(Row) string
}

// Schema descrição declarativa das colunas esperadas de uma aba: coerções,
// colunas obrigatórias, validadores, unicidade e o mapeamento de chave de
// campo interna para cabeçalho.
type Schema struct {
	Flags            FeatureFlags
	FormatValue      map[string]FormatFunc
	RequiredColumns  map[string]struct{}
	Validations      []Validation
	UniqueTogether   [][]string
	ColumnKeys       map[string]string
	IgnoreDimensions bool
}

// Clone copia o schema em profundidade; cada passo de transformação opera
// sobre a própria cópia, mantendo os passos puros.
func (s Schema) Clone() Schema {
	out := Schema{
		Flags:            s.Flags,
		FormatValue:      make(map[string]FormatFunc, len(s.FormatValue)),
		RequiredColumns:  make(map[string]struct{}, len(s.RequiredColumns)),
		Validations:      make([]Validation, len(s.Validations)),
		ColumnKeys:       make(map[string]string, len(s.ColumnKeys)),
		UniqueTogether:   make([][]string, 0, len(s.UniqueTogether)),
		IgnoreDimensions: s.IgnoreDimensions,
	}
	for k, v := range s.FormatValue {
		out.FormatValue[k] = v
	}
	for k := range s.RequiredColumns {
		out.RequiredColumns[k] = struct{}{}
	}
	copy(out.Validations, s.Validations)
	for k, v := range s.ColumnKeys {
		out.ColumnKeys[k] = v
	}
	for _, group := range s.UniqueTogether {
		g := make([]string, len(group))
		copy(g, group)
		out.UniqueTogether = append(out.UniqueTogether, g)
	}
	return out
}

// Header devolve o cabeçalho mapeado para uma chave interna de campo.
func (s Schema) Header(key string) (string, bool) {
	h, ok := s.ColumnKeys[key]
	return h, ok
}

// HasHeader indica se o cabeçalho ainda existe após as reduções.
func (s Schema) HasHeader(header string) bool {
	_, ok := s.FormatValue[header]
	return ok
}

// renameFormat move a coerção de um cabeçalho para outro (pop + reinsere).
func (s *Schema) renameFormat(oldHeader, newHeader string) {
	if f, ok := s.FormatValue[oldHeader]; ok {
		delete(s.FormatValue, oldHeader)
		s.FormatValue[newHeader] = f
	}
}

// swapRequired troca um cabeçalho obrigatório por outro.
func (s *Schema) swapRequired(oldHeader, newHeader string) {
	delete(s.RequiredColumns, oldHeader)
	s.RequiredColumns[newHeader] = struct{}{}
}

// dropValidation remove a validação associada a um cabeçalho, preservando a
// ordem das demais.
func (s *Schema) dropValidation(header string) {
	kept := s.Validations[:0]
	for _, v := range s.Validations {
		if v.Header != header {
			kept = append(kept, v)
		}
	}
	s.Validations = kept
}
