package entity

// Seller agrupa os metadados de vendedor de uma empresa, incluindo os nomes
// humanizados das três dimensões de produto (ex.: Departamento, Categoria,
// Subcategoria) exibidos como cabeçalhos na planilha.
type Seller struct {
	ID         string
	CompanyID  string
	Dimension1 string
	Dimension2 string
	Dimension3 string
}

// HumanizedDimensions devolve os nomes das três dimensões na ordem fixa do modelo.
func (s Seller) HumanizedDimensions() [3]string {
	return [3]string{s.Dimension1, s.Dimension2, s.Dimension3}
}
