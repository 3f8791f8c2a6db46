package entity

// ProductSize representa uma variante (tamanho) de SKU cadastrada no catálogo.
// SupplierSKUSize alimenta a lista de opções de produto na aba oculta.
type ProductSize struct {
	ID              string
	CompanyID       string
	SupplierSKUSize string
	SizeName        string
}
