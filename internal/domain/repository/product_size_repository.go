package repository

import "context"

// ProductSizeRepository porta de persistência para variantes de SKU.
type ProductSizeRepository interface {
	// DistinctSupplierSKUSizes devolve os valores distintos e não vazios de
	// supplier_sku_size da empresa.
	DistinctSupplierSKUSizes(ctx context.Context, companyID string) ([]string, error)
}
