package spreadsheet

// Cabeçalhos da aba de produtos. O sufixo " *" marca coluna obrigatória e
// participa do contrato público: renomear um cabeçalho muda o formato que o
// arquivo enviado precisa seguir.
const (
	HeaderSKU          = "SKU *"
	HeaderSKUVariant   = "SKU Variante *"
	HeaderName         = "Nome *"
	HeaderVariant      = "Variante *"
	HeaderFullPrice    = "Preço DE *"
	HeaderSpecialPrice = "Preço POR"
	HeaderGrossCost    = "Custo Médio Unitário"
	HeaderServiceCost  = "Custo para o Serviço"
	HeaderProductName  = "Nome do Produto *"
	HeaderProductCode  = "Código do Produto *"
	HeaderAge          = "Idade"
	HeaderColor        = "Cor"
	HeaderSeason       = "Coleção"
	HeaderStock        = "Estoque Disponível"
	HeaderLastReceipt  = "Data do Último Recebimento"
)

// Cabeçalhos placeholder das dimensões no modelo mestre, renomeados para os
// nomes humanizados do vendedor quando a empresa usa código de produto.
const (
	HeaderDimension1 = "Departamento *"
	HeaderDimension2 = "Categoria *"
	HeaderDimension3 = "Subcategoria *"
)

// Cabeçalhos da aba de pedidos.
const (
	HeaderOrderNumber      = "Numero do Pedido *"
	HeaderChannel          = "Canal *"
	HeaderOrderDate        = "Data *"
	HeaderStatus           = "Status *"
	HeaderOrderQuantity    = "Quantidade *"
	HeaderProductQuantity  = "Quantidade do Produto *"
	HeaderUnitFullPrice    = "Preço De Unitário"
	HeaderUnitSalePrice    = "Preço Por Unitário"
	HeaderTotalPaidProduct = "Preço Pago Total Produto *"
	HeaderTotalPaid        = "Preço Pago Total *"
	HeaderCPFCNPJ          = "CPF/CNPJ"
	HeaderEmail            = "Email"
	HeaderCustomerName     = "Nome"
	HeaderPhone            = "Telefone do Cliente"
	HeaderShipping         = "Frete Total Pedido"
	HeaderPaymentMethod    = "Meio de Pagamento"
	HeaderInstallments     = "Parcelas"
	HeaderServiceName      = "Nome do Serviço *"
)

// Chaves internas de campo: a ponte entre a identidade de negócio e a
// apresentação na planilha (ColumnKeys traduz chave -> cabeçalho).
const (
	KeySupplierSKUModel    = "supplier_sku_model"
	KeySupplierSKUColor    = "supplier_sku_color"
	KeySupplierSKUSize     = "supplier_sku_size"
	KeySizeName            = "size_name"
	KeyFullPrice           = "full_price"
	KeySpecialPrice        = "special_price"
	KeyGrossCost           = "gross_cost"
	KeyAgeName             = "age_name"
	KeyColorName           = "color_name"
	KeySeason              = "season"
	KeyProductColorName    = "product_color_name"
	KeyStock               = "stock"
	KeyLastDate            = "last_date"
	KeySaleOrderNumber     = "sale_order_number" // aka website_sale_order_id
	KeyWebsiteName         = "website_name"
	KeyDate                = "date"
	KeyStatus              = "sale_order_product_size_status"
	KeyQuantity            = "quantity"
	KeySalePrice           = "sale_price"
	KeyTotalPaidPrice      = "total_paid_price"
	KeyCPFCNPJ             = "cpf_cnpj"
	KeyEmail               = "email"
	KeyName                = "name"
	KeyPhone               = "phone"
	KeyShippingRevenue     = "shipping_revenue"
	KeyPaymentMethodType   = "order_payment_method_type"
	KeyPaymentInstallments = "order_payment_method_installments"
	KeyIsServiceOrderItem  = "is_service_order_item"
)

// Placeholder para campos resolvidos fora da planilha.
const headerServiceOrderItemPlaceholder = "__is_service_order_item__"
