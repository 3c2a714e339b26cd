package shopifydomain

// OrdersResponse representa a resposta do endpoint de pedidos da API da Shopify
type OrdersResponse struct {
	Orders []Order `json:"orders"`
}

// Order representa um pedido da loja Shopify
type Order struct {
	ID                int64           `json:"id,omitempty"`
	Name              string          `json:"name,omitempty"`
	CreatedAt         string          `json:"created_at,omitempty"`
	TotalPrice        string          `json:"total_price,omitempty"`
	Currency          string          `json:"currency,omitempty"`
	FinancialStatus   string          `json:"financial_status,omitempty"`
	LandingSite       string          `json:"landing_site,omitempty"`
	ReferringSite     string          `json:"referring_site,omitempty"`
	SourceName        string          `json:"source_name,omitempty"`
	NoteAttributes    []NoteAttribute `json:"note_attributes,omitempty"`
	LineItems         []LineItem      `json:"line_items,omitempty"`
	CancelledAt       *string         `json:"cancelled_at,omitempty"`
	CustomerLocaleRaw string          `json:"customer_locale,omitempty"`
}

// NoteAttribute representa um atributo livre anexado ao pedido no checkout
type NoteAttribute struct {
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
}

// LineItem representa um item do pedido
type LineItem struct {
	ID        int64  `json:"id,omitempty"`
	ProductID int64  `json:"product_id,omitempty"`
	Title     string `json:"title,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`
	Price     string `json:"price,omitempty"`
}

// GetOrdersParams identifica a loja e as credenciais da consulta de pedidos
type GetOrdersParams struct {
	ShopDomain  string
	AccessToken string
}
