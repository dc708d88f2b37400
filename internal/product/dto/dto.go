package dto

// ProductRequest is the body of POST/PUT /products.
type ProductRequest struct {
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	CostPriceCents int64   `json:"cost_price_cents"`
	SalePriceCents int64   `json:"sale_price_cents"`
	StockQty       int     `json:"stock_qty"`
}
