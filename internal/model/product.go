package model

type Product struct {
	BaseModel
	Name           string  `json:"name"`
	Description    *string `json:"description"` // Nullable
	CostPriceCents int64   `json:"cost_price_cents"`
	SalePriceCents int64   `json:"sale_price_cents"`
	StockQty       int     `json:"stock_qty"`
}
