package model

import (
	"strconv"
	"time"
)

type Customer struct {
	BaseModel
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Instagram *string `json:"instagram"`
}

// CustomerWithSales is what GET /customers/:id returns.
type CustomerWithSales struct {
	Customer
	Sales []CustomerSale `json:"sales"`
}

type CustomerSale struct {
	ID         int64         `json:"id"`
	TotalCents int64         `json:"total_cents"`
	CreatedAt  time.Time     `json:"created_at"`
	Products   []SaleProduct `json:"products"`
}

// DisplayName falls back to "Cliente #id" when the name was never filled in.
func (c *Customer) DisplayName() string {
	if c.Name != nil && *c.Name != "" {
		return *c.Name
	}
	return "Cliente #" + strconv.FormatInt(c.ID, 10)
}
