package dto

import (
	"strconv"
	"strings"

	"github.com/labela/labela-control/internal/pkg/apperror"
	"github.com/labela/labela-control/internal/pkg/money"
)

// CreateProductInput holds the form values as typed; prices are currency text ("89,90").
type CreateProductInput struct {
	Name        string
	Description string
	CostPrice   string
	SalePrice   string
	StockQty    string
}

type UpdateProductInput struct {
	ID int64
	CreateProductInput
}

// ToRequest validates every field and converts prices to cents.
func (in *CreateProductInput) ToRequest() (*ProductRequest, error) {
	verr := &apperror.ValidationError{}
	req := &ProductRequest{Name: strings.TrimSpace(in.Name)}

	if req.Name == "" {
		verr.Add("name", "NameRequired")
	}

	req.CostPriceCents = parsePrice(verr, "cost_price_cents", "CostPriceRequired", in.CostPrice)
	req.SalePriceCents = parsePrice(verr, "sale_price_cents", "SalePriceRequired", in.SalePrice)

	if s := strings.TrimSpace(in.StockQty); s != "" {
		qty, err := strconv.Atoi(s)
		if err != nil || qty < 0 {
			verr.Add("stock_qty", "InvalidValue")
		}
		req.StockQty = qty
	}

	if err := verr.Err(); err != nil {
		return nil, err
	}

	if d := strings.TrimSpace(in.Description); d != "" {
		req.Description = &d
	}
	return req, nil
}

func parsePrice(verr *apperror.ValidationError, field, requiredID, value string) int64 {
	if strings.TrimSpace(value) == "" {
		verr.Add(field, requiredID)
		return 0
	}
	cents, err := money.ParseCents(value)
	if err != nil {
		verr.Add(field, "InvalidValue")
		return 0
	}
	return cents
}
