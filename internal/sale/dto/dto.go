package dto

import (
	"github.com/labela/labela-control/internal/model"
	"github.com/labela/labela-control/internal/pkg/apperror"
)

// CreateSaleInput is the body of POST /sales. Prices are never sent; the
// server prices each line itself.
type CreateSaleInput struct {
	CustomerID      int64              `json:"customer_id"`
	PaymentMethodID int64              `json:"payment_method_id"`
	Products        []SaleProductInput `json:"products"`
}

type SaleProductInput struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// Validate runs every check and reports all violations together.
func (in *CreateSaleInput) Validate() error {
	verr := &apperror.ValidationError{}

	if in.CustomerID <= 0 {
		verr.Add("customer_id", "CustomerRequired")
	}
	if _, ok := model.PaymentMethodByID(in.PaymentMethodID); !ok {
		verr.Add("payment_method_id", "PaymentMethodRequired")
	}

	if len(in.Products) == 0 {
		verr.Add("products", "ProductsRequired")
	}
	for _, p := range in.Products {
		if p.Quantity < 1 {
			verr.Add("products", "QuantityInvalid")
			break
		}
	}

	return verr.Err()
}
