package model

import "strconv"

type Sale struct {
	BaseModel
	CustomerID      int64         `json:"customer_id"`
	PaymentMethodID int64         `json:"payment_method_id"`
	TotalCents      int64         `json:"total_cents"`
	Customer        *SaleCustomer `json:"customer,omitempty"`
	Products        []SaleProduct `json:"products,omitempty"`
}

type SaleCustomer struct {
	ID   int64   `json:"id"`
	Name *string `json:"name"`
}

type SaleProduct struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	SalePriceCents int64  `json:"sale_price_cents"`
	Quantity       int    `json:"quantity"`
}

type PaymentMethod struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PaymentMethods is the fixed catalogue the back end understands.
var PaymentMethods = []PaymentMethod{
	{ID: 1, Name: "Dinheiro"},
	{ID: 2, Name: "Cartão de Crédito"},
	{ID: 3, Name: "Cartão de Débito"},
	{ID: 4, Name: "PIX"},
	{ID: 5, Name: "Transferência"},
}

func PaymentMethodByID(id int64) (PaymentMethod, bool) {
	for _, pm := range PaymentMethods {
		if pm.ID == id {
			return pm, true
		}
	}
	return PaymentMethod{}, false
}

// CustomerName uses the embedded customer when the list endpoint includes it.
func (s *Sale) CustomerName() string {
	if s.Customer != nil && s.Customer.Name != nil && *s.Customer.Name != "" {
		return *s.Customer.Name
	}
	if s.CustomerID == 0 && s.Customer != nil {
		return "Cliente #" + strconv.FormatInt(s.Customer.ID, 10)
	}
	return "Cliente #" + strconv.FormatInt(s.CustomerID, 10)
}
