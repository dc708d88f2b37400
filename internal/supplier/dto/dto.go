package dto

// SupplierRequest is the body of POST/PUT /suppliers.
type SupplierRequest struct {
	Name      *string `json:"name,omitempty"`
	CNPJ      *string `json:"cnpj,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
}
