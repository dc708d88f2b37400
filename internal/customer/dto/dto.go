package dto

// CustomerRequest is the body of POST/PUT /customers. Blank fields are omitted.
type CustomerRequest struct {
	Name      *string `json:"name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
}
