package model

import "strconv"

type Supplier struct {
	BaseModel
	Name      *string `json:"name"`
	CNPJ      *string `json:"cnpj"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Instagram *string `json:"instagram"`
}

func (s *Supplier) DisplayName() string {
	if s.Name != nil && *s.Name != "" {
		return *s.Name
	}
	return "Fornecedor #" + strconv.FormatInt(s.ID, 10)
}
