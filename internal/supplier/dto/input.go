package dto

import (
	"github.com/labela/labela-control/internal/pkg/apperror"
	"github.com/labela/labela-control/internal/pkg/validate"
)

type CreateSupplierInput struct {
	Name      string
	CNPJ      string
	Phone     string
	Email     string
	Instagram string
}

type UpdateSupplierInput struct {
	ID int64
	CreateSupplierInput
}

func (in *CreateSupplierInput) ToRequest() (*SupplierRequest, error) {
	req := &SupplierRequest{
		Name:      validate.Optional(in.Name),
		CNPJ:      validate.Optional(in.CNPJ),
		Phone:     validate.Optional(in.Phone),
		Email:     validate.Optional(in.Email),
		Instagram: validate.Optional(in.Instagram),
	}

	verr := &apperror.ValidationError{}
	if req.Name == nil && req.CNPJ == nil && req.Phone == nil && req.Email == nil && req.Instagram == nil {
		verr.Add("name", "AtLeastOneField")
	}
	if req.Email != nil && !validate.Email(*req.Email) {
		verr.Add("email", "EmailInvalid")
	}

	if err := verr.Err(); err != nil {
		return nil, err
	}
	return req, nil
}
