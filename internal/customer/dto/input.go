package dto

import (
	"github.com/labela/labela-control/internal/pkg/apperror"
	"github.com/labela/labela-control/internal/pkg/validate"
)

type CreateCustomerInput struct {
	Name      string
	Phone     string
	Email     string
	Instagram string
}

type UpdateCustomerInput struct {
	ID int64
	CreateCustomerInput
}

// ToRequest requires at least one filled field and a well-formed email when one is given.
func (in *CreateCustomerInput) ToRequest() (*CustomerRequest, error) {
	req := &CustomerRequest{
		Name:      validate.Optional(in.Name),
		Phone:     validate.Optional(in.Phone),
		Email:     validate.Optional(in.Email),
		Instagram: validate.Optional(in.Instagram),
	}

	verr := &apperror.ValidationError{}
	if req.Name == nil && req.Phone == nil && req.Email == nil && req.Instagram == nil {
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
