package dto

import (
	"strings"
	"time"

	"github.com/labela/labela-control/internal/model"
	"github.com/labela/labela-control/internal/pkg/apperror"
	"github.com/labela/labela-control/internal/pkg/validate"
)

const minPasswordLen = 6

type LoginInput struct {
	Email    string
	Password string
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Identity describes the signed-in user. ExpiresAt is zero when the
// credential carries no readable expiry.
type Identity struct {
	User      model.User
	ExpiresAt time.Time
}

func (in *LoginInput) ToRequest() (*LoginRequest, error) {
	req := &LoginRequest{
		Email:    strings.TrimSpace(in.Email),
		Password: in.Password,
	}

	verr := &apperror.ValidationError{}
	switch {
	case req.Email == "":
		verr.Add("email", "EmailRequired")
	case !validate.Email(req.Email):
		verr.Add("email", "EmailInvalid")
	}
	switch {
	case req.Password == "":
		verr.Add("password", "PasswordRequired")
	case len(req.Password) < minPasswordLen:
		verr.Add("password", "PasswordTooShort")
	}

	if err := verr.Err(); err != nil {
		return nil, err
	}
	return req, nil
}
