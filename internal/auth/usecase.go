package auth

import (
	"context"

	"github.com/labela/labela-control/internal/auth/dto"
	"github.com/labela/labela-control/internal/model"
)

type UseCase interface {
	Login(ctx context.Context, input *dto.LoginInput) (*model.User, error)
	Logout(ctx context.Context) error
	WhoAmI() (*dto.Identity, bool)
}
