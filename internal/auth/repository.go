package auth

import (
	"context"

	"github.com/labela/labela-control/internal/auth/dto"
	"github.com/labela/labela-control/internal/model"
)

// SessionRepository persists the session between runs. Load returns nil, nil
// when nothing has been saved.
type SessionRepository interface {
	Load(ctx context.Context) (*model.Session, error)
	Save(ctx context.Context, s *model.Session) error
	Clear(ctx context.Context) error
}

type Repository interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}
