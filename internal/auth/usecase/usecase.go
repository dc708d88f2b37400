package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/labela/labela-control/internal/auth"
	"github.com/labela/labela-control/internal/auth/dto"
	"github.com/labela/labela-control/internal/model"
	"github.com/labela/labela-control/internal/pkg/logger"
)

type authUseCase struct {
	repo   auth.Repository
	store  *auth.Store
	logger logger.ZapLogger
}

func NewAuthUseCase(repo auth.Repository, store *auth.Store, log logger.ZapLogger) auth.UseCase {
	return &authUseCase{
		repo:   repo,
		store:  store,
		logger: log,
	}
}

func (uc *authUseCase) Login(ctx context.Context, input *dto.LoginInput) (*model.User, error) {
	req, err := input.ToRequest()
	if err != nil {
		return nil, err
	}

	resp, err := uc.repo.Login(ctx, req)
	if err != nil {
		uc.logger.Warn("login rejected", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}

	if err := uc.store.SignIn(ctx, resp.Token, resp.User); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (uc *authUseCase) Logout(ctx context.Context) error {
	return uc.store.SignOut(ctx)
}

func (uc *authUseCase) WhoAmI() (*dto.Identity, bool) {
	user, ok := uc.store.User()
	if !ok {
		return nil, false
	}

	id := &dto.Identity{User: user}
	if exp, ok := auth.CredentialExpiry(uc.store.Credential()); ok {
		id.ExpiresAt = exp
	}
	return id, true
}
