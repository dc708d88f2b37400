package handler

import (
	"context"

	"github.com/labela/labela-control/internal/auth"
	"github.com/labela/labela-control/internal/auth/dto"
	"github.com/labela/labela-control/internal/pkg/cli"
	"github.com/labela/labela-control/internal/pkg/logger"
)

type AuthHandler struct {
	uc     auth.UseCase
	n      *cli.Notifier
	logger logger.ZapLogger
}

func NewAuthHandler(uc auth.UseCase, n *cli.Notifier, log logger.ZapLogger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		n:      n,
		logger: log,
	}
}

func (h *AuthHandler) Login(ctx context.Context, args []string) error {
	fs := cli.NewFlagSet("login", h.n)
	email := fs.String("email", "", "account e-mail")
	password := fs.String("password", "", "account password")
	if err := cli.Parse(fs, args); err != nil {
		return err
	}

	u, err := h.uc.Login(ctx, &dto.LoginInput{Email: *email, Password: *password})
	if err != nil {
		h.n.Failure(err, "LoginFailed")
		return cli.ErrReported
	}

	h.n.Success("SignedIn")
	h.n.Printf("%s <%s>\n", u.Name, u.Email)
	return nil
}

func (h *AuthHandler) Logout(ctx context.Context, _ []string) error {
	if err := h.uc.Logout(ctx); err != nil {
		h.n.Failure(err, "GenericError")
		return cli.ErrReported
	}

	h.n.Success("SignedOut")
	return nil
}

func (h *AuthHandler) WhoAmI(_ context.Context, _ []string) error {
	id, ok := h.uc.WhoAmI()
	if !ok {
		h.n.Warn("NotSignedIn")
		return cli.ErrReported
	}

	h.n.Printf("%s <%s>\n", id.User.Name, id.User.Email)
	if !id.ExpiresAt.IsZero() {
		h.n.Printf("%s\n", h.n.T("SessionExpires", map[string]any{"At": cli.Date(id.ExpiresAt)}))
	}
	return nil
}
