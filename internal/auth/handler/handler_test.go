package handler

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labela/labela-control/internal/auth/dto"
	"github.com/labela/labela-control/internal/model"
	"github.com/labela/labela-control/internal/pkg/apperror"
	"github.com/labela/labela-control/internal/pkg/cli"
	"github.com/labela/labela-control/internal/pkg/i18n"
	"github.com/labela/labela-control/internal/pkg/logger"
)

type fakeUseCase struct {
	identity *dto.Identity
	loginErr error
}

func (f *fakeUseCase) Login(_ context.Context, in *dto.LoginInput) (*model.User, error) {
	if _, err := in.ToRequest(); err != nil {
		return nil, err
	}
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &model.User{ID: 1, Name: "Ana", Email: in.Email}, nil
}

func (f *fakeUseCase) Logout(context.Context) error {
	f.identity = nil
	return nil
}

func (f *fakeUseCase) WhoAmI() (*dto.Identity, bool) {
	return f.identity, f.identity != nil
}

func newHandler(t *testing.T, uc *fakeUseCase) (*AuthHandler, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	tr, err := i18n.NewTranslator("pt-BR")
	require.NoError(t, err)

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return NewAuthHandler(uc, cli.NewNotifier(out, errOut, tr, logger.NewNop()), logger.NewNop()), out, errOut
}

func TestLogin(t *testing.T) {
	h, out, _ := newHandler(t, &fakeUseCase{})

	require.NoError(t, h.Login(context.Background(), []string{"-email", "ana@labela.com", "-password", "segredo"}))
	assert.Contains(t, out.String(), "Login realizado com sucesso!")
	assert.Contains(t, out.String(), "Ana <ana@labela.com>")
}

func TestLogin_ValidationMessages(t *testing.T) {
	h, _, errOut := newHandler(t, &fakeUseCase{})

	assert.ErrorIs(t, h.Login(context.Background(), nil), cli.ErrReported)
	assert.Contains(t, errOut.String(), "E-mail é obrigatório")
	assert.Contains(t, errOut.String(), "Senha é obrigatória")
}

func TestLogin_FallbackMessage(t *testing.T) {
	h, _, errOut := newHandler(t, &fakeUseCase{loginErr: apperror.NewNetwork(nil)})

	err := h.Login(context.Background(), []string{"-email", "ana@labela.com", "-password", "segredo"})
	assert.ErrorIs(t, err, cli.ErrReported)
	assert.Contains(t, errOut.String(), "Erro ao fazer login. Verifique suas credenciais.")
}

func TestWhoAmI(t *testing.T) {
	uc := &fakeUseCase{identity: &dto.Identity{
		User:      model.User{ID: 1, Name: "Ana", Email: "ana@labela.com"},
		ExpiresAt: time.Date(2030, 1, 2, 3, 4, 0, 0, time.Local),
	}}
	h, out, errOut := newHandler(t, uc)

	require.NoError(t, h.WhoAmI(context.Background(), nil))
	assert.Contains(t, out.String(), "Ana <ana@labela.com>")
	assert.Contains(t, out.String(), "02/01/2030 03:04")

	require.NoError(t, h.Logout(context.Background(), nil))
	assert.ErrorIs(t, h.WhoAmI(context.Background(), nil), cli.ErrReported)
	assert.Contains(t, errOut.String(), "Você precisa fazer login para continuar")
}
