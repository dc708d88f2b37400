package handler

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labela/labela-control/internal/model"
	"github.com/labela/labela-control/internal/pkg/apperror"
	"github.com/labela/labela-control/internal/pkg/cli"
	"github.com/labela/labela-control/internal/pkg/i18n"
	"github.com/labela/labela-control/internal/pkg/logger"
	"github.com/labela/labela-control/internal/supplier/dto"
)

type fakeUseCase struct {
	stored  *model.Supplier
	updated *dto.UpdateSupplierInput
	listErr error
}

func (f *fakeUseCase) ListSuppliers(context.Context) ([]model.Supplier, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return []model.Supplier{*f.stored}, nil
}

func (f *fakeUseCase) GetSupplier(_ context.Context, id int64) (*model.Supplier, error) {
	if f.stored.ID != id {
		return nil, apperror.NewNotFound()
	}
	return f.stored, nil
}

func (f *fakeUseCase) CreateSupplier(_ context.Context, in *dto.CreateSupplierInput) (*model.Supplier, error) {
	if _, err := in.ToRequest(); err != nil {
		return nil, err
	}
	return f.stored, nil
}

func (f *fakeUseCase) UpdateSupplier(_ context.Context, in *dto.UpdateSupplierInput) (*model.Supplier, error) {
	f.updated = in
	return f.stored, nil
}

func (f *fakeUseCase) DeleteSupplier(context.Context, int64) error { return nil }

func newHandler(t *testing.T, uc *fakeUseCase) (*SupplierHandler, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	tr, err := i18n.NewTranslator("pt-BR")
	require.NoError(t, err)

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return NewSupplierHandler(uc, cli.NewNotifier(out, errOut, tr, logger.NewNop()), logger.NewNop()), out, errOut
}

func tecidos() *model.Supplier {
	name, cnpj := "Tecidos Sul", "12.345.678/0001-90"
	return &model.Supplier{BaseModel: model.BaseModel{ID: 2}, Name: &name, CNPJ: &cnpj}
}

func TestCreate_ThenList(t *testing.T) {
	h, out, _ := newHandler(t, &fakeUseCase{stored: tecidos()})

	require.NoError(t, h.Run(context.Background(), []string{"create", "-cnpj", "12.345.678/0001-90"}))
	assert.Contains(t, out.String(), "Fornecedor criado com sucesso!")
	assert.Contains(t, out.String(), "Tecidos Sul")
}

func TestCreate_InvalidEmail(t *testing.T) {
	h, _, errOut := newHandler(t, &fakeUseCase{stored: tecidos()})

	assert.ErrorIs(t, h.Run(context.Background(), []string{"create", "-email", "x@y"}), cli.ErrReported)
	assert.Contains(t, errOut.String(), "Digite um e-mail válido")
}

func TestUpdate_OnlyOverridesGivenFlags(t *testing.T) {
	uc := &fakeUseCase{stored: tecidos()}
	h, _, _ := newHandler(t, uc)

	require.NoError(t, h.Run(context.Background(), []string{"update", "-id", "2", "-name", ""}))
	require.NotNil(t, uc.updated)
	assert.Equal(t, "", uc.updated.Name)
	assert.Equal(t, "12.345.678/0001-90", uc.updated.CNPJ)
}

func TestList_Failure(t *testing.T) {
	h, _, errOut := newHandler(t, &fakeUseCase{stored: tecidos(), listErr: apperror.NewNetwork(nil)})

	assert.ErrorIs(t, h.Run(context.Background(), []string{"list"}), cli.ErrReported)
	assert.Contains(t, errOut.String(), "Erro ao carregar fornecedores")
}
