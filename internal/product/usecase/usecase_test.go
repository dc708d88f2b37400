package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labela/labela-control/internal/model"
	"github.com/labela/labela-control/internal/pkg/apperror"
	"github.com/labela/labela-control/internal/pkg/logger"
	"github.com/labela/labela-control/internal/product/dto"
)

type fakeRepo struct {
	created *dto.ProductRequest
	updated *dto.ProductRequest
	updID   int64
	deleted []int64
	err     error
}

func (f *fakeRepo) FindAll(context.Context) ([]model.Product, error) {
	return []model.Product{{BaseModel: model.BaseModel{ID: 1}, Name: "Blusa"}}, f.err
}

func (f *fakeRepo) FindByID(_ context.Context, id int64) (*model.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.Product{BaseModel: model.BaseModel{ID: id}}, nil
}

func (f *fakeRepo) Create(_ context.Context, req *dto.ProductRequest) (*model.Product, error) {
	f.created = req
	if f.err != nil {
		return nil, f.err
	}
	return &model.Product{BaseModel: model.BaseModel{ID: 5}, Name: req.Name}, nil
}

func (f *fakeRepo) Update(_ context.Context, id int64, req *dto.ProductRequest) (*model.Product, error) {
	f.updID, f.updated = id, req
	return &model.Product{BaseModel: model.BaseModel{ID: id}, Name: req.Name}, f.err
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func TestCreateProduct_ValidatesBeforeCallingRepo(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewProductUseCase(repo, logger.NewNop())

	_, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{Name: "Blusa"})
	require.Error(t, err)
	_, isValidation := apperror.AsValidation(err)
	assert.True(t, isValidation)
	assert.Nil(t, repo.created)
}

func TestCreateProduct_SendsCents(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewProductUseCase(repo, logger.NewNop())

	p, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		Name: "Blusa", CostPrice: "20", SalePrice: "49,90", StockQty: "4",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.ID)
	assert.Equal(t, int64(4990), repo.created.SalePriceCents)
	assert.Equal(t, int64(2000), repo.created.CostPriceCents)
}

func TestUpdateProduct_UsesID(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewProductUseCase(repo, logger.NewNop())

	_, err := uc.UpdateProduct(context.Background(), &dto.UpdateProductInput{
		ID:                 7,
		CreateProductInput: dto.CreateProductInput{Name: "Saia", CostPrice: "1", SalePrice: "2"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), repo.updID)
	assert.Equal(t, "Saia", repo.updated.Name)
}

func TestDeleteProduct_PropagatesFailure(t *testing.T) {
	repo := &fakeRepo{err: apperror.NewNotFound()}
	uc := NewProductUseCase(repo, logger.NewNop())

	err := uc.DeleteProduct(context.Background(), 3)
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, []int64{3}, repo.deleted)
}
