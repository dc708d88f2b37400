package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/labela/labela-control/internal/model"
	"github.com/labela/labela-control/internal/pkg/logger"
	"github.com/labela/labela-control/internal/product"
	"github.com/labela/labela-control/internal/product/dto"
)

type productUseCase struct {
	repo   product.Repository
	logger logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *productUseCase) ListProducts(ctx context.Context) ([]model.Product, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	req, err := input.ToRequest()
	if err != nil {
		return nil, err
	}

	p, err := uc.repo.Create(ctx, req)
	if err != nil {
		uc.logger.Error("failed to create product", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("product created", zap.Int64("product_id", p.ID))
	return p, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	req, err := input.ToRequest()
	if err != nil {
		return nil, err
	}

	p, err := uc.repo.Update(ctx, input.ID, req)
	if err != nil {
		uc.logger.Error("failed to update product", zap.Int64("product_id", input.ID), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("product updated", zap.Int64("product_id", p.ID))
	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Error("failed to delete product", zap.Int64("product_id", id), zap.Error(err))
		return err
	}

	uc.logger.Info("product deleted", zap.Int64("product_id", id))
	return nil
}
