package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/labela/labela-control/internal/model"
	"github.com/labela/labela-control/internal/pkg/logger"
	"github.com/labela/labela-control/internal/sale"
	"github.com/labela/labela-control/internal/sale/dto"
)

type saleUseCase struct {
	repo   sale.Repository
	logger logger.ZapLogger
}

func NewSaleUseCase(repo sale.Repository, log logger.ZapLogger) sale.UseCase {
	return &saleUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *saleUseCase) ListSales(ctx context.Context) ([]model.Sale, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *saleUseCase) GetSale(ctx context.Context, id int64) (*model.Sale, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *saleUseCase) CreateSale(ctx context.Context, input *dto.CreateSaleInput) (*model.Sale, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	s, err := uc.repo.Create(ctx, input)
	if err != nil {
		uc.logger.Error("failed to create sale",
			zap.Int64("customer_id", input.CustomerID),
			zap.Int("lines", len(input.Products)),
			zap.Error(err),
		)
		return nil, err
	}

	uc.logger.Info("sale created", zap.Int64("sale_id", s.ID), zap.Int64("total_cents", s.TotalCents))
	return s, nil
}
