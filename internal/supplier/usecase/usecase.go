package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/labela/labela-control/internal/model"
	"github.com/labela/labela-control/internal/pkg/logger"
	"github.com/labela/labela-control/internal/supplier"
	"github.com/labela/labela-control/internal/supplier/dto"
)

type supplierUseCase struct {
	repo   supplier.Repository
	logger logger.ZapLogger
}

func NewSupplierUseCase(repo supplier.Repository, log logger.ZapLogger) supplier.UseCase {
	return &supplierUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *supplierUseCase) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *supplierUseCase) GetSupplier(ctx context.Context, id int64) (*model.Supplier, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *supplierUseCase) CreateSupplier(ctx context.Context, input *dto.CreateSupplierInput) (*model.Supplier, error) {
	req, err := input.ToRequest()
	if err != nil {
		return nil, err
	}

	s, err := uc.repo.Create(ctx, req)
	if err != nil {
		uc.logger.Error("failed to create supplier", zap.Error(err))
		return nil, err
	}

	uc.logger.Info("supplier created", zap.Int64("supplier_id", s.ID))
	return s, nil
}

func (uc *supplierUseCase) UpdateSupplier(ctx context.Context, input *dto.UpdateSupplierInput) (*model.Supplier, error) {
	req, err := input.ToRequest()
	if err != nil {
		return nil, err
	}

	s, err := uc.repo.Update(ctx, input.ID, req)
	if err != nil {
		uc.logger.Error("failed to update supplier", zap.Int64("supplier_id", input.ID), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("supplier updated", zap.Int64("supplier_id", s.ID))
	return s, nil
}

func (uc *supplierUseCase) DeleteSupplier(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Error("failed to delete supplier", zap.Int64("supplier_id", id), zap.Error(err))
		return err
	}

	uc.logger.Info("supplier deleted", zap.Int64("supplier_id", id))
	return nil
}
