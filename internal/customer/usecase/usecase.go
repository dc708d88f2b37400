package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/labela/labela-control/internal/customer"
	"github.com/labela/labela-control/internal/customer/dto"
	"github.com/labela/labela-control/internal/model"
	"github.com/labela/labela-control/internal/pkg/logger"
)

type customerUseCase struct {
	repo   customer.Repository
	logger logger.ZapLogger
}

func NewCustomerUseCase(repo customer.Repository, log logger.ZapLogger) customer.UseCase {
	return &customerUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *customerUseCase) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *customerUseCase) GetCustomer(ctx context.Context, id int64) (*model.CustomerWithSales, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *customerUseCase) CreateCustomer(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error) {
	req, err := input.ToRequest()
	if err != nil {
		return nil, err
	}

	c, err := uc.repo.Create(ctx, req)
	if err != nil {
		uc.logger.Error("failed to create customer", zap.Error(err))
		return nil, err
	}

	uc.logger.Info("customer created", zap.Int64("customer_id", c.ID))
	return c, nil
}

func (uc *customerUseCase) UpdateCustomer(ctx context.Context, input *dto.UpdateCustomerInput) (*model.Customer, error) {
	req, err := input.ToRequest()
	if err != nil {
		return nil, err
	}

	c, err := uc.repo.Update(ctx, input.ID, req)
	if err != nil {
		uc.logger.Error("failed to update customer", zap.Int64("customer_id", input.ID), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("customer updated", zap.Int64("customer_id", c.ID))
	return c, nil
}

func (uc *customerUseCase) DeleteCustomer(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Error("failed to delete customer", zap.Int64("customer_id", id), zap.Error(err))
		return err
	}

	uc.logger.Info("customer deleted", zap.Int64("customer_id", id))
	return nil
}
