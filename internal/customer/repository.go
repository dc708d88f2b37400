package customer

import (
	"context"

	"github.com/labela/labela-control/internal/customer/dto"
	"github.com/labela/labela-control/internal/model"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.Customer, error)
	FindByID(ctx context.Context, id int64) (*model.CustomerWithSales, error)
	Create(ctx context.Context, req *dto.CustomerRequest) (*model.Customer, error)
	Update(ctx context.Context, id int64, req *dto.CustomerRequest) (*model.Customer, error)
	Delete(ctx context.Context, id int64) error
}
