package customer

import (
	"context"

	"github.com/labela/labela-control/internal/customer/dto"
	"github.com/labela/labela-control/internal/model"
)

type UseCase interface {
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*model.CustomerWithSales, error)
	CreateCustomer(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, input *dto.UpdateCustomerInput) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
}
