package supplier

import (
	"context"

	"github.com/labela/labela-control/internal/model"
	"github.com/labela/labela-control/internal/supplier/dto"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.Supplier, error)
	FindByID(ctx context.Context, id int64) (*model.Supplier, error)
	Create(ctx context.Context, req *dto.SupplierRequest) (*model.Supplier, error)
	Update(ctx context.Context, id int64, req *dto.SupplierRequest) (*model.Supplier, error)
	Delete(ctx context.Context, id int64) error
}
