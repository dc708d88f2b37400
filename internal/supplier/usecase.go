package supplier

import (
	"context"

	"github.com/labela/labela-control/internal/model"
	"github.com/labela/labela-control/internal/supplier/dto"
)

type UseCase interface {
	ListSuppliers(ctx context.Context) ([]model.Supplier, error)
	GetSupplier(ctx context.Context, id int64) (*model.Supplier, error)
	CreateSupplier(ctx context.Context, input *dto.CreateSupplierInput) (*model.Supplier, error)
	UpdateSupplier(ctx context.Context, input *dto.UpdateSupplierInput) (*model.Supplier, error)
	DeleteSupplier(ctx context.Context, id int64) error
}
