package product

import (
	"context"

	"github.com/labela/labela-control/internal/model"
	"github.com/labela/labela-control/internal/product/dto"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, req *dto.ProductRequest) (*model.Product, error)
	Update(ctx context.Context, id int64, req *dto.ProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id int64) error
}
