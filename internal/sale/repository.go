package sale

import (
	"context"

	"github.com/labela/labela-control/internal/model"
	"github.com/labela/labela-control/internal/sale/dto"
)

// Repository has no update or delete: a recorded sale is immutable from here.
type Repository interface {
	FindAll(ctx context.Context) ([]model.Sale, error)
	FindByID(ctx context.Context, id int64) (*model.Sale, error)
	Create(ctx context.Context, input *dto.CreateSaleInput) (*model.Sale, error)
}
