package sale

import (
	"context"

	"github.com/labela/labela-control/internal/model"
	"github.com/labela/labela-control/internal/sale/dto"
)

type UseCase interface {
	ListSales(ctx context.Context) ([]model.Sale, error)
	GetSale(ctx context.Context, id int64) (*model.Sale, error)
	CreateSale(ctx context.Context, input *dto.CreateSaleInput) (*model.Sale, error)
}
