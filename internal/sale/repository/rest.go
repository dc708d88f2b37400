package repository

import (
	"context"

	"github.com/labela/labela-control/internal/model"
	"github.com/labela/labela-control/internal/pkg/httpclient"
	"github.com/labela/labela-control/internal/sale/dto"
)

const resource = "sales"

type RESTRepository struct {
	client httpclient.Requester
}

func NewRESTRepository(client httpclient.Requester) *RESTRepository {
	return &RESTRepository{client: client}
}

func (r *RESTRepository) FindAll(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	if err := r.client.Get(ctx, resource, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *RESTRepository) FindByID(ctx context.Context, id int64) (*model.Sale, error) {
	var s model.Sale
	if err := r.client.Get(ctx, httpclient.ResourcePath(resource, id), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *RESTRepository) Create(ctx context.Context, input *dto.CreateSaleInput) (*model.Sale, error) {
	var s model.Sale
	if err := r.client.Post(ctx, resource, input, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
