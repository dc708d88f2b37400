package repository

import (
	"context"

	"github.com/labela/labela-control/internal/model"
	"github.com/labela/labela-control/internal/pkg/httpclient"
	"github.com/labela/labela-control/internal/product/dto"
)

const resource = "products"

type RESTRepository struct {
	client httpclient.Requester
}

func NewRESTRepository(client httpclient.Requester) *RESTRepository {
	return &RESTRepository{client: client}
}

func (r *RESTRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.client.Get(ctx, resource, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *RESTRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	if err := r.client.Get(ctx, httpclient.ResourcePath(resource, id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *RESTRepository) Create(ctx context.Context, req *dto.ProductRequest) (*model.Product, error) {
	var p model.Product
	if err := r.client.Post(ctx, resource, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *RESTRepository) Update(ctx context.Context, id int64, req *dto.ProductRequest) (*model.Product, error) {
	var p model.Product
	if err := r.client.Put(ctx, httpclient.ResourcePath(resource, id), req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *RESTRepository) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, httpclient.ResourcePath(resource, id))
}
