package repository

import (
	"context"

	"github.com/labela/labela-control/internal/customer/dto"
	"github.com/labela/labela-control/internal/model"
	"github.com/labela/labela-control/internal/pkg/httpclient"
)

const resource = "customers"

type RESTRepository struct {
	client httpclient.Requester
}

func NewRESTRepository(client httpclient.Requester) *RESTRepository {
	return &RESTRepository{client: client}
}

func (r *RESTRepository) FindAll(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	if err := r.client.Get(ctx, resource, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *RESTRepository) FindByID(ctx context.Context, id int64) (*model.CustomerWithSales, error) {
	var c model.CustomerWithSales
	if err := r.client.Get(ctx, httpclient.ResourcePath(resource, id), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *RESTRepository) Create(ctx context.Context, req *dto.CustomerRequest) (*model.Customer, error) {
	var c model.Customer
	if err := r.client.Post(ctx, resource, req, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *RESTRepository) Update(ctx context.Context, id int64, req *dto.CustomerRequest) (*model.Customer, error) {
	var c model.Customer
	if err := r.client.Put(ctx, httpclient.ResourcePath(resource, id), req, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *RESTRepository) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, httpclient.ResourcePath(resource, id))
}
