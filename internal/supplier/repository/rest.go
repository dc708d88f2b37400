package repository

import (
	"context"

	"github.com/labela/labela-control/internal/model"
	"github.com/labela/labela-control/internal/pkg/httpclient"
	"github.com/labela/labela-control/internal/supplier/dto"
)

const resource = "suppliers"

type RESTRepository struct {
	client httpclient.Requester
}

func NewRESTRepository(client httpclient.Requester) *RESTRepository {
	return &RESTRepository{client: client}
}

func (r *RESTRepository) FindAll(ctx context.Context) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	if err := r.client.Get(ctx, resource, &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *RESTRepository) FindByID(ctx context.Context, id int64) (*model.Supplier, error) {
	return decode(func(s *model.Supplier) error {
		return r.client.Get(ctx, httpclient.ResourcePath(resource, id), s)
	})
}

func (r *RESTRepository) Create(ctx context.Context, req *dto.SupplierRequest) (*model.Supplier, error) {
	return decode(func(s *model.Supplier) error {
		return r.client.Post(ctx, resource, req, s)
	})
}

func (r *RESTRepository) Update(ctx context.Context, id int64, req *dto.SupplierRequest) (*model.Supplier, error) {
	return decode(func(s *model.Supplier) error {
		return r.client.Put(ctx, httpclient.ResourcePath(resource, id), req, s)
	})
}

func (r *RESTRepository) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, httpclient.ResourcePath(resource, id))
}

func decode(call func(*model.Supplier) error) (*model.Supplier, error) {
	var s model.Supplier
	if err := call(&s); err != nil {
		return nil, err
	}
	return &s, nil
}
