package repository

import (
	"context"

	"github.com/labela/labela-control/internal/auth/dto"
	"github.com/labela/labela-control/internal/pkg/httpclient"
)

type RESTRepository struct {
	client httpclient.Requester
}

func NewRESTRepository(client httpclient.Requester) *RESTRepository {
	return &RESTRepository{client: client}
}

func (r *RESTRepository) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	var resp dto.LoginResponse
	if err := r.client.Post(ctx, "auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
