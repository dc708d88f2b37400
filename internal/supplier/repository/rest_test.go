package repository

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labela/labela-control/internal/pkg/apperror"
	"github.com/labela/labela-control/internal/pkg/httpclient"
	"github.com/labela/labela-control/internal/pkg/logger"
	"github.com/labela/labela-control/internal/supplier/dto"
)

func newRepo(t *testing.T, h http.HandlerFunc) *RESTRepository {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	return NewRESTRepository(httpclient.NewClient(srv.Client(), *u, nil, logger.NewNop()))
}

func TestRESTRepository_FindAll(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/suppliers", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":2,"name":"Tecidos Sul","cnpj":"12.345.678/0001-90"}]`))
	})

	suppliers, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, suppliers, 1)
	assert.Equal(t, "12.345.678/0001-90", *suppliers[0].CNPJ)
}

func TestRESTRepository_UpdateBody(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/suppliers/2", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"Tecidos Sul","phone":"11 3333-0000"}`, string(body))
		_, _ = w.Write([]byte(`{"id":2,"name":"Tecidos Sul","phone":"11 3333-0000"}`))
	})

	name, phone := "Tecidos Sul", "11 3333-0000"
	s, err := repo.Update(context.Background(), 2, &dto.SupplierRequest{Name: &name, Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "11 3333-0000", *s.Phone)
}

func TestRESTRepository_FindByIDNotFound(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	s, err := repo.FindByID(context.Background(), 404)
	assert.Nil(t, s)
	assert.True(t, apperror.IsNotFound(err))
}
