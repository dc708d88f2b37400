package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labela/labela-control/internal/pkg/apperror"
	"github.com/labela/labela-control/internal/pkg/logger"
)

type staticCreds string

func (s staticCreds) Credential() string { return string(s) }

func newTestClient(t *testing.T, srv *httptest.Server, creds CredentialSource) *Client {
	t.Helper()
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	return NewClient(srv.Client(), *u, creds, logger.NewNop())
}

func TestClient_AttachesBearerAndRequestID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get(AuthorizationKey))
		assert.NotEmpty(t, r.Header.Get(RequestIDKey))
		assert.Equal(t, "/customers/7", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":7}`))
	}))
	defer srv.Close()

	var out struct {
		ID int64 `json:"id"`
	}
	err := newTestClient(t, srv, staticCreds("tok-123")).Get(context.Background(), "customers/7", &out)
	require.NoError(t, err)
	assert.Equal(t, int64(7), out.ID)
}

func TestClient_NoCredentialNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(AuthorizationKey))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, newTestClient(t, srv, staticCreds("")).Delete(context.Background(), "customers/1"))
	require.NoError(t, newTestClient(t, srv, nil).Delete(context.Background(), "customers/1"))
}

func TestClient_PostEncodesJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, ApplicationJSONType, r.Header.Get(ContentType))

		var got map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "Ana", got["name"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1,"name":"Ana"}`))
	}))
	defer srv.Close()

	var out map[string]any
	err := newTestClient(t, srv, nil).Post(context.Background(), "customers", map[string]string{"name": "Ana"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "Ana", out["name"])
}

func TestClient_ErrorCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"Estoque insuficiente"}`))
	}))
	defer srv.Close()

	err := newTestClient(t, srv, nil).Post(context.Background(), "sales", map[string]int{"customer_id": 1}, nil)
	require.Error(t, err)

	appErr := apperror.AppErrorFromError(err)
	assert.Equal(t, apperror.KindHTTP, appErr.Kind)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	assert.Equal(t, "Estoque insuficiente", appErr.ServerMessage())
}

func TestClient_NotFoundWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`<html>nope</html>`))
	}))
	defer srv.Close()

	err := newTestClient(t, srv, nil).Get(context.Background(), "products/99", &struct{}{})
	assert.True(t, apperror.IsNotFound(err))
	assert.Empty(t, apperror.AppErrorFromError(err).ServerMessage())
}

type failingDoer struct{ calls int }

func (f *failingDoer) Do(*http.Request) (*http.Response, error) {
	f.calls++
	return nil, errors.New("dial tcp: connection refused")
}

func TestClient_NetworkErrorNotRetried(t *testing.T) {
	doer := &failingDoer{}
	u, _ := url.Parse("http://api.invalid")
	c := NewClient(doer, *u, nil, logger.NewNop())

	err := c.Get(context.Background(), "sales", &struct{}{})
	require.Error(t, err)
	assert.Equal(t, apperror.KindNetwork, apperror.AppErrorFromError(err).Kind)
	assert.Equal(t, 1, doer.calls)
}
