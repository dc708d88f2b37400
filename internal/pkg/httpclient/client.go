package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/labela/labela-control/internal/pkg/apperror"
	"github.com/labela/labela-control/internal/pkg/logger"
)

const (
	AuthorizationKey    = "Authorization"
	ContentType         = "Content-Type"
	RequestIDKey        = "X-Request-ID"
	ApplicationJSONType = "application/json"
)

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// CredentialSource yields the bearer credential for the current session, or "".
type CredentialSource interface {
	Credential() string
}

type Client struct {
	client    httpClient
	serverURL url.URL
	creds     CredentialSource
	logger    logger.ZapLogger
}

func NewClient(client httpClient, serverURL url.URL, creds CredentialSource, log logger.ZapLogger) *Client {
	return &Client{
		client:    client,
		serverURL: serverURL,
		creds:     creds,
		logger:    log,
	}
}

type errorResponse struct {
	Message string `json:"message"`
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPut, path, in, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do issues exactly one request. Failures are never retried.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	target := c.serverURL.JoinPath(path)

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return apperror.NewAppError(fmt.Errorf("encode request: %w", err))
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return apperror.NewAppError(err)
	}

	requestID := uuid.New().String()
	req.Header.Set(RequestIDKey, requestID)
	req.Header.Set("Accept", ApplicationJSONType)
	if in != nil {
		req.Header.Set(ContentType, ApplicationJSONType)
	}
	if c.creds != nil {
		if token := c.creds.Credential(); token != "" {
			req.Header.Set(AuthorizationKey, "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("method", method),
			zap.String("url", target.String()),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return apperror.NewNetwork(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	c.logger.Debug("request",
		zap.String("method", method),
		zap.String("url", target.String()),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.NewNetwork(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		er := errorResponse{}
		_ = json.Unmarshal(respBody, &er)
		return apperror.NewHTTP(resp.StatusCode).Wrap(nil, er.Message)
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}

	if err = json.Unmarshal(respBody, out); err != nil {
		return apperror.NewAppError(fmt.Errorf("decode response: %w", err))
	}

	return nil
}

// Requester is the subset of Client the REST repositories depend on.
type Requester interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, in, out any) error
	Put(ctx context.Context, path string, in, out any) error
	Delete(ctx context.Context, path string) error
}

// ResourcePath builds "<resource>/<id>".
func ResourcePath(resource string, id int64) string {
	return resource + "/" + strconv.FormatInt(id, 10)
}
