package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoTranslator struct{}

func (echoTranslator) T(id string, _ ...map[string]any) string { return "t:" + id }

func TestNewHTTP_Kinds(t *testing.T) {
	assert.Equal(t, KindNotFound, NewHTTP(http.StatusNotFound).Kind)
	assert.Equal(t, KindUnauthorized, NewHTTP(http.StatusUnauthorized).Kind)

	conflict := NewHTTP(http.StatusConflict)
	assert.Equal(t, KindHTTP, conflict.Kind)
	assert.Equal(t, "conflict", conflict.Msg)
	assert.False(t, conflict.IsInternalError())
	assert.True(t, NewHTTP(http.StatusBadGateway).IsInternalError())
}

func TestAppError_IsAndUnwrap(t *testing.T) {
	base := errors.New("connection refused")
	err := fmt.Errorf("list customers: %w", NewNetwork(base))

	assert.ErrorIs(t, err, base)
	assert.ErrorIs(t, err, NewNetwork(nil))
	assert.False(t, errors.Is(err, NewNotFound()))

	nf := fmt.Errorf("get: %w", NewNotFound().Wrap(nil, "Cliente não encontrado"))
	assert.True(t, IsNotFound(nf))
	assert.Equal(t, "not found: Cliente não encontrado", NewNotFound().Wrap(nil, "Cliente não encontrado").Error())
}

func TestAppErrorFromError(t *testing.T) {
	plain := errors.New("boom")
	appErr := AppErrorFromError(plain)
	assert.Equal(t, KindInternal, appErr.Kind)
	assert.Same(t, plain, appErr.Base)

	nf := NewNotFound()
	assert.Same(t, nf, AppErrorFromError(fmt.Errorf("wrapped: %w", nf)))
}

func TestValidationError(t *testing.T) {
	v := &ValidationError{}
	require.NoError(t, v.Err())

	v.Add("customer_id", "CustomerRequired")
	v.Add("products", "ProductsRequired")

	err := v.Err()
	require.Error(t, err)
	assert.True(t, v.Has("products"))
	assert.False(t, v.Has("payment_method_id"))
	assert.Equal(t, "validation failed: customer_id, products", err.Error())

	got, ok := AsValidation(fmt.Errorf("submit: %w", err))
	require.True(t, ok)
	assert.Len(t, got.Violations, 2)
}

func TestUserMessage(t *testing.T) {
	tr := echoTranslator{}

	assert.Equal(t, "", UserMessage(nil, tr, "GenericError"))
	assert.Equal(t, "Estoque insuficiente",
		UserMessage(NewHTTP(http.StatusBadRequest).Wrap(nil, "Estoque insuficiente"), tr, "SaleCreateFailed"))
	assert.Equal(t, "t:SaleCreateFailed",
		UserMessage(NewHTTP(http.StatusInternalServerError), tr, "SaleCreateFailed"))
	assert.Equal(t, "t:SaleCreateFailed",
		UserMessage(NewNetwork(errors.New("timeout")), tr, "SaleCreateFailed"))

	v := &ValidationError{}
	v.Add("customer_id", "CustomerRequired")
	v.Add("payment_method_id", "PaymentMethodRequired")
	assert.Equal(t, "t:CustomerRequired; t:PaymentMethodRequired", UserMessage(v, tr, "SaleCreateFailed"))
}
