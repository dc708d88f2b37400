package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labela/labela-control/internal/pkg/apperror"
	"github.com/labela/labela-control/internal/pkg/logger"
)

type echoTranslator struct{}

func (echoTranslator) T(id string, _ ...map[string]any) string { return id }

func newNotifier() (*Notifier, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return NewNotifier(out, errOut, echoTranslator{}, logger.NewNop()), out, errOut
}

func TestDispatch(t *testing.T) {
	n, _, errOut := newNotifier()
	var got []string

	actions := map[string]Action{
		"list": func(_ context.Context, args []string) error {
			got = args
			return nil
		},
	}

	require.NoError(t, Dispatch(context.Background(), n, "customers", []string{"list", "-x"}, actions))
	assert.Equal(t, []string{"-x"}, got)

	assert.ErrorIs(t, Dispatch(context.Background(), n, "customers", nil, actions), ErrUsage)
	assert.ErrorIs(t, Dispatch(context.Background(), n, "customers", []string{"nope"}, actions), ErrUsage)
	assert.Contains(t, errOut.String(), "usage: labela customers <list>")
}

func TestNotifier_Failure(t *testing.T) {
	n, _, errOut := newNotifier()

	n.Failure(apperror.NewHTTP(400).Wrap(nil, "CPF inválido"), "CustomerCreateFailed")
	n.Failure(errors.New("boom"), "CustomerCreateFailed")

	assert.Equal(t, "✖ CPF inválido\n✖ CustomerCreateFailed\n", errOut.String())
}

func TestNotifier_Table(t *testing.T) {
	n, out, _ := newNotifier()

	n.Table([]string{"ID", "NOME"}, [][]string{{"1", "Ana"}, {"20", "Bia"}})

	assert.Equal(t, "ID  NOME\n1   Ana\n20  Bia\n", out.String())
}

func TestFlags(t *testing.T) {
	n, _, _ := newNotifier()
	fs := NewFlagSet("products update", n)
	id := fs.Int64("id", 0, "")
	name := fs.String("name", "", "")
	fs.String("price", "", "")

	require.NoError(t, Parse(fs, []string{"-id", "3", "-name", "Saia"}))
	assert.Equal(t, int64(3), *id)
	assert.Equal(t, "Saia", *name)
	assert.Equal(t, map[string]bool{"id": true, "name": true}, Visited(fs))
	assert.NoError(t, RequireID(fs, *id))
	assert.ErrorIs(t, RequireID(fs, 0), ErrUsage)
	assert.ErrorIs(t, Parse(NewFlagSet("x", n), []string{"-bogus"}), ErrUsage)
}

func TestDeref(t *testing.T) {
	s, empty := "x", ""
	assert.Equal(t, "x", Deref(&s))
	assert.Equal(t, "-", Deref(&empty))
	assert.Equal(t, "-", Deref(nil))
}

func TestDate(t *testing.T) {
	assert.Equal(t, "-", Date(time.Time{}))
	ts := time.Date(2025, 3, 1, 12, 30, 0, 0, time.Local)
	assert.Equal(t, "01/03/2025 12:30", Date(ts))
}
