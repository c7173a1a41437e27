package mediator

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/skillup-platform/skillup-backend/internal/platform/ctxutil"
	"github.com/skillup-platform/skillup-backend/internal/result"
)

type echoCommand struct {
	Value string `validate:"required,max=10"`
}

type echoHandler struct {
	gotRC ctxutil.RequestContext
}

func (h *echoHandler) Handle(_ context.Context, rc ctxutil.RequestContext, cmd echoCommand) result.Result[string] {
	h.gotRC = rc
	return result.Ok(cmd.Value)
}

func TestSend_DispatchesToRegisteredHandler(t *testing.T) {
	m := New()
	h := &echoHandler{}
	require.NoError(t, Register(m, h))

	res := Send[echoCommand, string](context.Background(), m, echoCommand{Value: "hello"})
	require.True(t, res.Success)
	require.Equal(t, "hello", res.Data)
}

func TestSend_PassesRequestContextFromContext(t *testing.T) {
	m := New()
	h := &echoHandler{}
	require.NoError(t, Register(m, h))

	rc := ctxutil.RequestContext{UserID: uuid.New(), Email: "a@b.c", Role: "admin"}
	ctx := ctxutil.WithRequestContext(context.Background(), rc)

	res := Send[echoCommand, string](ctx, m, echoCommand{Value: "x"})
	require.True(t, res.Success)
	require.Equal(t, rc, h.gotRC)
}

func TestSend_ValidationShortCircuits(t *testing.T) {
	m := New()
	h := &echoHandler{}
	require.NoError(t, Register(m, h))

	res := Send[echoCommand, string](context.Background(), m, echoCommand{})
	require.False(t, res.Success)
	require.Equal(t, "validation failed", res.Error)
	require.NotEmpty(t, res.ValidationErrors)
	require.Empty(t, h.gotRC.Email, "handler must not run on invalid input")

	res = Send[echoCommand, string](context.Background(), m, echoCommand{Value: "far too long value"})
	require.False(t, res.Success)
	require.NotEmpty(t, res.ValidationErrors)
}

func TestSend_NoHandlerRegistered(t *testing.T) {
	m := New()
	res := Send[echoCommand, string](context.Background(), m, echoCommand{Value: "x"})
	require.False(t, res.Success)
	require.Contains(t, res.Error, ErrNoHandler.Error())
}

func TestRegister_RejectsDuplicates(t *testing.T) {
	m := New()
	require.NoError(t, Register(m, &echoHandler{}))
	require.Error(t, Register(m, &echoHandler{}))
}
