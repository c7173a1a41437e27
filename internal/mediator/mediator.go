// Package mediator routes typed command/query objects to their single
// registered handler. Controllers never call handlers directly; composition
// happens only through repeated dispatch.
package mediator

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/skillup-platform/skillup-backend/internal/platform/ctxutil"
	"github.com/skillup-platform/skillup-backend/internal/result"
)

var ErrNoHandler = errors.New("no handler registered")

// Handler executes one command or query. The request context travels next to
// the command instead of hiding in ambient state.
type Handler[C any, R any] interface {
	Handle(ctx context.Context, rc ctxutil.RequestContext, cmd C) result.Result[R]
}

type Mediator struct {
	mu       sync.RWMutex
	handlers map[reflect.Type]any
	validate *validator.Validate
}

func New() *Mediator {
	return &Mediator{
		handlers: make(map[reflect.Type]any),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Register binds handler h as the single handler for command type C.
// Registering a second handler for the same type is a wiring bug.
func Register[C any, R any](m *Mediator, h Handler[C, R]) error {
	if h == nil {
		return fmt.Errorf("nil handler")
	}
	t := reflect.TypeOf((*C)(nil)).Elem()
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.handlers[t]; exists {
		return fmt.Errorf("handler already registered for %s", t)
	}
	m.handlers[t] = h
	return nil
}

// MustRegister panics on duplicate registration; wiring runs once at boot.
func MustRegister[C any, R any](m *Mediator, h Handler[C, R]) {
	if err := Register(m, h); err != nil {
		panic(err)
	}
}

// Send validates cmd against its declared rules, resolves the one handler for
// its type and invokes it. Validation failures short-circuit without reaching
// the handler.
func Send[C any, R any](ctx context.Context, m *Mediator, cmd C) result.Result[R] {
	if msgs := m.validateCmd(cmd); len(msgs) > 0 {
		return result.Invalid[R](msgs)
	}

	t := reflect.TypeOf((*C)(nil)).Elem()
	m.mu.RLock()
	raw, ok := m.handlers[t]
	m.mu.RUnlock()
	if !ok {
		return result.Failuref[R]("%s for %s", ErrNoHandler, t)
	}
	h, ok := raw.(Handler[C, R])
	if !ok {
		return result.Failuref[R]("handler for %s has mismatched result type", t)
	}

	rc := ctxutil.GetRequestContext(ctx)
	return h.Handle(ctx, rc, cmd)
}

func (m *Mediator) validateCmd(cmd any) []string {
	v := reflect.ValueOf(cmd)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return []string{"nil command"}
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	err := m.validate.Struct(cmd)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return msgs
}
