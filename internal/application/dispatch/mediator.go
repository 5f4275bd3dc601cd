// Package dispatch routes a typed request object to exactly one registered
// handler and returns its typed result.
package dispatch

import (
	"context"
	"fmt"
	"reflect"
	"sync"
)

// Handler executes one use case for one request type.
type Handler[Req any, Res any] interface {
	Handle(ctx context.Context, req Req) (Res, error)
}

// Mediator holds the request-type to handler routing table. Registration
// happens once at startup; Send is safe for concurrent use afterwards.
type Mediator struct {
	mu       sync.RWMutex
	handlers map[reflect.Type]func(ctx context.Context, req any) (any, error)
}

func NewMediator() *Mediator {
	return &Mediator{handlers: map[reflect.Type]func(ctx context.Context, req any) (any, error){}}
}

// Register binds a handler to its request type. Exactly one handler may own
// a request type; a second registration is a wiring mistake and errors.
func Register[Req any, Res any](m *Mediator, h Handler[Req, Res]) error {
	rt := reflect.TypeOf((*Req)(nil)).Elem()

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.handlers[rt]; exists {
		return fmt.Errorf("dispatch: handler already registered for %s", rt)
	}
	m.handlers[rt] = func(ctx context.Context, req any) (any, error) {
		return h.Handle(ctx, req.(Req))
	}
	return nil
}

// MustRegister is Register for startup wiring where a duplicate is fatal.
func MustRegister[Req any, Res any](m *Mediator, h Handler[Req, Res]) {
	if err := Register(m, h); err != nil {
		panic(err)
	}
}

// Send routes req to its handler and returns the typed result.
func Send[Req any, Res any](ctx context.Context, m *Mediator, req Req) (Res, error) {
	var zero Res
	rt := reflect.TypeOf((*Req)(nil)).Elem()

	m.mu.RLock()
	fn, ok := m.handlers[rt]
	m.mu.RUnlock()
	if !ok {
		return zero, fmt.Errorf("dispatch: no handler registered for %s", rt)
	}

	res, err := fn(ctx, req)
	if err != nil {
		return zero, err
	}
	out, ok := res.(Res)
	if !ok {
		return zero, fmt.Errorf("dispatch: handler for %s returned %T", rt, res)
	}
	return out, nil
}
