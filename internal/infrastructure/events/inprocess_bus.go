// Package events provides the concrete event sinks: an in-process broadcast
// bus, a RabbitMQ publisher, and a fanout that feeds both. Handlers depend
// only on the abstract event.Publisher.
package events

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/employee-management-api/internal/domain/event"
)

// InProcessBus delivers events synchronously to subscribers in the same
// process. A failing subscriber is logged and does not stop the others.
type InProcessBus struct {
	mu       sync.RWMutex
	handlers map[string][]event.Handler
	logger   *logrus.Logger
}

func NewInProcessBus(logger *logrus.Logger) *InProcessBus {
	return &InProcessBus{handlers: map[string][]event.Handler{}, logger: logger}
}

func (b *InProcessBus) Subscribe(eventType string, h event.Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], h)
}

func (b *InProcessBus) Publish(ctx context.Context, evt event.Event) error {
	b.mu.RLock()
	handlers := b.handlers[evt.EventType()]
	b.mu.RUnlock()

	for _, h := range handlers {
		if err := h.Handle(ctx, evt); err != nil {
			b.logger.WithError(err).
				WithFields(logrus.Fields{"event_type": evt.EventType(), "event_id": evt.EventID()}).
				Error("event handler failed")
		}
	}
	return nil
}

var _ event.Publisher = (*InProcessBus)(nil)
