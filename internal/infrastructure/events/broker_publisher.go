package events

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/employee-management-api/internal/domain/event"
	"github.com/oksasatya/employee-management-api/pkg/helpers"
)

// BrokerPublisher pushes events to the RabbitMQ fanout exchange as JSON.
type BrokerPublisher struct {
	rabbit *helpers.RabbitPublisher
	logger *logrus.Logger
}

func NewBrokerPublisher(rabbit *helpers.RabbitPublisher, logger *logrus.Logger) *BrokerPublisher {
	return &BrokerPublisher{rabbit: rabbit, logger: logger}
}

func (p *BrokerPublisher) Publish(ctx context.Context, evt event.Event) error {
	return p.rabbit.PublishJSON(ctx, evt.EventType(), evt)
}

// Fanout forwards each event to every sink. Delivery is best-effort: a
// failed sink is logged and the remaining sinks still receive the event.
type Fanout struct {
	sinks  []event.Publisher
	logger *logrus.Logger
}

func NewFanout(logger *logrus.Logger, sinks ...event.Publisher) *Fanout {
	return &Fanout{sinks: sinks, logger: logger}
}

func (f *Fanout) Publish(ctx context.Context, evt event.Event) error {
	for _, s := range f.sinks {
		if err := s.Publish(ctx, evt); err != nil {
			f.logger.WithError(err).
				WithFields(logrus.Fields{"event_type": evt.EventType(), "event_id": evt.EventID()}).
				Warn("event sink publish failed")
		}
	}
	return nil
}

var (
	_ event.Publisher = (*BrokerPublisher)(nil)
	_ event.Publisher = (*Fanout)(nil)
)
