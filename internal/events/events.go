// Package events publishes domain events over NATS. Publishing is
// fire-and-forget: a broker outage degrades the storefront to
// notification-less operation instead of failing requests.
package events

import (
	"encoding/json"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// Subjects for the events this service emits.
const (
	SubjectOrderCreated     = "atelier.orders.created"
	SubjectContactSubmitted = "atelier.contact.submitted"
	SubjectSettingsUpdated  = "atelier.settings.updated"
)

// Publisher emits named events with a JSON payload.
type Publisher interface {
	Publish(subject string, payload any)
}

// NATSPublisher publishes events to a NATS connection.
type NATSPublisher struct {
	conn   *nats.Conn
	logger zerolog.Logger
}

var _ Publisher = (*NATSPublisher)(nil)

func NewNATSPublisher(conn *nats.Conn, logger zerolog.Logger) *NATSPublisher {
	return &NATSPublisher{conn: conn, logger: logger}
}

func (p *NATSPublisher) Publish(subject string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error().Err(err).Str("subject", subject).Msg("event payload marshal failed")
		return
	}
	if err := p.conn.Publish(subject, data); err != nil {
		p.logger.Warn().Err(err).Str("subject", subject).Msg("event publish failed")
	}
}

// NopPublisher discards events. Used when no NATS URL is configured.
type NopPublisher struct{}

var _ Publisher = NopPublisher{}

func (NopPublisher) Publish(string, any) {}

// Stream delivers events published by other replicas. Subscribe returns a
// function that tears the subscription down.
type Stream interface {
	Subscribe(subject string, handler func(data []byte)) (func(), error)
}

// NATSStream subscribes over a NATS connection.
type NATSStream struct {
	conn   *nats.Conn
	logger zerolog.Logger
}

var _ Stream = (*NATSStream)(nil)

func NewNATSStream(conn *nats.Conn, logger zerolog.Logger) *NATSStream {
	return &NATSStream{conn: conn, logger: logger}
}

func (s *NATSStream) Subscribe(subject string, handler func(data []byte)) (func(), error) {
	sub, err := s.conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(msg.Data)
	})
	if err != nil {
		return nil, err
	}
	return func() {
		if err := sub.Unsubscribe(); err != nil {
			s.logger.Warn().Err(err).Str("subject", subject).Msg("unsubscribe failed")
		}
	}, nil
}
