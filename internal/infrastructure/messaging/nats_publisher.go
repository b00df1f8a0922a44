package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// natsConn is the subset of *nats.Conn the publisher needs.
type natsConn interface {
	Publish(subj string, data []byte) error
}

type NatsPublisher struct {
	conn   natsConn
	logger *zap.Logger
}

func ConnectNats(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(
		url,
		nats.Name("pagseguro-gateway"),
		nats.ReconnectWait(3*time.Second),
		nats.MaxReconnects(-1),
		nats.MaxPingsOutstanding(5),
		nats.PingInterval(10*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats %s: %w", url, err)
	}
	return nc, nil
}

func NewNatsPublisher(conn natsConn, logger *zap.Logger) *NatsPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NatsPublisher{conn: conn, logger: logger}
}

// Publish sends data as JSON on the lower-cased subject.
func (p *NatsPublisher) Publish(ctx context.Context, subject string, data any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode event %s: %w", subject, err)
	}

	subject = strings.ToLower(subject)
	if err := p.conn.Publish(subject, body); err != nil {
		p.logger.Error("[messaging][nats] publish failed", zap.String("subject", subject), zap.Error(err))
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	p.logger.Debug("[messaging][nats] published", zap.String("subject", subject), zap.Int("bytes", len(body)))
	return nil
}

// NopPublisher drops every event. It stands in when NATS is not configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }
