package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-rental-engine/internal/domain"
	"github.com/feral-file/ff-rental-engine/internal/logger"
)

// NATSConfig holds NATS JetStream publisher configuration
type NATSConfig struct {
	URL            string
	StreamName     string
	SubjectPrefix  string
	ConnectionName string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectTimeout time.Duration
}

type natsPublisher struct {
	nc     *nats.Conn
	js     jetstream.JetStream
	config NATSConfig
}

// NewNATSPublisher connects to NATS and ensures the rental event stream exists.
// The initial connect is retried with exponential backoff up to ConnectTimeout.
func NewNATSPublisher(ctx context.Context, cfg NATSConfig) (Publisher, error) {
	if cfg.StreamName == "" {
		cfg.StreamName = "RENTAL_EVENTS"
	}
	if cfg.SubjectPrefix == "" {
		cfg.SubjectPrefix = "rental.events"
	}
	if cfg.ConnectTimeout == 0 {
		cfg.ConnectTimeout = 30 * time.Second
	}

	var nc *nats.Conn
	connect := func() error {
		var err error
		nc, err = nats.Connect(cfg.URL,
			nats.Name(cfg.ConnectionName),
			nats.MaxReconnects(cfg.MaxReconnects),
			nats.ReconnectWait(cfg.ReconnectWait),
		)
		return err
	}

	policy := backoff.WithContext(
		backoff.NewExponentialBackOff(backoff.WithMaxElapsedTime(cfg.ConnectTimeout)), ctx)
	if err := backoff.Retry(connect, policy); err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	// Ensure the stream exists
	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{cfg.SubjectPrefix + ".>"},
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create stream %s: %w", cfg.StreamName, err)
	}

	logger.Info("Connected to NATS",
		zap.String("url", nc.ConnectedUrl()),
		zap.String("stream", cfg.StreamName),
	)

	return &natsPublisher{nc: nc, js: js, config: cfg}, nil
}

// PublishEvent publishes a rental lifecycle event to JetStream.
// The event id is assigned here (ulid) when the caller left it empty.
func (p *natsPublisher) PublishEvent(ctx context.Context, event *domain.RentalEvent) error {
	if event == nil || !event.Valid() {
		return fmt.Errorf("refusing to publish invalid event")
	}

	if event.ID == "" {
		event.ID = ulid.Make().String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := fmt.Sprintf("%s.%s", p.config.SubjectPrefix, event.Type)
	// Dedup on the event id so redeliveries collapse server-side
	_, err = p.js.Publish(ctx, subject, data, jetstream.WithMsgID(event.ID))
	if err != nil {
		return fmt.Errorf("failed to publish event %s: %w", event.ID, err)
	}

	return nil
}

// Close closes the NATS connection
func (p *natsPublisher) Close() {
	if p.nc != nil {
		p.nc.Close()
	}
}
