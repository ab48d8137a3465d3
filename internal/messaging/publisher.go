package messaging

import (
	"context"

	"github.com/feral-file/ff-rental-engine/internal/domain"
)

// Publisher defines the interface for publishing rental lifecycle events
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a rental lifecycle event to the message broker
	PublishEvent(ctx context.Context, event *domain.RentalEvent) error
	// Close closes the connection
	Close()
}

// noopPublisher drops events; used when no broker is configured
type noopPublisher struct{}

// NewNoopPublisher creates a publisher that discards all events
func NewNoopPublisher() Publisher {
	return &noopPublisher{}
}

func (p *noopPublisher) PublishEvent(ctx context.Context, event *domain.RentalEvent) error {
	return nil
}

func (p *noopPublisher) Close() {}
