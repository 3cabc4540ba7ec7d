package events

import (
	"context"
	"fmt"
	"time"

	"github.com/eatwithchiso/service-booking/internal/application"
	"github.com/eatwithchiso/service-booking/internal/common/kafka"
	"go.uber.org/zap"
)

// EventProducer is the part of kafka.Producer the publisher needs.
type EventProducer interface {
	PublishEvent(ctx context.Context, topic string, ce kafka.CloudEvent) error
}

// BookingPublisher publishes booking.created events to booking.events.
type BookingPublisher struct {
	producer EventProducer
	logger   *zap.Logger
}

// NewBookingPublisher creates a publisher over producer.
func NewBookingPublisher(producer EventProducer, logger *zap.Logger) *BookingPublisher {
	return &BookingPublisher{producer: producer, logger: logger}
}

// PublishBookingCreated implements application.EventPublisher.
func (p *BookingPublisher) PublishBookingCreated(ctx context.Context, b application.BookingDTO) error {
	event := BookingCreatedEvent{
		BookingID:  b.ID,
		Name:       b.Name,
		Email:      b.Email,
		Date:       b.Date,
		Time:       b.Time,
		Guests:     b.Guests,
		CreatedAt:  b.CreatedAt,
		OccurredAt: time.Now().UTC(),
	}
	ce, err := kafka.NewCloudEvent(Source, BookingCreated, event)
	if err != nil {
		return fmt.Errorf("failed to create cloud event: %w", err)
	}
	return p.producer.PublishEvent(ctx, TopicBookingEvents, ce)
}

// NoopPublisher drops events; used when Kafka is disabled.
type NoopPublisher struct{}

// PublishBookingCreated implements application.EventPublisher.
func (NoopPublisher) PublishBookingCreated(context.Context, application.BookingDTO) error {
	return nil
}
