package events

import (
	"context"
	"strings"

	"github.com/eatwithchiso/service-booking/internal/application"
	"github.com/eatwithchiso/service-booking/internal/common/domain"
	"github.com/eatwithchiso/service-booking/internal/common/kafka"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// BookingCreator is the use case the command consumer drives.
type BookingCreator interface {
	CreateBooking(ctx context.Context, req application.CreateBookingRequest) (*application.BookingResult, error)
}

// BookingCommandConsumer turns booking.create.requested commands into bookings.
type BookingCommandConsumer struct {
	consumer *kafka.Consumer
	bookings BookingCreator
	logger   *zap.Logger
}

// NewBookingCommandConsumer creates a new consumer for booking commands.
func NewBookingCommandConsumer(
	brokers []string,
	groupID string,
	bookings BookingCreator,
	logger *zap.Logger,
) *BookingCommandConsumer {
	consumer := kafka.NewConsumer(brokers, groupID, TopicBookingCommands, logger)
	return &BookingCommandConsumer{
		consumer: consumer,
		bookings: bookings,
		logger:   logger,
	}
}

// Start begins consuming booking commands. It blocks until the context is cancelled.
func (c *BookingCommandConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

// handleMessage routes incoming Kafka messages to the appropriate handler.
func (c *BookingCommandConsumer) handleMessage(ctx context.Context, msg kafkago.Message) error {
	cloudEvent, err := kafka.ParseCloudEvent(msg.Value)
	if err != nil {
		c.logger.Error("failed to parse cloud event from command topic",
			zap.Error(err),
			zap.String("raw", string(msg.Value)),
		)
		return err
	}

	c.logger.Info("received booking command",
		zap.String("type", cloudEvent.Type),
		zap.String("id", cloudEvent.ID),
	)

	switch {
	case strings.EqualFold(cloudEvent.Type, BookingCreateRequested):
		return c.handleCreateRequested(ctx, cloudEvent)

	default:
		c.logger.Debug("ignoring unhandled booking command type",
			zap.String("type", cloudEvent.Type),
		)
		return nil
	}
}

// handleCreateRequested books a table from the command payload. Rejections are
// logged and acknowledged.
func (c *BookingCommandConsumer) handleCreateRequested(ctx context.Context, ce kafka.CloudEvent) error {
	var req application.CreateBookingRequest
	if err := ce.ParseData(&req); err != nil {
		c.logger.Error("failed to parse booking command data", zap.Error(err))
		return err
	}

	res, err := c.bookings.CreateBooking(ctx, req)
	if err != nil {
		if domain.IsKind(err, domain.ErrValidation) || domain.IsKind(err, domain.ErrCapacity) {
			c.logger.Warn("booking command rejected",
				zap.String("command_id", ce.ID),
				zap.String("reason", err.Error()),
			)
			return nil
		}
		return err
	}

	c.logger.Info("booking created from command",
		zap.String("command_id", ce.ID),
		zap.String("booking_id", res.Booking.ID.String()),
	)
	return nil
}

// Close closes the underlying Kafka consumer.
func (c *BookingCommandConsumer) Close() error {
	return c.consumer.Close()
}
