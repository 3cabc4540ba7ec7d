package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/eatwithchiso/service-booking/internal/adapter"
	"github.com/eatwithchiso/service-booking/internal/common/domain"
	"github.com/eatwithchiso/service-booking/internal/domain/booking"
	"github.com/eatwithchiso/service-booking/internal/saga"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventPublisher announces bookings to other services.
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, b BookingDTO) error
}

// Option configures a BookingService.
type Option func(*BookingService)

// WithClock overrides the time source used for past-date checks and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *BookingService) { s.now = now }
}

// BookingService is the application service behind every availability query
// and booking creation path.
//
// Capacity is checked with a plain read before the write; two concurrent
// requests for the last place in a slot can both be admitted.
type BookingService struct {
	repo      booking.BookingRepository
	notifier  adapter.Notifier
	publisher EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	repo booking.BookingRepository,
	notifier adapter.Notifier,
	publisher EventPublisher,
	logger *zap.Logger,
	opts ...Option,
) *BookingService {
	s := &BookingService{
		repo:      repo,
		notifier:  notifier,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateBooking validates req, checks capacity, stores the booking and then
// tries to send a confirmation and publish an event.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingResult, error) {
	b, err := booking.NewBooking(req.toDetails(), s.now())
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.ListByDate(ctx, b.Date())
	if err != nil {
		return nil, fmt.Errorf("list bookings for %s: %w", b.Date(), err)
	}

	if err := booking.CheckCapacity(existing, b.Time()); err != nil {
		s.logger.Info("booking rejected",
			zap.String("date", b.Date()),
			zap.String("time", b.Time().String()),
			zap.Int("existing", len(existing)),
			zap.String("reason", err.Error()),
		)
		return nil, err
	}

	if err := saga.StoreBookingSaga(s.repo, b, s.logger).Execute(ctx); err != nil {
		return nil, fmt.Errorf("store booking: %w", err)
	}

	dto := toBookingDTO(b)
	result := &BookingResult{Booking: dto, EmailSent: true}

	if err := s.notifier.SendConfirmation(ctx, toConfirmation(b)); err != nil {
		s.logger.Warn("confirmation email failed",
			zap.String("booking_id", dto.ID.String()),
			zap.Error(err),
		)
		result.EmailSent = false
		result.EmailError = err.Error()
	}

	if err := s.publisher.PublishBookingCreated(ctx, dto); err != nil {
		s.logger.Warn("failed to publish booking created event",
			zap.String("booking_id", dto.ID.String()),
			zap.Error(err),
		)
	}

	s.logger.Info("booking created",
		zap.String("booking_id", dto.ID.String()),
		zap.String("date", dto.Date),
		zap.String("time", dto.Time),
		zap.Int("guests", dto.Guests),
		zap.Bool("email_sent", result.EmailSent),
	)
	return result, nil
}

// Availability returns the open slots for date.
func (s *BookingService) Availability(ctx context.Context, date string) (*AvailabilityDTO, error) {
	canonical, err := parseQueryDate(date)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.ListByDate(ctx, canonical)
	if err != nil {
		return nil, fmt.Errorf("list bookings for %s: %w", canonical, err)
	}

	slots := booking.AvailableSlots(existing)
	out := make([]string, len(slots))
	for i, slot := range slots {
		out[i] = slot.String()
	}
	return &AvailabilityDTO{Date: canonical, AvailableSlots: out}, nil
}

// ListBookings returns every booking stored for date.
func (s *BookingService) ListBookings(ctx context.Context, date string) ([]BookingDTO, error) {
	canonical, err := parseQueryDate(date)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.ListByDate(ctx, canonical)
	if err != nil {
		return nil, fmt.Errorf("list bookings for %s: %w", canonical, err)
	}

	dtos := make([]BookingDTO, len(bookings))
	for i, b := range bookings {
		dtos[i] = toBookingDTO(b)
	}
	return dtos, nil
}

// GetBooking retrieves a booking by its ID.
func (s *BookingService) GetBooking(ctx context.Context, id uuid.UUID) (*BookingDTO, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toBookingDTO(b)
	return &dto, nil
}

func parseQueryDate(date string) (string, error) {
	if strings.TrimSpace(date) == "" {
		return "", domain.NewValidationError("Date parameter is required")
	}
	canonical, err := booking.ParseDate(date)
	if err != nil {
		return "", domain.NewValidationError("Please enter a valid date (YYYY-MM-DD)")
	}
	return canonical, nil
}

func toConfirmation(b *booking.Booking) adapter.Confirmation {
	p := b.Preferences()
	return adapter.Confirmation{
		BookingID:   b.ID(),
		Name:        b.Name(),
		Email:       b.Email(),
		Date:        b.Date(),
		Time:        b.Time().String(),
		Guests:      b.Guests(),
		PancakeType: p.PancakeType,
		EggStyle:    p.EggStyle,
		Sides:       p.Sides,
		Meat:        p.Meat,
		Additions:   p.Additions,
	}
}
