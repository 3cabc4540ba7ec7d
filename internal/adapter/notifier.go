package adapter

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Confirmation is everything a confirmation message needs about a booking.
type Confirmation struct {
	BookingID   uuid.UUID
	Name        string
	Email       string
	Date        string
	Time        string
	Guests      int
	PancakeType string
	EggStyle    string
	Sides       []string
	Meat        string
	Additions   []string
}

// Notifier defines the Anti-Corruption Layer interface for sending booking
// confirmations. Implementations return an error when the provider does not
// accept the message; callers decide whether that is fatal.
type Notifier interface {
	SendConfirmation(ctx context.Context, c Confirmation) error
}

// ErrEmailNotConfigured is returned when no email provider is configured.
var ErrEmailNotConfigured = errors.New("Email service not configured. Please contact Chef Chiso directly to receive your confirmation email.")

// UnconfiguredNotifier stands in for a provider when none is configured.
// Every confirmation fails with ErrEmailNotConfigured.
type UnconfiguredNotifier struct {
	logger *zap.Logger
}

// NewUnconfiguredNotifier creates a notifier that never delivers.
func NewUnconfiguredNotifier(logger *zap.Logger) *UnconfiguredNotifier {
	return &UnconfiguredNotifier{logger: logger}
}

// SendConfirmation logs the undelivered confirmation and returns ErrEmailNotConfigured.
func (u *UnconfiguredNotifier) SendConfirmation(ctx context.Context, c Confirmation) error {
	u.logger.Warn("confirmation email not sent, no provider configured",
		zap.String("booking_id", c.BookingID.String()),
		zap.String("to", c.Email),
	)
	return ErrEmailNotConfigured
}

// MockNotifier is a testing implementation of Notifier.
// It logs the message instead of delivering it.
type MockNotifier struct {
	logger *zap.Logger
}

// NewMockNotifier creates a new mock notifier.
func NewMockNotifier(logger *zap.Logger) *MockNotifier {
	return &MockNotifier{logger: logger}
}

// SendConfirmation logs the confirmation and always succeeds.
func (m *MockNotifier) SendConfirmation(ctx context.Context, c Confirmation) error {
	m.logger.Info("[MOCK EMAIL] booking confirmation",
		zap.String("booking_id", c.BookingID.String()),
		zap.String("to", c.Email),
		zap.String("date", c.Date),
		zap.String("time", c.Time),
		zap.Int("guests", c.Guests),
	)
	return nil
}
