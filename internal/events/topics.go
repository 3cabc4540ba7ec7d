package events

import (
	"time"

	"github.com/google/uuid"
)

// Topics and CloudEvent types produced and consumed by this service.
const (
	Source = "service-booking"

	TopicBookingEvents   = "booking.events"
	TopicBookingCommands = "booking.commands"

	BookingCreated         = "booking.created"
	BookingCreateRequested = "booking.create.requested"
)

// BookingCreatedEvent is the payload of a booking.created CloudEvent.
type BookingCreatedEvent struct {
	BookingID  uuid.UUID `json:"bookingId"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Guests     int       `json:"guests"`
	CreatedAt  time.Time `json:"createdAt"`
	OccurredAt time.Time `json:"occurredAt"`
}
