package booking

import (
	"context"

	"github.com/google/uuid"
)

// BookingRepository defines the persistence contract for bookings.
// A booking becomes visible to ListByDate only after both Store and Index succeed.
type BookingRepository interface {
	// Store writes the full booking record.
	Store(ctx context.Context, b *Booking) error

	// Index writes the secondary (date, id) entry for b.
	Index(ctx context.Context, b *Booking) error

	// Discard removes a record whose index write never happened.
	Discard(ctx context.Context, id uuid.UUID) error

	// FindByID retrieves a booking by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)

	// ListByDate returns every indexed booking for a canonical YYYY-MM-DD date.
	ListByDate(ctx context.Context, date string) ([]*Booking, error)

	// Ping checks that the backing store is reachable.
	Ping(ctx context.Context) error
}
