package saga

import (
	"context"

	"github.com/eatwithchiso/service-booking/internal/domain/booking"
	"go.uber.org/zap"
)

// StoreBookingSaga writes a booking record and its date index entry.
// If the index write fails the record is removed again, so a booking is
// either listed for its date or absent.
func StoreBookingSaga(repo booking.BookingRepository, b *booking.Booking, logger *zap.Logger) *Saga {
	s := NewSaga("store_booking", logger.With(zap.String("booking_id", b.ID().String())))

	s.AddStep(SagaStep{
		Name: "store_booking",
		Execute: func(ctx context.Context) error {
			return repo.Store(ctx, b)
		},
		Compensate: func(ctx context.Context) error {
			return repo.Discard(ctx, b.ID())
		},
	})

	s.AddStep(SagaStep{
		Name: "store_date_index",
		Execute: func(ctx context.Context) error {
			return repo.Index(ctx, b)
		},
	})

	return s
}
