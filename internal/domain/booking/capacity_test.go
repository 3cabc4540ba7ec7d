package booking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/eatwithchiso/service-booking/internal/common/domain"
)

func bookingsAt(slots ...Slot) []*Booking {
	out := make([]*Booking, 0, len(slots))
	for _, s := range slots {
		out = append(out, Reconstitute(uuid.New(), "Guest", "g@example.com", "2026-11-02", s, 2, Preferences{}, time.Now()))
	}
	return out
}

func TestAvailableSlots_Empty(t *testing.T) {
	assert.Equal(t, Slots(), AvailableSlots(nil))
}

func TestAvailableSlots_ThreeSlotsFull(t *testing.T) {
	existing := bookingsAt("9:00", "9:00", "11:00", "11:00", "13:00", "13:00", "10:00")

	assert.Equal(t, []Slot{"10:00", "12:00"}, AvailableSlots(existing))
}

func TestAvailableSlots_OneBookingLeavesSlotOpen(t *testing.T) {
	existing := bookingsAt("12:00")
	assert.Contains(t, AvailableSlots(existing), Slot("12:00"))
}

func TestCheckCapacity_SlotFull(t *testing.T) {
	err := CheckCapacity(bookingsAt("10:00", "10:00"), "10:00")
	assert.True(t, domain.IsKind(err, domain.ErrCapacity))

	assert.NoError(t, CheckCapacity(bookingsAt("10:00", "10:00"), "11:00"))
	assert.NoError(t, CheckCapacity(bookingsAt("10:00"), "10:00"))
}

func TestCheckCapacity_DayCapWinsOverFreeSlot(t *testing.T) {
	existing := bookingsAt("9:00", "9:00", "10:00", "10:00", "11:00", "11:00", "12:00", "12:00")

	err := CheckCapacity(existing, "13:00")
	assert.True(t, domain.IsKind(err, domain.ErrCapacity))
	assert.EqualError(t, err, "No more bookings available for this date")
}
