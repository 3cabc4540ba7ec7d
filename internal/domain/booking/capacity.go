package booking

import (
	"fmt"

	"github.com/eatwithchiso/service-booking/internal/common/domain"
)

const (
	// DayCapacity is the maximum number of bookings for one calendar date.
	DayCapacity = 8
	// SlotCapacity is the maximum number of bookings for one (date, slot) pair.
	SlotCapacity = 2
)

func countBySlot(existing []*Booking) map[Slot]int {
	counts := make(map[Slot]int, len(slotCatalog))
	for _, b := range existing {
		counts[b.Time()]++
	}
	return counts
}

// AvailableSlots returns the catalog slots holding fewer than SlotCapacity of the
// given bookings, in catalog order. existing must all belong to the same date.
func AvailableSlots(existing []*Booking) []Slot {
	counts := countBySlot(existing)
	available := make([]Slot, 0, len(slotCatalog))
	for _, s := range slotCatalog {
		if counts[s] < SlotCapacity {
			available = append(available, s)
		}
	}
	return available
}

// CheckCapacity decides whether one more booking at slot fits alongside existing.
// The day cap is checked first, so a full day rejects even an empty slot.
func CheckCapacity(existing []*Booking, slot Slot) error {
	if len(existing) >= DayCapacity {
		return domain.NewCapacityError("No more bookings available for this date")
	}
	if countBySlot(existing)[slot] >= SlotCapacity {
		return domain.NewCapacityError(fmt.Sprintf("The %s slot is fully booked for this date", slot))
	}
	return nil
}
