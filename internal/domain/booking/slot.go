package booking

import (
	"fmt"
	"strings"
	"time"
)

// Slot is one of the fixed daily booking times, in canonical H:MM 24-hour form.
type Slot string

// slotCatalog is ordered; availability results follow this order.
var slotCatalog = [...]Slot{"9:00", "10:00", "11:00", "12:00", "13:00"}

// Slots returns a copy of the slot catalog in display order.
func Slots() []Slot {
	out := make([]Slot, len(slotCatalog))
	copy(out, slotCatalog[:])
	return out
}

// String implements fmt.Stringer.
func (s Slot) String() string { return string(s) }

var slotLayouts = []string{"15:04", "3:04 PM", "3:04PM"}

// ParseSlot normalizes inputs such as "9:00", "09:00", "9:00 AM" or "1:00 PM"
// and returns the matching catalog slot.
func ParseSlot(raw string) (Slot, error) {
	value := strings.ToUpper(strings.TrimSpace(raw))
	for _, layout := range slotLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		candidate := Slot(fmt.Sprintf("%d:%02d", t.Hour(), t.Minute()))
		for _, s := range slotCatalog {
			if s == candidate {
				return s, nil
			}
		}
		break
	}
	return "", fmt.Errorf("time %q is not a bookable slot", raw)
}
