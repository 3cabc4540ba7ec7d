package booking

import (
	"net/mail"
	"strings"
	"time"

	"github.com/eatwithchiso/service-booking/internal/common/domain"
	"github.com/google/uuid"
)

const (
	minNameLength = 2
	minGuests     = 1
	maxGuests     = 10
)

var (
	pancakeTypes = map[string]bool{"buttermilk": true, "chocolate": true, "blueberry": true}
	eggStyles    = map[string]bool{"scrambled": true, "sunny-side-up": true, "over-easy": true, "none": true}
	meats        = map[string]bool{"bacon": true, "sausage": true, "ham": true, "none": true}
)

// Preferences are the guest's meal selections.
type Preferences struct {
	PancakeType string
	EggStyle    string
	Sides       []string
	Meat        string
	Additions   []string
}

// Details is the unvalidated input for a new booking.
type Details struct {
	Name        string
	Email       string
	Date        string
	Time        string
	Guests      int
	Preferences Preferences
}

// Booking is an immutable confirmed table booking.
type Booking struct {
	id          uuid.UUID
	name        string
	email       string
	date        string
	time        Slot
	guests      int
	preferences Preferences
	createdAt   time.Time
}

// NewBooking validates d and creates a booking with a fresh ID.
// now decides which dates count as past.
func NewBooking(d Details, now time.Time) (*Booking, error) {
	fields := make(map[string]string)

	name := strings.TrimSpace(d.Name)
	if len([]rune(name)) < minNameLength {
		fields["name"] = "Name must be at least 2 characters long"
	}

	email, ok := normalizeEmail(d.Email)
	if !ok {
		fields["email"] = "Please enter a valid email address"
	}

	date, err := ParseDate(d.Date)
	if err != nil {
		fields["date"] = "Please enter a valid date (YYYY-MM-DD)"
	} else if date < now.UTC().Format(DateLayout) {
		fields["date"] = "Date must not be in the past"
	}

	slot, err := ParseSlot(d.Time)
	if err != nil {
		fields["time"] = "Please select a valid time slot (9:00, 10:00, 11:00, 12:00, 13:00)"
	}

	if d.Guests < minGuests || d.Guests > maxGuests {
		fields["guests"] = "Please enter a valid party size (1 to 10)"
	}

	prefs := normalizePreferences(d.Preferences)
	if prefs.PancakeType != "" && !pancakeTypes[prefs.PancakeType] {
		fields["preferences.pancakeType"] = "Please select a valid pancake type"
	}
	if prefs.EggStyle != "" && !eggStyles[prefs.EggStyle] {
		fields["preferences.eggStyle"] = "Please select a valid egg style"
	}
	if prefs.Meat != "" && !meats[prefs.Meat] {
		fields["preferences.meat"] = "Please select a valid meat option"
	}

	if len(fields) > 0 {
		return nil, domain.NewFieldValidationError(fields)
	}

	return &Booking{
		id:          uuid.New(),
		name:        name,
		email:       email,
		date:        date,
		time:        slot,
		guests:      d.Guests,
		preferences: prefs,
		createdAt:   now.UTC(),
	}, nil
}

func normalizeEmail(raw string) (string, bool) {
	value := strings.TrimSpace(raw)
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return "", false
	}
	// the domain needs a dot with something on both sides
	host := value[strings.LastIndex(value, "@")+1:]
	if !strings.Contains(strings.Trim(host, "."), ".") {
		return "", false
	}
	return value, true
}

func normalizePreferences(p Preferences) Preferences {
	out := Preferences{
		PancakeType: strings.ToLower(strings.TrimSpace(p.PancakeType)),
		EggStyle:    strings.ToLower(strings.TrimSpace(p.EggStyle)),
		Meat:        strings.ToLower(strings.TrimSpace(p.Meat)),
		Sides:       cleanList(p.Sides),
		Additions:   cleanList(p.Additions),
	}
	return out
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// --- Getters ---

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) Name() string         { return b.name }
func (b *Booking) Email() string        { return b.email }
func (b *Booking) Date() string         { return b.date }
func (b *Booking) Time() Slot           { return b.time }
func (b *Booking) Guests() int          { return b.guests }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// Preferences returns a copy of the meal selections.
func (b *Booking) Preferences() Preferences {
	p := b.preferences
	p.Sides = append([]string(nil), b.preferences.Sides...)
	p.Additions = append([]string(nil), b.preferences.Additions...)
	if p.Sides == nil {
		p.Sides = []string{}
	}
	if p.Additions == nil {
		p.Additions = []string{}
	}
	return p
}

// Reconstitute rebuilds a Booking from persisted data without validation.
func Reconstitute(
	id uuid.UUID,
	name, email, date string,
	slot Slot,
	guests int,
	preferences Preferences,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		name:        name,
		email:       email,
		date:        date,
		time:        slot,
		guests:      guests,
		preferences: preferences,
		createdAt:   createdAt,
	}
}
