package application

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/eatwithchiso/service-booking/internal/domain/booking"
	"github.com/google/uuid"
)

// PartySize is a guest count that accepts a JSON number or a numeric string.
// Unparseable strings decode to zero so validation reports the field.
type PartySize int

// UnmarshalJSON implements json.Unmarshaler.
func (p *PartySize) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		*p = PartySize(int(v))
		if float64(int(v)) != v {
			*p = 0
		}
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			n = 0
		}
		*p = PartySize(n)
	default:
		*p = 0
	}
	return nil
}

// PreferencesRequest holds the meal selections of a booking request.
type PreferencesRequest struct {
	PancakeType string   `json:"pancakeType"`
	EggStyle    string   `json:"eggStyle"`
	Sides       []string `json:"sides"`
	Meat        string   `json:"meat"`
	Additions   []string `json:"additions"`
}

// CreateBookingRequest is the DTO shared by every booking creation path.
// The guest count may arrive as guests or partySize.
type CreateBookingRequest struct {
	Name        string             `json:"name" binding:"required"`
	Email       string             `json:"email" binding:"required"`
	Date        string             `json:"date" binding:"required"`
	Time        string             `json:"time" binding:"required"`
	Guests      PartySize          `json:"guests"`
	PartySize   PartySize          `json:"partySize"`
	Preferences PreferencesRequest `json:"preferences"`
}

// GuestCount returns guests, falling back to partySize.
func (r CreateBookingRequest) GuestCount() int {
	if r.Guests != 0 {
		return int(r.Guests)
	}
	return int(r.PartySize)
}

func (r CreateBookingRequest) toDetails() booking.Details {
	return booking.Details{
		Name:   r.Name,
		Email:  r.Email,
		Date:   r.Date,
		Time:   r.Time,
		Guests: r.GuestCount(),
		Preferences: booking.Preferences{
			PancakeType: r.Preferences.PancakeType,
			EggStyle:    r.Preferences.EggStyle,
			Sides:       r.Preferences.Sides,
			Meat:        r.Preferences.Meat,
			Additions:   r.Preferences.Additions,
		},
	}
}

// PreferencesDTO is the API representation of meal selections.
type PreferencesDTO struct {
	PancakeType string   `json:"pancakeType"`
	EggStyle    string   `json:"eggStyle"`
	Sides       []string `json:"sides"`
	Meat        string   `json:"meat"`
	Additions   []string `json:"additions"`
}

// BookingDTO is the API response DTO for booking data.
type BookingDTO struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Date        string         `json:"date"`
	Time        string         `json:"time"`
	Guests      int            `json:"guests"`
	Preferences PreferencesDTO `json:"preferences"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// BookingResult is the outcome of a successful booking. Email delivery is
// reported separately and never affects success.
type BookingResult struct {
	Booking    BookingDTO
	EmailSent  bool
	EmailError string
}

// AvailabilityDTO lists the open slots of a date in catalog order.
type AvailabilityDTO struct {
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
}

func toBookingDTO(b *booking.Booking) BookingDTO {
	p := b.Preferences()
	return BookingDTO{
		ID:     b.ID(),
		Name:   b.Name(),
		Email:  b.Email(),
		Date:   b.Date(),
		Time:   b.Time().String(),
		Guests: b.Guests(),
		Preferences: PreferencesDTO{
			PancakeType: p.PancakeType,
			EggStyle:    p.EggStyle,
			Sides:       p.Sides,
			Meat:        p.Meat,
			Additions:   p.Additions,
		},
		CreatedAt: b.CreatedAt(),
	}
}
