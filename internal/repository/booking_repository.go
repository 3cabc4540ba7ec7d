package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eatwithchiso/service-booking/internal/common/domain"
	bookingDomain "github.com/eatwithchiso/service-booking/internal/domain/booking"
	"github.com/eatwithchiso/service-booking/internal/kv"
	"github.com/google/uuid"
)

const (
	recordPrefix = "booking:"
	indexPrefix  = "date:"
)

// PreferencesModel is the persisted form of meal selections.
type PreferencesModel struct {
	PancakeType string   `json:"pancakeType"`
	EggStyle    string   `json:"eggStyle"`
	Sides       []string `json:"sides"`
	Meat        string   `json:"meat"`
	Additions   []string `json:"additions"`
}

// BookingModel is the JSON record stored under booking:<id>.
type BookingModel struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Date        string           `json:"date"`
	Time        string           `json:"time"`
	Guests      int              `json:"guests"`
	Preferences PreferencesModel `json:"preferences"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// RecordKey is the primary key of a booking record.
func RecordKey(id uuid.UUID) string {
	return recordPrefix + id.String()
}

// IndexKey is the secondary key listing id under date.
func IndexKey(date string, id uuid.UUID) string {
	return indexPrefix + date + ":" + id.String()
}

func indexDatePrefix(date string) string {
	return indexPrefix + date + ":"
}

// BookingRepositoryImpl lays bookings out on a kv.Store as one record key
// plus one date index key per booking.
type BookingRepositoryImpl struct {
	store kv.Store
}

// NewBookingRepository creates a booking repository over store.
func NewBookingRepository(store kv.Store) *BookingRepositoryImpl {
	return &BookingRepositoryImpl{store: store}
}

// Store writes the full booking record.
func (r *BookingRepositoryImpl) Store(ctx context.Context, b *bookingDomain.Booking) error {
	data, err := json.Marshal(toModel(b))
	if err != nil {
		return fmt.Errorf("encode booking %s: %w", b.ID(), err)
	}
	return r.store.Put(ctx, RecordKey(b.ID()), data)
}

// Index writes the date index entry; its value is the booking ID.
func (r *BookingRepositoryImpl) Index(ctx context.Context, b *bookingDomain.Booking) error {
	return r.store.Put(ctx, IndexKey(b.Date(), b.ID()), []byte(b.ID().String()))
}

// Discard removes the booking record.
func (r *BookingRepositoryImpl) Discard(ctx context.Context, id uuid.UUID) error {
	return r.store.Delete(ctx, RecordKey(id))
}

// FindByID retrieves a booking by its unique ID.
func (r *BookingRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
	data, err := r.store.Get(ctx, RecordKey(id))
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, domain.NewNotFoundError("Booking", id.String())
		}
		return nil, err
	}

	var model BookingModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("decode booking %s: %w", id, err)
	}
	return toDomain(&model), nil
}

// ListByDate returns the bookings indexed under date in index key order.
// Index entries whose record is missing are skipped.
func (r *BookingRepositoryImpl) ListByDate(ctx context.Context, date string) ([]*bookingDomain.Booking, error) {
	entries, err := r.store.List(ctx, indexDatePrefix(date))
	if err != nil {
		return nil, err
	}

	bookings := make([]*bookingDomain.Booking, 0, len(entries))
	for _, e := range entries {
		id, err := uuid.Parse(strings.TrimSpace(string(e.Value)))
		if err != nil {
			continue
		}
		b, err := r.FindByID(ctx, id)
		if err != nil {
			if domain.IsKind(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// Ping checks that the backing store is reachable.
func (r *BookingRepositoryImpl) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

// --- Mapping helpers ---

func toModel(b *bookingDomain.Booking) *BookingModel {
	p := b.Preferences()
	return &BookingModel{
		ID:     b.ID(),
		Name:   b.Name(),
		Email:  b.Email(),
		Date:   b.Date(),
		Time:   b.Time().String(),
		Guests: b.Guests(),
		Preferences: PreferencesModel{
			PancakeType: p.PancakeType,
			EggStyle:    p.EggStyle,
			Sides:       p.Sides,
			Meat:        p.Meat,
			Additions:   p.Additions,
		},
		CreatedAt: b.CreatedAt(),
	}
}

func toDomain(m *BookingModel) *bookingDomain.Booking {
	return bookingDomain.Reconstitute(
		m.ID,
		m.Name,
		m.Email,
		m.Date,
		bookingDomain.Slot(m.Time),
		m.Guests,
		bookingDomain.Preferences{
			PancakeType: m.Preferences.PancakeType,
			EggStyle:    m.Preferences.EggStyle,
			Sides:       m.Preferences.Sides,
			Meat:        m.Preferences.Meat,
			Additions:   m.Preferences.Additions,
		},
		m.CreatedAt,
	)
}
