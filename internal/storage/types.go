package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrDeadlinePassed is returned when an order operation arrives after
	// the venue's report deadline (or the venue was deactivated).
	ErrDeadlinePassed = errors.New("venue is closed for orders")
	// ErrEmptyItems is returned when an order would be persisted with no items.
	ErrEmptyItems = errors.New("order has no items")
	// ErrInvalidMenuIndex is returned for an out-of-bounds menu position.
	ErrInvalidMenuIndex = errors.New("menu index out of range")
	// ErrValidation wraps malformed input from external submissions.
	ErrValidation = errors.New("validation failed")
)

type DeliveryMode string

const (
	DeliveryUnspecified DeliveryMode = ""
	DeliveryOffice      DeliveryMode = "office"
	DeliveryTray        DeliveryMode = "tray"
)

func ParseDeliveryMode(s string) (DeliveryMode, error) {
	switch DeliveryMode(s) {
	case DeliveryUnspecified, DeliveryOffice, DeliveryTray:
		return DeliveryMode(s), nil
	}
	return DeliveryUnspecified, fmt.Errorf("%w: unknown delivery mode %q", ErrValidation, s)
}

type MenuItem struct {
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

type Venue struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Address        string     `json:"address"`
	Menu           []MenuItem `json:"menu"`
	TimeText       string     `json:"time_available"`
	DayText        string     `json:"day_available"`
	ReportDeadline string     `json:"report_deadline"`
	Active         bool       `json:"active"`
}

type Order struct {
	ID           uuid.UUID    `json:"id"`
	UserID       int64        `json:"user_id"`
	VenueID      int64        `json:"venue_id"`
	Items        []MenuItem   `json:"items"`
	CreatedAt    time.Time    `json:"created_at"`
	DeliveryMode DeliveryMode `json:"delivery_mode"`
	Comment      string       `json:"comment,omitempty"`
}

// Total sums the snapshot prices in their native unit.
func (o Order) Total() float64 {
	var sum float64
	for _, it := range o.Items {
		sum += it.Price
	}
	return sum
}
