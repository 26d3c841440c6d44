package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrObjectNotFound = errors.New("not found")

// MenuItem is a single dish entry. It has no identity of its own: within a
// venue it is addressed by position, and inside an order it is a frozen copy.
type MenuItem struct {
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

type Venue struct {
	ID             int64  `db:"id"`
	Name           string `db:"name"`
	Address        string `db:"address"`
	MenuJSON       []byte `db:"menu_json"`
	TimeText       string `db:"time_text"`
	DayText        string `db:"day_text"`
	ReportDeadline string `db:"report_deadline"`
	Active         bool   `db:"active"`
}

// Menu decodes the stored menu. Malformed JSON is treated as an empty menu,
// matching how every reader of the column has always behaved.
func (v *Venue) Menu() []MenuItem {
	if len(v.MenuJSON) == 0 {
		return nil
	}
	var items []MenuItem
	if err := json.Unmarshal(v.MenuJSON, &items); err != nil {
		return nil
	}
	return items
}

func (v *Venue) SetMenu(items []MenuItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	v.MenuJSON = raw
	return nil
}

type Order struct {
	ID           uuid.UUID `db:"id"`
	UserID       int64     `db:"user_id"`
	VenueID      int64     `db:"venue_id"`
	ItemsJSON    []byte    `db:"items_json"`
	CreatedAt    time.Time `db:"created_at"`
	DeliveryMode string    `db:"delivery_mode"`
	Comment      string    `db:"comment"`
}

func (o *Order) Items() []MenuItem {
	if len(o.ItemsJSON) == 0 {
		return nil
	}
	var items []MenuItem
	if err := json.Unmarshal(o.ItemsJSON, &items); err != nil {
		return nil
	}
	return items
}

func (o *Order) SetItems(items []MenuItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	o.ItemsJSON = raw
	return nil
}

type Employee struct {
	ID     int64  `db:"id"`
	Name   string `db:"name"`
	Office string `db:"office"`
	Card   string `db:"card"`
}

type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "CREATED"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusDone       TaskStatus = "DONE"
	TaskStatusFailed     TaskStatus = "FAILED"
)

type OutboxTask struct {
	ID          uuid.UUID  `db:"id"`
	Status      TaskStatus `db:"status"`
	Payload     []byte     `db:"payload"`
	Topic       string     `db:"topic"`
	Attempts    int        `db:"attempts"`
	LastError   *string    `db:"last_error"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	CompletedAt *time.Time `db:"completed_at"`
}
