//go:generate mockgen -source ./repos.go -destination=./mocks/repos.go -package=mock_storage
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/corpeats/lunchbot/internal/db"
	"github.com/corpeats/lunchbot/internal/repository"
)

type VenueRepository interface {
	Create(ctx context.Context, venue *repository.Venue) (int64, error)
	GetByID(ctx context.Context, id int64) (*repository.Venue, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Venue, error)
	GetByName(ctx context.Context, name string) (*repository.Venue, error)
	List(ctx context.Context, activeOnly bool) ([]*repository.Venue, error)
	SetActive(ctx context.Context, id int64, active bool) error
	UpdateMenuTx(ctx context.Context, tx db.Tx, id int64, menuJSON []byte) error
	DeleteTx(ctx context.Context, tx db.Tx, id int64) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *repository.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*repository.Order, error)
	ListByVenue(ctx context.Context, venueID int64) ([]*repository.Order, error)
	ListByVenueTx(ctx context.Context, tx db.Tx, venueID int64) ([]*repository.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]*repository.Order, error)
	DeleteOwned(ctx context.Context, id uuid.UUID, userID int64) error
	DeleteByVenueTx(ctx context.Context, tx db.Tx, venueID int64) error
}

type StaffRepository interface {
	AddEmployee(ctx context.Context, employee *repository.Employee) (bool, error)
	GetEmployee(ctx context.Context, id int64) (*repository.Employee, error)
	ListEmployees(ctx context.Context) ([]*repository.Employee, error)
	AddManager(ctx context.Context, id int64) error
	ListManagers(ctx context.Context) ([]int64, error)
}

type OutboxTaskRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
	GetProcessableTasksTx(ctx context.Context, tx db.Tx, limit int) ([]*repository.OutboxTask, error)
	UpdateTaskStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
	UpdateTaskStatus(ctx context.Context, db db.DB, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
}

func venueFromRepo(v *repository.Venue) Venue {
	menu := v.Menu()
	items := make([]MenuItem, len(menu))
	for i, it := range menu {
		items[i] = MenuItem{Title: it.Title, Price: it.Price}
	}
	return Venue{
		ID:             v.ID,
		Name:           v.Name,
		Address:        v.Address,
		Menu:           items,
		TimeText:       v.TimeText,
		DayText:        v.DayText,
		ReportDeadline: v.ReportDeadline,
		Active:         v.Active,
	}
}

func orderFromRepo(o *repository.Order) Order {
	raw := o.Items()
	items := make([]MenuItem, len(raw))
	for i, it := range raw {
		items[i] = MenuItem{Title: it.Title, Price: it.Price}
	}
	return Order{
		ID:           o.ID,
		UserID:       o.UserID,
		VenueID:      o.VenueID,
		Items:        items,
		CreatedAt:    o.CreatedAt,
		DeliveryMode: DeliveryMode(o.DeliveryMode),
		Comment:      o.Comment,
	}
}

func itemsToRepo(items []MenuItem) []repository.MenuItem {
	out := make([]repository.MenuItem, len(items))
	for i, it := range items {
		out[i] = repository.MenuItem{Title: it.Title, Price: it.Price}
	}
	return out
}
