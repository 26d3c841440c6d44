package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/corpeats/lunchbot/internal/db"
	"github.com/corpeats/lunchbot/internal/repository"
	"github.com/corpeats/lunchbot/internal/storage"
)

type OrderRepo struct {
	db db.DB
}

func NewOrderRepo(db db.DB) storage.OrderRepository {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) Create(ctx context.Context, order *repository.Order) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO orders (
            id, user_id, venue_id, items_json, created_at, delivery_mode, comment
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, order.ID, order.UserID, order.VenueID, order.ItemsJSON, order.CreatedAt, order.DeliveryMode, order.Comment)
	return err
}

func (r *OrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*repository.Order, error) {
	var order repository.Order
	err := r.db.Get(ctx, &order, "SELECT * FROM orders WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) ListByVenue(ctx context.Context, venueID int64) ([]*repository.Order, error) {
	var orders []*repository.Order
	err := r.db.Select(ctx, &orders, "SELECT * FROM orders WHERE venue_id = $1 ORDER BY created_at", venueID)
	return orders, err
}

func (r *OrderRepo) ListByVenueTx(ctx context.Context, tx db.Tx, venueID int64) ([]*repository.Order, error) {
	var orders []*repository.Order
	err := tx.Select(ctx, &orders, "SELECT * FROM orders WHERE venue_id = $1 ORDER BY created_at FOR UPDATE", venueID)
	return orders, err
}

func (r *OrderRepo) ListByUser(ctx context.Context, userID int64) ([]*repository.Order, error) {
	var orders []*repository.Order
	err := r.db.Select(ctx, &orders, "SELECT * FROM orders WHERE user_id = $1 ORDER BY created_at DESC", userID)
	return orders, err
}

func (r *OrderRepo) DeleteOwned(ctx context.Context, id uuid.UUID, userID int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM orders WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *OrderRepo) DeleteByVenueTx(ctx context.Context, tx db.Tx, venueID int64) error {
	_, err := tx.Exec(ctx, "DELETE FROM orders WHERE venue_id = $1", venueID)
	return err
}
