package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/corpeats/lunchbot/internal/db"
	"github.com/corpeats/lunchbot/internal/repository"
	"github.com/corpeats/lunchbot/internal/storage"
)

type VenueRepo struct {
	db db.DB
}

func NewVenueRepo(db db.DB) storage.VenueRepository {
	return &VenueRepo{db: db}
}

func (r *VenueRepo) Create(ctx context.Context, venue *repository.Venue) (int64, error) {
	var id int64
	err := r.db.ExecQueryRow(ctx, `
        INSERT INTO venues (
            name, address, menu_json, time_text, day_text, report_deadline, active
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `, venue.Name, venue.Address, venue.MenuJSON, venue.TimeText, venue.DayText, venue.ReportDeadline, venue.Active).Scan(&id)
	if err != nil {
		return 0, err
	}
	venue.ID = id
	return id, nil
}

func (r *VenueRepo) GetByID(ctx context.Context, id int64) (*repository.Venue, error) {
	var venue repository.Venue
	err := r.db.Get(ctx, &venue, "SELECT * FROM venues WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &venue, nil
}

func (r *VenueRepo) GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Venue, error) {
	var venue repository.Venue
	err := tx.Get(ctx, &venue, "SELECT * FROM venues WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &venue, nil
}

func (r *VenueRepo) GetByName(ctx context.Context, name string) (*repository.Venue, error) {
	var venue repository.Venue
	err := r.db.Get(ctx, &venue, "SELECT * FROM venues WHERE name = $1 LIMIT 1", name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &venue, nil
}

func (r *VenueRepo) List(ctx context.Context, activeOnly bool) ([]*repository.Venue, error) {
	query := "SELECT * FROM venues"
	if activeOnly {
		query += " WHERE active"
	}
	query += " ORDER BY id"

	var venues []*repository.Venue
	err := r.db.Select(ctx, &venues, query)
	return venues, err
}

func (r *VenueRepo) SetActive(ctx context.Context, id int64, active bool) error {
	tag, err := r.db.Exec(ctx, "UPDATE venues SET active = $1 WHERE id = $2", active, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *VenueRepo) UpdateMenuTx(ctx context.Context, tx db.Tx, id int64, menuJSON []byte) error {
	tag, err := tx.Exec(ctx, "UPDATE venues SET menu_json = $1 WHERE id = $2", menuJSON, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *VenueRepo) DeleteTx(ctx context.Context, tx db.Tx, id int64) error {
	tag, err := tx.Exec(ctx, "DELETE FROM venues WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}
