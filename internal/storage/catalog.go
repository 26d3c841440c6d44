package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/corpeats/lunchbot/internal/db"
	"github.com/corpeats/lunchbot/internal/deadline"
	"github.com/corpeats/lunchbot/internal/repository"
)

// Catalog is the venue-facing service: venue lifecycle and menu mutations.
// Menu edits run read-modify-write inside a transaction with the venue row
// locked, so two concurrent edits cannot clobber each other's JSON.
type Catalog struct {
	db     db.DB
	venues VenueRepository
	orders OrderRepository
}

func NewCatalog(database db.DB, venues VenueRepository, orders OrderRepository) *Catalog {
	return &Catalog{db: database, venues: venues, orders: orders}
}

type VenueInput struct {
	Name           string
	Address        string
	Menu           []MenuItem
	TimeText       string
	DayText        string
	ReportDeadline string
}

func (c *Catalog) CreateVenue(ctx context.Context, in VenueInput) (int64, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Address) == "" {
		return 0, fmt.Errorf("%w: venue name and address are required", ErrValidation)
	}
	cutoff := strings.TrimSpace(in.ReportDeadline)
	if cutoff != "" && !deadline.Valid(cutoff) {
		return 0, fmt.Errorf("%w: report deadline %q is not HH:MM", ErrValidation, in.ReportDeadline)
	}
	for _, it := range in.Menu {
		if err := validateItem(it); err != nil {
			return 0, err
		}
	}

	venue := &repository.Venue{
		Name:           in.Name,
		Address:        in.Address,
		TimeText:       in.TimeText,
		DayText:        in.DayText,
		ReportDeadline: cutoff,
		Active:         true,
	}
	if err := venue.SetMenu(itemsToRepo(in.Menu)); err != nil {
		return 0, fmt.Errorf("failed to encode menu: %w", err)
	}

	id, err := c.venues.Create(ctx, venue)
	if err != nil {
		return 0, fmt.Errorf("failed to create venue: %w", err)
	}
	return id, nil
}

func (c *Catalog) GetVenue(ctx context.Context, id int64) (*Venue, error) {
	repoVenue, err := c.venues.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	venue := venueFromRepo(repoVenue)
	return &venue, nil
}

func (c *Catalog) GetVenueByName(ctx context.Context, name string) (*Venue, error) {
	repoVenue, err := c.venues.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	venue := venueFromRepo(repoVenue)
	return &venue, nil
}

func (c *Catalog) ListVenues(ctx context.Context, activeOnly bool) ([]Venue, error) {
	repoVenues, err := c.venues.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	venues := make([]Venue, len(repoVenues))
	for i, v := range repoVenues {
		venues[i] = venueFromRepo(v)
	}
	return venues, nil
}

func (c *Catalog) SetActive(ctx context.Context, id int64, active bool) error {
	return c.venues.SetActive(ctx, id, active)
}

func (c *Catalog) AppendMenuItem(ctx context.Context, id int64, title string, price float64) error {
	item := MenuItem{Title: title, Price: price}
	if err := validateItem(item); err != nil {
		return err
	}
	return c.mutateMenu(ctx, id, func(menu []repository.MenuItem) ([]repository.MenuItem, error) {
		return append(menu, repository.MenuItem{Title: title, Price: price}), nil
	})
}

// RemoveMenuItem drops the item at index. Later items shift down, so any
// caller holding indices must re-fetch the menu afterwards.
func (c *Catalog) RemoveMenuItem(ctx context.Context, id int64, index int) error {
	return c.mutateMenu(ctx, id, func(menu []repository.MenuItem) ([]repository.MenuItem, error) {
		if index < 0 || index >= len(menu) {
			return nil, ErrInvalidMenuIndex
		}
		return append(menu[:index], menu[index+1:]...), nil
	})
}

func (c *Catalog) mutateMenu(ctx context.Context, id int64, mutate func([]repository.MenuItem) ([]repository.MenuItem, error)) error {
	tx, err := c.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	venue, err := c.venues.GetByIDTx(ctx, tx, id)
	if err != nil {
		return err
	}

	menu, err := mutate(venue.Menu())
	if err != nil {
		return err
	}
	if err := venue.SetMenu(menu); err != nil {
		return fmt.Errorf("failed to encode menu: %w", err)
	}
	if err := c.venues.UpdateMenuTx(ctx, tx, id, venue.MenuJSON); err != nil {
		return fmt.Errorf("failed to update menu: %w", err)
	}
	return tx.Commit(ctx)
}

// DeleteVenue removes the venue and, in the same transaction, every order
// attributed to it.
func (c *Catalog) DeleteVenue(ctx context.Context, id int64) error {
	tx, err := c.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := c.orders.DeleteByVenueTx(ctx, tx, id); err != nil {
		return fmt.Errorf("failed to delete venue orders: %w", err)
	}
	if err := c.venues.DeleteTx(ctx, tx, id); err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete venue: %w", err)
	}
	return tx.Commit(ctx)
}

func validateItem(item MenuItem) error {
	if strings.TrimSpace(item.Title) == "" {
		return fmt.Errorf("%w: item title is empty", ErrValidation)
	}
	if item.Price < 0 {
		return fmt.Errorf("%w: item %q has negative price", ErrValidation, item.Title)
	}
	return nil
}
