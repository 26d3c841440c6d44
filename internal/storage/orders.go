package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/corpeats/lunchbot/internal/db"
	"github.com/corpeats/lunchbot/internal/deadline"
	"github.com/corpeats/lunchbot/internal/metrics"
	"github.com/corpeats/lunchbot/internal/repository"
)

// Orders is the order-facing service. PlaceOrder is the single atomic
// deadline-check-then-insert unit shared by the dialogue state machine and
// the mini-app submission path. PlaceOrder and FlushVenue serialize on a
// per-venue mutex, so an order confirmed while the venue's report is firing
// is either included in the report or rejected, never silently dropped.
type Orders struct {
	db     db.DB
	orders OrderRepository
	venues VenueRepository
	outbox OutboxTaskRepository
	tz     *time.Location
	now    func() time.Time

	locksMu sync.Mutex
	locks   map[int64]*sync.Mutex
}

func NewOrders(database db.DB, orders OrderRepository, venues VenueRepository, outbox OutboxTaskRepository, tz *time.Location) *Orders {
	return &Orders{
		db:     database,
		orders: orders,
		venues: venues,
		outbox: outbox,
		tz:     tz,
		now:    time.Now,
		locks:  make(map[int64]*sync.Mutex),
	}
}

func (s *Orders) venueLock(venueID int64) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	lock, ok := s.locks[venueID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[venueID] = lock
	}
	return lock
}

func (s *Orders) PlaceOrder(ctx context.Context, userID, venueID int64, items []MenuItem, mode DeliveryMode, comment string) (uuid.UUID, error) {
	if len(items) == 0 {
		return uuid.Nil, ErrEmptyItems
	}
	for _, it := range items {
		if err := validateItem(it); err != nil {
			return uuid.Nil, err
		}
	}

	lock := s.venueLock(venueID)
	lock.Lock()
	defer lock.Unlock()

	venue, err := s.venues.GetByID(ctx, venueID)
	if err != nil {
		return uuid.Nil, err
	}
	if !deadline.Open(venue.Active, venue.ReportDeadline, s.now().In(s.tz)) {
		return uuid.Nil, ErrDeadlinePassed
	}

	order := &repository.Order{
		ID:           uuid.New(),
		UserID:       userID,
		VenueID:      venueID,
		CreatedAt:    s.now().UTC(),
		DeliveryMode: string(mode),
		Comment:      comment,
	}
	if err := order.SetItems(itemsToRepo(items)); err != nil {
		return uuid.Nil, fmt.Errorf("failed to encode order items: %w", err)
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert order: %w", err)
	}
	metrics.OrdersPlacedTotal.Inc()
	return order.ID, nil
}

func (s *Orders) ListVenueOrders(ctx context.Context, venueID int64) ([]Order, error) {
	repoOrders, err := s.orders.ListByVenue(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list venue orders: %w", err)
	}
	return ordersFromRepo(repoOrders), nil
}

func (s *Orders) ListUserOrders(ctx context.Context, userID int64) ([]Order, error) {
	repoOrders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user orders: %w", err)
	}
	return ordersFromRepo(repoOrders), nil
}

// CancelOrder deletes the caller's own pending order. Once the venue's
// deadline has passed the order belongs to the report and can no longer be
// withdrawn.
func (s *Orders) CancelOrder(ctx context.Context, orderID uuid.UUID, userID int64) error {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.UserID != userID {
		return repository.ErrObjectNotFound
	}

	venue, err := s.venues.GetByID(ctx, order.VenueID)
	if err == nil && deadline.Due(venue.ReportDeadline, s.now().In(s.tz)) {
		return ErrDeadlinePassed
	}

	if err := s.orders.DeleteOwned(ctx, orderID, userID); err != nil {
		return err
	}
	metrics.OrdersCancelledTotal.Inc()
	return nil
}

// FlushVenue runs the report-and-clear sequence for one venue. Inside a
// single transaction it loads the venue's orders, hands them to compose to
// produce the outbound delivery payloads, enqueues those payloads as outbox
// tasks, and deletes the orders. Zero pending orders commits nothing and
// returns 0. The venue mutex is held for the duration, excluding concurrent
// PlaceOrder calls.
func (s *Orders) FlushVenue(ctx context.Context, venueID int64, topic string, compose func([]Order) ([][]byte, error)) (int, error) {
	lock := s.venueLock(venueID)
	lock.Lock()
	defer lock.Unlock()

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	repoOrders, err := s.orders.ListByVenueTx(ctx, tx, venueID)
	if err != nil {
		return 0, fmt.Errorf("failed to load venue orders: %w", err)
	}
	if len(repoOrders) == 0 {
		return 0, nil
	}

	payloads, err := compose(ordersFromRepo(repoOrders))
	if err != nil {
		return 0, fmt.Errorf("failed to compose report: %w", err)
	}

	for _, payload := range payloads {
		task := &repository.OutboxTask{Topic: topic, Payload: payload}
		if err := s.outbox.CreateTx(ctx, tx, task); err != nil {
			return 0, fmt.Errorf("failed to enqueue report delivery: %w", err)
		}
	}

	if err := s.orders.DeleteByVenueTx(ctx, tx, venueID); err != nil {
		return 0, fmt.Errorf("failed to clear venue orders: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit flush: %w", err)
	}
	return len(repoOrders), nil
}

func ordersFromRepo(repoOrders []*repository.Order) []Order {
	orders := make([]Order, len(repoOrders))
	for i, o := range repoOrders {
		orders[i] = orderFromRepo(o)
	}
	return orders
}
