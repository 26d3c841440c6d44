// Package session implements the per-user order dialogue: a small state
// machine that walks a registered employee from venue choice through item
// selection to a confirmed, persisted order.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/corpeats/lunchbot/internal/deadline"
	"github.com/corpeats/lunchbot/internal/metrics"
	"github.com/corpeats/lunchbot/internal/storage"
)

var (
	ErrUnauthorized      = errors.New("user is not a registered employee")
	ErrNoVenuesAvailable = errors.New("no venues are open for orders")
	ErrVenueClosed       = errors.New("venue is not accepting orders")
	ErrEmptyMenu         = errors.New("venue has no menu")
	ErrInvalidIndex      = errors.New("no such menu position")
	ErrEmptyOrder        = errors.New("no items selected")
	ErrInvalidState      = errors.New("action is not valid in the current session state")
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseChoosingVenue
	PhaseChoosingItems
	PhaseConfirming
)

func (p Phase) String() string {
	switch p {
	case PhaseChoosingVenue:
		return "choosing_venue"
	case PhaseChoosingItems:
		return "choosing_items"
	case PhaseConfirming:
		return "confirming"
	default:
		return "idle"
	}
}

type Catalog interface {
	GetVenue(ctx context.Context, id int64) (*storage.Venue, error)
	ListVenues(ctx context.Context, activeOnly bool) ([]storage.Venue, error)
}

type Orders interface {
	PlaceOrder(ctx context.Context, userID, venueID int64, items []storage.MenuItem, mode storage.DeliveryMode, comment string) (uuid.UUID, error)
	ListUserOrders(ctx context.Context, userID int64) ([]storage.Order, error)
	CancelOrder(ctx context.Context, orderID uuid.UUID, userID int64) error
}

type Roster interface {
	IsEmployee(id int64) bool
}

type VenueChoice struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Summary is the finalized order awaiting confirmation.
type Summary struct {
	VenueID   int64              `json:"venue_id"`
	VenueName string             `json:"venue_name"`
	Items     []storage.MenuItem `json:"items"`
	Total     float64            `json:"total"`
}

type userSession struct {
	mu       sync.Mutex
	phase    Phase
	venueID  int64
	picks    []int
	snapshot []storage.MenuItem
}

// Engine owns one transient session per user id. Starting a new dialogue
// silently replaces whatever session the user had before; nothing is
// persisted until Confirm succeeds. Actions from the same user serialize on
// the session mutex, different users proceed independently.
type Engine struct {
	catalog Catalog
	orders  Orders
	roster  Roster
	tz      *time.Location
	now     func() time.Time

	mu       sync.RWMutex
	sessions map[int64]*userSession
}

func NewEngine(catalog Catalog, orders Orders, roster Roster, tz *time.Location) *Engine {
	return &Engine{
		catalog:  catalog,
		orders:   orders,
		roster:   roster,
		tz:       tz,
		now:      time.Now,
		sessions: make(map[int64]*userSession),
	}
}

// Phase reports the user's current session phase; no session means idle.
func (e *Engine) Phase(userID int64) Phase {
	e.mu.RLock()
	s, ok := e.sessions[userID]
	e.mu.RUnlock()
	if !ok {
		return PhaseIdle
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Start opens a new dialogue for the user, replacing any stale one, and
// returns the venues currently open for orders.
func (e *Engine) Start(ctx context.Context, userID int64) ([]VenueChoice, error) {
	if !e.roster.IsEmployee(userID) {
		return nil, ErrUnauthorized
	}

	venues, err := e.catalog.ListVenues(ctx, true)
	if err != nil {
		return nil, err
	}

	now := e.now().In(e.tz)
	var choices []VenueChoice
	for _, v := range venues {
		if !deadline.Open(v.Active, v.ReportDeadline, now) {
			continue
		}
		choices = append(choices, VenueChoice{ID: v.ID, Name: v.Name, Address: v.Address})
	}
	if len(choices) == 0 {
		return nil, ErrNoVenuesAvailable
	}

	e.mu.Lock()
	if _, existed := e.sessions[userID]; !existed {
		metrics.ActiveSessions.Inc()
	}
	e.sessions[userID] = &userSession{phase: PhaseChoosingVenue}
	e.mu.Unlock()

	return choices, nil
}

// SelectVenue pins the venue for the order. Openness and menu presence are
// re-checked here, not trusted from Start.
func (e *Engine) SelectVenue(ctx context.Context, userID, venueID int64) (*storage.Venue, error) {
	s, ok := e.session(userID)
	if !ok {
		return nil, ErrInvalidState
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseChoosingVenue {
		return nil, ErrInvalidState
	}

	venue, err := e.catalog.GetVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}
	if !deadline.Open(venue.Active, venue.ReportDeadline, e.now().In(e.tz)) {
		return nil, ErrVenueClosed
	}
	if len(venue.Menu) == 0 {
		return nil, ErrEmptyMenu
	}

	s.venueID = venueID
	s.picks = nil
	s.phase = PhaseChoosingItems
	return venue, nil
}

// AddItem records one menu position. The index is validated against the
// venue's menu as it is right now; duplicates are allowed.
func (e *Engine) AddItem(ctx context.Context, userID int64, index int) (storage.MenuItem, error) {
	s, ok := e.session(userID)
	if !ok {
		return storage.MenuItem{}, ErrInvalidState
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseChoosingItems {
		return storage.MenuItem{}, ErrInvalidState
	}

	venue, err := e.catalog.GetVenue(ctx, s.venueID)
	if err != nil {
		return storage.MenuItem{}, err
	}
	if index < 0 || index >= len(venue.Menu) {
		return storage.MenuItem{}, ErrInvalidIndex
	}

	s.picks = append(s.picks, index)
	return venue.Menu[index], nil
}

// Finish freezes the selection into an immutable item snapshot. Every
// recorded index is re-resolved against the menu as it is now: titles and
// prices are copied so later menu edits cannot alter the order, and indices
// invalidated by a shrunken menu are dropped rather than failing the whole
// order (nothing has been persisted yet).
func (e *Engine) Finish(ctx context.Context, userID int64) (*Summary, error) {
	s, ok := e.session(userID)
	if !ok {
		return nil, ErrInvalidState
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseChoosingItems {
		return nil, ErrInvalidState
	}
	if len(s.picks) == 0 {
		return nil, ErrEmptyOrder
	}

	venue, err := e.catalog.GetVenue(ctx, s.venueID)
	if err != nil {
		return nil, err
	}

	var snapshot []storage.MenuItem
	var total float64
	for _, idx := range s.picks {
		if idx < 0 || idx >= len(venue.Menu) {
			continue
		}
		item := venue.Menu[idx]
		snapshot = append(snapshot, storage.MenuItem{Title: item.Title, Price: item.Price})
		total += item.Price
	}
	if len(snapshot) == 0 {
		return nil, ErrEmptyOrder
	}

	s.snapshot = snapshot
	s.phase = PhaseConfirming

	return &Summary{
		VenueID:   s.venueID,
		VenueName: venue.Name,
		Items:     snapshot,
		Total:     total,
	}, nil
}

// Confirm persists the order. The deadline is re-checked inside PlaceOrder:
// a dialogue that straddled the cutoff fails with ErrDeadlinePassed and the
// session is discarded without persisting anything. Transient store errors
// leave the session confirmable.
func (e *Engine) Confirm(ctx context.Context, userID int64) (uuid.UUID, error) {
	s, ok := e.session(userID)
	if !ok {
		return uuid.Nil, ErrInvalidState
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseConfirming {
		return uuid.Nil, ErrInvalidState
	}

	orderID, err := e.orders.PlaceOrder(ctx, userID, s.venueID, s.snapshot, storage.DeliveryUnspecified, "")
	if err != nil {
		if errors.Is(err, storage.ErrDeadlinePassed) {
			e.discard(userID, s)
		}
		return uuid.Nil, err
	}

	e.discard(userID, s)
	return orderID, nil
}

// Cancel discards the user's session, whatever state it is in. Cancelling
// with no session in progress is a no-op.
func (e *Engine) Cancel(userID int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.sessions[userID]; ok {
		delete(e.sessions, userID)
		metrics.ActiveSessions.Dec()
	}
}

// History lists the user's pending orders.
func (e *Engine) History(ctx context.Context, userID int64) ([]storage.Order, error) {
	if !e.roster.IsEmployee(userID) {
		return nil, ErrUnauthorized
	}
	return e.orders.ListUserOrders(ctx, userID)
}

// CancelOrder withdraws one of the user's persisted orders, independent of
// any dialogue in progress.
func (e *Engine) CancelOrder(ctx context.Context, userID int64, orderID uuid.UUID) error {
	if !e.roster.IsEmployee(userID) {
		return ErrUnauthorized
	}
	return e.orders.CancelOrder(ctx, orderID, userID)
}

func (e *Engine) session(userID int64) (*userSession, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	s, ok := e.sessions[userID]
	return s, ok
}

// discard removes the session unless Start already replaced it. Caller
// holds s.mu.
func (e *Engine) discard(userID int64, s *userSession) {
	s.phase = PhaseIdle
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sessions[userID] == s {
		delete(e.sessions, userID)
		metrics.ActiveSessions.Dec()
	}
}
