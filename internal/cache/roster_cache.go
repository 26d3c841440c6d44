package cache

import (
	"context"
	"log"
	"sort"
	"sync"

	"github.com/corpeats/lunchbot/internal/repository"
)

type StaffSource interface {
	ListEmployees(ctx context.Context) ([]*repository.Employee, error)
	ListManagers(ctx context.Context) ([]int64, error)
}

// RosterCache keeps the employee and manager rosters in memory. Membership
// is checked on every inbound user action and every report fan-out, so
// these lookups never hit the database. Admin mutations write through via
// SetEmployee/SetManager.
type RosterCache struct {
	mu        sync.RWMutex
	employees map[int64]repository.Employee
	managers  map[int64]struct{}
	repo      StaffSource
}

func NewRosterCache(repo StaffSource) *RosterCache {
	return &RosterCache{
		employees: make(map[int64]repository.Employee),
		managers:  make(map[int64]struct{}),
		repo:      repo,
	}
}

func (c *RosterCache) LoadInitialData(ctx context.Context) error {
	log.Println("Loading rosters into cache...")
	employees, err := c.repo.ListEmployees(ctx)
	if err != nil {
		return err
	}
	managers, err := c.repo.ListManagers(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range employees {
		c.employees[e.ID] = *e
	}
	for _, id := range managers {
		c.managers[id] = struct{}{}
	}
	log.Printf("Roster cache loaded: %d employees, %d managers.", len(c.employees), len(c.managers))
	return nil
}

func (c *RosterCache) IsEmployee(id int64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.employees[id]
	return ok
}

func (c *RosterCache) Employee(id int64) (repository.Employee, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.employees[id]
	return e, ok
}

// EmployeeName returns the display name, or "" for an unknown id.
func (c *RosterCache) EmployeeName(id int64) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.employees[id].Name
}

func (c *RosterCache) IsManager(id int64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.managers[id]
	return ok
}

// Managers returns manager ids in ascending order, so report fan-out order
// is stable.
func (c *RosterCache) Managers() []int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]int64, 0, len(c.managers))
	for id := range c.managers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (c *RosterCache) SetEmployee(employee repository.Employee) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.employees[employee.ID] = employee
}

func (c *RosterCache) SetManager(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.managers[id] = struct{}{}
}
