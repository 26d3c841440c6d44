package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/corpeats/lunchbot/internal/db"
	"github.com/corpeats/lunchbot/internal/repository"
	"github.com/corpeats/lunchbot/internal/storage"
)

type StaffRepo struct {
	db db.DB
}

func NewStaffRepo(db db.DB) storage.StaffRepository {
	return &StaffRepo{db: db}
}

// AddEmployee inserts a new employee. Returns false if the id is already
// registered.
func (r *StaffRepo) AddEmployee(ctx context.Context, employee *repository.Employee) (bool, error) {
	tag, err := r.db.Exec(ctx, `
        INSERT INTO employees (id, name, office, card)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (id) DO NOTHING
    `, employee.ID, employee.Name, employee.Office, employee.Card)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *StaffRepo) GetEmployee(ctx context.Context, id int64) (*repository.Employee, error) {
	var employee repository.Employee
	err := r.db.Get(ctx, &employee, "SELECT * FROM employees WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &employee, nil
}

func (r *StaffRepo) ListEmployees(ctx context.Context) ([]*repository.Employee, error) {
	var employees []*repository.Employee
	err := r.db.Select(ctx, &employees, "SELECT * FROM employees ORDER BY id")
	return employees, err
}

func (r *StaffRepo) AddManager(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO managers (id) VALUES ($1)
        ON CONFLICT (id) DO NOTHING
    `, id)
	return err
}

func (r *StaffRepo) ListManagers(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := r.db.Select(ctx, &ids, "SELECT id FROM managers ORDER BY id")
	return ids, err
}
