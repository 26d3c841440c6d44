package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/corpeats/lunchbot/internal/db"
)

// AuthRepo stores the webapp admin credentials (bcrypt hashes).
type AuthRepo struct {
	db db.DB
}

func NewAuthRepo(db db.DB) *AuthRepo {
	return &AuthRepo{db: db}
}

func (r *AuthRepo) CreateUser(ctx context.Context, username, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		"INSERT INTO webapp_users (username, password) VALUES ($1, $2)",
		username, string(hashedPassword))
	return err
}

// EnsureUser seeds the credential on first boot. An existing username is
// left untouched so a password changed after deployment survives restarts.
func (r *AuthRepo) EnsureUser(ctx context.Context, username, password string) error {
	var count int
	err := r.db.ExecQueryRow(ctx,
		"SELECT COUNT(*) FROM webapp_users WHERE username = $1", username).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.CreateUser(ctx, username, password)
}

func (r *AuthRepo) ValidateUser(ctx context.Context, username, password string) (bool, error) {
	var hashedPassword string
	err := r.db.ExecQueryRow(ctx,
		"SELECT password FROM webapp_users WHERE username = $1", username).Scan(&hashedPassword)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}
