package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/notekeeper/server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

// UserRepository persists users through the stored procedures installed by
// the migrations.
type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	query := `SELECT user_id, name, email, password FROM get_user_by_email($1)`

	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	var user model.User
	query := `SELECT user_id, name, email, password FROM get_user_by_id($1)`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, name, email, passwordHash string) (model.User, error) {
	var id int64
	err := r.db.QueryRow(ctx, `SELECT create_user($1, $2, $3)`, name, email, passwordHash).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.User{}, model.ErrEmailTaken
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *UserRepository) Update(ctx context.Context, id int64, update model.UserUpdate) (model.User, error) {
	var user model.User
	query := `SELECT user_id, name, email, password FROM update_user($1, $2, $3, $4)`

	err := r.db.QueryRow(ctx, query, id, update.Name, update.Email, update.PasswordHash).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.User{}, model.ErrEmailTaken
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	var deleted int
	err := r.db.QueryRow(ctx, `SELECT delete_user($1)`, id).Scan(&deleted)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if deleted == 0 {
		return model.ErrNotFound
	}
	return nil
}
