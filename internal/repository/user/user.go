package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"courier-management/internal/entities"
	"courier-management/internal/service/auth"
)

const userColumns = "id, login, password_hash, role, created_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByLogin(ctx context.Context, login string) (*entities.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE login = $1
	`

	return r.getOne(ctx, query, login)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	return r.getOne(ctx, query, id)
}

func (r *Repository) getOne(ctx context.Context, query string, arg interface{}) (*entities.User, error) {
	var userDB UserDB
	err := r.querier.QueryRow(ctx, query, arg).Scan(
		&userDB.ID,
		&userDB.Login,
		&userDB.PasswordHash,
		&userDB.Role,
		&userDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository get error: %w", err)
	}

	return ToDomain(&userDB), nil
}
