//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"courier-management/internal/entities"
)

type Repository interface {
	GetByLogin(ctx context.Context, login string) (*entities.User, error)
	GetByID(ctx context.Context, id int64) (*entities.User, error)
}

type TokenIssuer interface {
	Issue(userID int64, role entities.UserRoleType) (string, error)
}
