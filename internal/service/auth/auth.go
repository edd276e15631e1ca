package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"courier-management/internal/entities"
)

type Auth struct {
	repository Repository
	tokens     TokenIssuer
}

func New(repository Repository, tokens TokenIssuer) *Auth {
	return &Auth{
		repository: repository,
		tokens:     tokens,
	}
}

// Login проверяет пару логин/пароль и выпускает токен. Несуществующий логин
// и неверный пароль неразличимы снаружи.
func (a *Auth) Login(ctx context.Context, login, password string) (string, *entities.User, error) {
	if strings.TrimSpace(login) == "" || password == "" {
		return "", nil, ErrMissingRequiredFields
	}

	user, err := a.repository.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get user: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, user, nil
}

func (a *Auth) CurrentUser(ctx context.Context, userID int64) (*entities.User, error) {
	if userID <= 0 {
		return nil, ErrUserNotFound
	}

	user, err := a.repository.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
