package user

import "courier-management/internal/entities"

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}
	return &entities.User{
		ID:           u.ID,
		Login:        u.Login,
		PasswordHash: u.PasswordHash,
		Role:         entities.UserRoleType(u.Role),
		CreatedAt:    u.CreatedAt,
	}
}
