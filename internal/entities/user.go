package entities

import "time"

type User struct {
	ID           int64
	Login        string
	PasswordHash string
	Role         UserRoleType
	CreatedAt    time.Time
}

type UserRoleType string

const (
	RoleCourier UserRoleType = "courier"
	RoleManager UserRoleType = "manager"
	RoleAdmin   UserRoleType = "admin"
)

func (r UserRoleType) String() string {
	return string(r)
}

func (r UserRoleType) IsValid() bool {
	switch r {
	case RoleCourier, RoleManager, RoleAdmin:
		return true
	default:
		return false
	}
}
