package user

import "time"

type UserDB struct {
	ID           int64
	Login        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
