package user

import (
	"time"
)

type (
	ID   uint64
	User struct {
		ID           ID
		Email        string
		PasswordHash string

		CreatedAt time.Time
	}
	Users []*User
)
