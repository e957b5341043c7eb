package session

import (
	"time"
)

type Session struct {
	Token  string
	UserID uint64

	CreatedAt time.Time
}
