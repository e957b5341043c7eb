package session

import (
	"time"

	"media-share-api/internal/domain/user"
)

// Session is a bearer credential row. The token itself is the primary
// key: it is never rotated in place, only inserted and deleted.
type Session struct {
	Token  string
	UserID user.ID

	CreatedAt time.Time
}
