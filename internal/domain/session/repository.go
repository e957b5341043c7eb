package session

import (
	"context"

	"media-share-api/internal/domain/user"
)

type Repository interface {
	FetchSessionByToken(ctx context.Context, token string) (*Session, error)
	CreateSession(ctx context.Context, token string, userID user.ID) (*Session, error)
	DeleteSession(ctx context.Context, token string) error
}
