package ports

import (
	"context"

	"media-share-api/internal/domain/user"
)

type AuthService interface {
	SignUp(ctx context.Context, email, password string) (*user.User, string, error)
	SignIn(ctx context.Context, email, password string) (*user.User, string, error)
	SignOut(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*user.User, error)
}
