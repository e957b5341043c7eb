package session

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"media-share-api/internal/domain/session"
	"media-share-api/internal/domain/user"
	"media-share-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) session.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchSessionByToken(ctx context.Context, token string) (*session.Session, error) {
	s := new(Session)
	err := r.db.QueryRow(ctx, SelectSessionByToken, token).Scan(
		&s.Token,
		&s.UserID,

		&s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(s), err
}

func (r *Repository) CreateSession(ctx context.Context, token string, userID user.ID) (*session.Session, error) {
	s := new(Session)

	err := r.db.QueryRow(
		ctx,
		InsertSession,
		token, uint64(userID),
	).Scan(
		&s.Token,
		&s.UserID,

		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(s), err
}

// DeleteSession is idempotent: deleting an unknown token is not an error.
func (r *Repository) DeleteSession(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, DeleteSessionByToken, token)
	return err
}
