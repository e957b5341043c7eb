package session

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"media-share-api/internal/domain/user"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func sessionRows(token string) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"token", "user_id", "created_at"}).
		AddRow(token, uint64(7), time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
}

func TestFetchSessionByToken(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(SelectSessionByToken)).
			WithArgs("tok-123").
			WillReturnRows(sessionRows("tok-123"))

		s, err := repo.FetchSessionByToken(context.Background(), "tok-123")
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, "tok-123", s.Token)
		assert.Equal(t, user.ID(7), s.UserID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown token is nil, not error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(SelectSessionByToken)).
			WithArgs("stale").
			WillReturnError(pgx.ErrNoRows)

		s, err := repo.FetchSessionByToken(context.Background(), "stale")
		require.NoError(t, err)
		assert.Nil(t, s)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreateSession(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(InsertSession)).
		WithArgs("tok-123", uint64(7)).
		WillReturnRows(sessionRows("tok-123"))

	s, err := repo.CreateSession(context.Background(), "tok-123", 7)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "tok-123", s.Token)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSession(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	t.Run("existing row", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(DeleteSessionByToken)).
			WithArgs("tok-123").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, repo.DeleteSession(context.Background(), "tok-123"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown token is idempotent", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(DeleteSessionByToken)).
			WithArgs("stale").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		require.NoError(t, repo.DeleteSession(context.Background(), "stale"))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
