package media

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"media-share-api/internal/domain/media"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

var mediaColumns = []string{
	"id", "user_id", "storage_name", "original_name",
	"mime_type", "size_bytes", "download_url", "created_at",
}

func TestFetchRecentMediaFiles(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	t.Run("newest first", func(t *testing.T) {
		rows := pgxmock.NewRows(mediaColumns).
			AddRow(uint64(2), uint64(7), "b2-new.png", "new.png", "image/png", uint64(10),
				"http://minio:9000/media/b2-new.png", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)).
			AddRow(uint64(1), uint64(7), "a1-old.png", "old.png", "image/png", uint64(20),
				"http://minio:9000/media/a1-old.png", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

		mock.ExpectQuery(regexp.QuoteMeta(SelectRecentMediaFiles)).
			WithArgs(200).
			WillReturnRows(rows)

		mfs, err := repo.FetchRecentMediaFiles(context.Background(), 200)
		require.NoError(t, err)
		require.Len(t, mfs, 2)
		assert.Equal(t, media.ID(2), mfs[0].ID)
		assert.Equal(t, "b2-new.png", mfs[0].StorageName)
		assert.Equal(t, media.ID(1), mfs[1].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty gallery", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(SelectRecentMediaFiles)).
			WithArgs(200).
			WillReturnRows(pgxmock.NewRows(mediaColumns))

		mfs, err := repo.FetchRecentMediaFiles(context.Background(), 200)
		require.NoError(t, err)
		assert.Empty(t, mfs)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(SelectRecentMediaFiles)).
			WithArgs(200).
			WillReturnError(errors.New("connection refused"))

		mfs, err := repo.FetchRecentMediaFiles(context.Background(), 200)
		require.Error(t, err)
		assert.Nil(t, mfs)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreateMediaFile(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	req := &media.MediaFile{
		OwnerID:      7,
		StorageName:  "c3-cat.png",
		OriginalName: "Cat.PNG",
		MimeType:     "image/png",
		SizeBytes:    3,
		DownloadURL:  "http://minio:9000/media/c3-cat.png",
	}

	mock.ExpectQuery(regexp.QuoteMeta(InsertMediaFile)).
		WithArgs(uint64(7), "c3-cat.png", "Cat.PNG", "image/png", uint64(3),
			"http://minio:9000/media/c3-cat.png").
		WillReturnRows(pgxmock.NewRows(mediaColumns).
			AddRow(uint64(42), uint64(7), "c3-cat.png", "Cat.PNG", "image/png", uint64(3),
				"http://minio:9000/media/c3-cat.png", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))

	mf, err := repo.CreateMediaFile(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, mf)
	assert.Equal(t, media.ID(42), mf.ID)
	assert.Equal(t, "c3-cat.png", mf.StorageName)
	require.NoError(t, mock.ExpectationsWereMet())
}
