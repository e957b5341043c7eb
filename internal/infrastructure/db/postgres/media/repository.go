package media

import (
	"context"

	"media-share-api/internal/domain/media"
	"media-share-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) media.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchRecentMediaFiles(ctx context.Context, limit int) (media.MediaFiles, error) {
	rows, err := r.db.Query(ctx, SelectRecentMediaFiles, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mfs MediaFiles
	for rows.Next() {
		mf := new(MediaFile)

		if err = rows.Scan(
			&mf.ID,
			&mf.UserID,

			&mf.StorageName,
			&mf.OriginalName,
			&mf.MimeType,
			&mf.SizeBytes,
			&mf.DownloadURL,

			&mf.CreatedAt,
		); err != nil {
			return nil, err
		}

		mfs = append(mfs, mf)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&mfs), nil
}

func (r *Repository) CreateMediaFile(ctx context.Context, req *media.MediaFile) (*media.MediaFile, error) {
	mf := new(MediaFile)

	err := r.db.QueryRow(
		ctx,
		InsertMediaFile,
		uint64(req.OwnerID), req.StorageName, req.OriginalName, req.MimeType, req.SizeBytes, req.DownloadURL,
	).Scan(
		&mf.ID,
		&mf.UserID,

		&mf.StorageName,
		&mf.OriginalName,
		&mf.MimeType,
		&mf.SizeBytes,
		&mf.DownloadURL,

		&mf.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(mf), err
}
