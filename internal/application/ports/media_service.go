package ports

import (
	"context"
	"mime/multipart"

	"media-share-api/internal/domain/media"
	"media-share-api/internal/domain/user"
)

type MediaService interface {
	Ingest(ctx context.Context, owner *user.User, in *multipart.FileHeader) (*media.MediaFile, error)
	ListRecent(ctx context.Context, limit int) (media.MediaFiles, error)
}
