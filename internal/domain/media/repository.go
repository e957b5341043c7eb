package media

import (
	"context"
)

type Repository interface {
	FetchRecentMediaFiles(ctx context.Context, limit int) (MediaFiles, error)
	CreateMediaFile(ctx context.Context, req *MediaFile) (*MediaFile, error)
}
