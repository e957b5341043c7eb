package media

import (
	"time"
)

type (
	MediaFile struct {
		ID     uint64
		UserID uint64

		StorageName  string
		OriginalName string
		MimeType     string
		SizeBytes    uint64
		DownloadURL  string

		CreatedAt time.Time
	}
	MediaFiles []*MediaFile
)
