package media

import (
	"path/filepath"
	"strings"
	"time"

	"media-share-api/internal/domain/user"
)

type (
	ID        uint64
	MediaFile struct {
		ID      ID
		OwnerID user.ID

		// StorageName is the collision-free object key; OriginalName is
		// the user-supplied filename and must be treated as untrusted
		// text by anything that renders it.
		StorageName  string
		OriginalName string
		MimeType     string
		SizeBytes    uint64
		DownloadURL  string

		CreatedAt time.Time
	}
	MediaFiles []*MediaFile
)

const (
	KindImage = "image"
	KindVideo = "video"
)

var videoExts = map[string]struct{}{
	".mp4": {}, ".webm": {}, ".mov": {}, ".m4v": {}, ".avi": {},
}

// Kind classifies a file for renderers: video when the declared mime
// type says so, extension fallback when it is absent.
func Kind(mimeType, name string) string {
	if strings.HasPrefix(mimeType, "video/") {
		return KindVideo
	}
	if mimeType == "" {
		if _, ok := videoExts[strings.ToLower(filepath.Ext(name))]; ok {
			return KindVideo
		}
	}
	return KindImage
}
