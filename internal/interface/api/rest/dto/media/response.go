package media

import (
	"time"
)

type (
	// MediaFile mirrors the gallery contract: name is the storage name,
	// original_name is untrusted display text. Gallery entries carry no id.
	MediaFile struct {
		ID           uint64    `json:"id,omitempty"`
		Name         string    `json:"name"`
		OriginalName string    `json:"original_name"`
		MimeType     string    `json:"mime_type"`
		Size         uint64    `json:"size"`
		CreatedAt    time.Time `json:"created_at"`
		URL          string    `json:"url"`
	}
	MediaFiles []MediaFile

	UploadResponse struct {
		File MediaFile `json:"file"`
	}
	ListResponse struct {
		Files MediaFiles `json:"files"`
	}

	// UploadedEvent is the MQ payload for media.uploaded.
	UploadedEvent struct {
		File MediaFile `json:"file"`
		Kind string    `json:"kind"`
	}
)
