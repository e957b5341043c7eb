package media

import (
	"media-share-api/internal/domain/media"
)

func ToResponseMediaFile(mDomain media.MediaFile) MediaFile {
	var mf = MediaFile{
		ID:           uint64(mDomain.ID),
		Name:         mDomain.StorageName,
		OriginalName: mDomain.OriginalName,
		MimeType:     mDomain.MimeType,
		Size:         mDomain.SizeBytes,
		CreatedAt:    mDomain.CreatedAt,
		URL:          mDomain.DownloadURL,
	}

	return mf
}

func ToResponseMediaFiles(mfDomain media.MediaFiles) MediaFiles {
	mfs := make(MediaFiles, len(mfDomain))
	for idx, m := range mfDomain {
		mf := ToResponseMediaFile(*m)
		mf.ID = 0
		mfs[idx] = mf
	}

	return mfs
}

func ToUploadedEvent(mDomain media.MediaFile) UploadedEvent {
	return UploadedEvent{
		File: ToResponseMediaFile(mDomain),
		Kind: media.Kind(mDomain.MimeType, mDomain.OriginalName),
	}
}
