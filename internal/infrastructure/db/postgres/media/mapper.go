package media

import (
	domain "media-share-api/internal/domain/media"
	"media-share-api/internal/domain/user"
)

func fromDBModel(model *MediaFile) *domain.MediaFile {
	var mf = &domain.MediaFile{
		ID:      domain.ID(model.ID),
		OwnerID: user.ID(model.UserID),

		StorageName:  model.StorageName,
		OriginalName: model.OriginalName,
		MimeType:     model.MimeType,
		SizeBytes:    model.SizeBytes,
		DownloadURL:  model.DownloadURL,

		CreatedAt: model.CreatedAt,
	}

	return mf
}

func fromDBModels(models *MediaFiles) domain.MediaFiles {
	mfs := make(domain.MediaFiles, len(*models))
	for idx, m := range *models {
		mfs[idx] = fromDBModel(m)
	}

	return mfs
}
