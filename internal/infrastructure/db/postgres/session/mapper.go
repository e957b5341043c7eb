package session

import (
	domain "media-share-api/internal/domain/session"
	"media-share-api/internal/domain/user"
)

func fromDBModel(model *Session) *domain.Session {
	var s = &domain.Session{
		Token:  model.Token,
		UserID: user.ID(model.UserID),

		CreatedAt: model.CreatedAt,
	}

	return s
}
