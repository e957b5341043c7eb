package user

import (
	"media-share-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:    uint64(uDomain.ID),
		Email: uDomain.Email,
	}

	return u
}
