package auth

import (
	userDTO "media-share-api/internal/interface/api/rest/dto/user"
)

type TokenResponse struct {
	Token string       `json:"token"`
	User  userDTO.User `json:"user"`
}
