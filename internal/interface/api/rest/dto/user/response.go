package user

type (
	User struct {
		ID    uint64 `json:"id"`
		Email string `json:"email"`
	}
	ResponseData struct {
		User User `json:"user"`
	}
)
