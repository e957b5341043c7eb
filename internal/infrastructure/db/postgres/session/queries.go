package session

const (
	SelectSessionByToken = `
		SELECT token, user_id, created_at
		FROM sessions
		WHERE token = $1
	`
	InsertSession = `
		INSERT INTO sessions (token, user_id)
		VALUES ($1, $2)
		RETURNING
		  token, user_id, created_at
	`
	DeleteSessionByToken = `
		DELETE FROM sessions
		WHERE token = $1
	`
)
