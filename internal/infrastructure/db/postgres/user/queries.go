package user

const (
	SelectUserByID = `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE id = $1
	`
	SelectUserByEmail = `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`
	InsertUser = `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING
		  id, email, password_hash, created_at
	`
)
