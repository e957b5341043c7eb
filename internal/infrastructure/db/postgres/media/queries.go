package media

const (
	SelectRecentMediaFiles = `
		SELECT id, user_id, storage_name, original_name, mime_type, size_bytes, download_url, created_at
		FROM media_files
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
	InsertMediaFile = `
		INSERT INTO media_files (user_id, storage_name, original_name, mime_type, size_bytes, download_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING
		  id, user_id, storage_name, original_name, mime_type, size_bytes, download_url, created_at
	`
)
