package store

// SQL statements used by the PostgreSQL-backed repositories.
const (
	createUserQuery = `
		INSERT INTO users (login, password_hash)
		VALUES ($1, $2)
		RETURNING user_id, login, password_hash, created_at`

	findUserByLoginQuery = `
		SELECT user_id, login, password_hash, created_at
		FROM users
		WHERE login = $1`
)
