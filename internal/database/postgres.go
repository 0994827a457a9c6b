package database

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"
)

// PostgresDB backs the publisher's delivery log. It is optional: when no
// POSTGRES_URI is configured the publisher simply skips the log.
var PostgresDB *sql.DB

// ConnectPostgres connects to PostgreSQL and ensures the delivery log
// table exists.
func ConnectPostgres(postgresURI string) error {
	var err error

	PostgresDB, err = sql.Open("postgres", postgresURI)
	if err != nil {
		return err
	}

	PostgresDB.SetMaxOpenConns(25)
	PostgresDB.SetMaxIdleConns(5)
	PostgresDB.SetConnMaxLifetime(5 * time.Minute)

	if err = PostgresDB.Ping(); err != nil {
		return err
	}

	log.Println("✅ Connected to PostgreSQL")

	return InitPostgresTables()
}

// InitPostgresTables creates the delivery log table if it doesn't exist.
// Append-only: one row per channel per publish attempt.
func InitPostgresTables() error {
	query := `CREATE TABLE IF NOT EXISTS deliveries (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		post_id TEXT NOT NULL,
		channel VARCHAR(32) NOT NULL,
		preview TEXT NOT NULL,
		image_url TEXT,
		status VARCHAR(16) NOT NULL,
		error TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`

	_, err := PostgresDB.Exec(query)
	return err
}

// DisconnectPostgres closes the PostgreSQL connection pool.
func DisconnectPostgres() error {
	if PostgresDB != nil {
		return PostgresDB.Close()
	}
	return nil
}
