package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// NewDB creates a new MySQL database connection pool with the given DSN.
func NewDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

// bootstrapStatements create the schema if it does not exist yet.
// Proper migration tooling is out of scope; this mirrors running the
// DDL once on a fresh database.
var bootstrapStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGINT AUTO_INCREMENT PRIMARY KEY,
		username      VARCHAR(255) NOT NULL,
		email         VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		UNIQUE KEY uq_users_username (username),
		UNIQUE KEY uq_users_email (email)
	)`,
	`CREATE TABLE IF NOT EXISTS clothing_categories (
		id   BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		UNIQUE KEY uq_clothing_categories_name (name)
	)`,
	`CREATE TABLE IF NOT EXISTS clothing_items (
		id          BIGINT AUTO_INCREMENT PRIMARY KEY,
		name        VARCHAR(255) NOT NULL,
		description TEXT,
		image_url   VARCHAR(2048),
		created_at  DATETIME NOT NULL,
		category_id BIGINT NOT NULL,
		user_id     BIGINT,
		KEY idx_clothing_items_user_created (user_id, created_at),
		CONSTRAINT fk_clothing_items_category FOREIGN KEY (category_id) REFERENCES clothing_categories (id),
		CONSTRAINT fk_clothing_items_user FOREIGN KEY (user_id) REFERENCES users (id)
	)`,
}

// Bootstrap creates the required tables when they are missing.
func Bootstrap(ctx context.Context, db *sql.DB) error {
	for _, stmt := range bootstrapStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrapping schema: %w", err)
		}
	}
	return nil
}
