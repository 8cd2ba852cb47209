package db

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
)

// Open returns a connection pool for databaseURL. It does not contact the server;
// call Ping to check reachability.
func Open(databaseURL string, maxOpen, maxIdle int) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// Ping checks the database with a bounded wait.
func Ping(ctx context.Context, db *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}
