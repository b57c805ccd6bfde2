package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

type Config struct {
	ConnString     string
	MigrationsPath string
}

// DB is the entity store: devices, their sensors, and append-only
// readings, with ownership expressed through cascading foreign keys.
type DB struct {
	connString     string
	migrationsPath string
	pool           *pgxpool.Pool
}

func (db *DB) Migrate(ctx context.Context) error {
	slog.InfoContext(ctx, "Running database migrations...", "path", db.migrationsPath)
	m, err := migrate.New(
		"file://"+db.migrationsPath,
		db.connString,
	)
	if err != nil {
		return err
	}
	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

// Init connects, verifies connectivity, and brings the schema up to
// date before handing the pool out.
func Init(ctx context.Context, cfg Config) (*DB, error) {
	pool, err := pgxpool.Connect(ctx, cfg.ConnString)
	if err != nil {
		return nil, fmt.Errorf("connecting to entity store: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging entity store: %w", err)
	}

	db := &DB{
		pool:           pool,
		connString:     cfg.ConnString,
		migrationsPath: cfg.MigrationsPath,
	}
	if err := db.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return db, nil
}

func (db *DB) Close() {
	db.pool.Close()
}
