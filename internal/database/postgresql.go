package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"urlify/internal/service"
	"urlify/internal/types"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const pgUniqueViolation = "23505"

// Database implements service.UrlStore and service.UserDirectory on
// PostgreSQL.
type Database struct {
	db *sqlx.DB
}

func ConnectPostgres(ctx context.Context, url string) (*Database, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", url)
	if err != nil {
		return nil, err
	}

	pg := &Database{db: db}

	if err := pg.RunMigrations(); err != nil {
		return nil, err
	}

	return pg, nil
}

func (d *Database) RunMigrations() error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}

	driver, err := postgres.WithInstance(d.db.DB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance(
		"iofs", src,
		"postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	slog.Info("Database migrations applied successfully")
	return nil
}

func (d *Database) Close() error {
	return d.db.Close()
}

func (d *Database) Get(ctx context.Context, code string) (*types.ShortLink, error) {
	var link types.ShortLink
	err := d.db.GetContext(ctx, &link,
		`SELECT id, short_code, original_url, user_id, click_count, expires_at, created_at
		 FROM urls WHERE short_code = $1`, code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, service.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (d *Database) ExistsCode(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := d.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM urls WHERE short_code = $1)`, code)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (d *Database) Create(ctx context.Context, link *types.ShortLink) (*types.ShortLink, error) {
	created := *link
	err := d.db.QueryRowxContext(ctx,
		`INSERT INTO urls (short_code, original_url, user_id, expires_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, click_count, created_at`,
		link.Code, link.Destination, link.OwnerID, link.ExpiresAt,
	).Scan(&created.ID, &created.ClickCount, &created.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, service.ErrAliasTaken
		}
		return nil, err
	}
	return &created, nil
}

func (d *Database) IncrementClicks(ctx context.Context, code string) error {
	_, err := d.db.ExecContext(ctx,
		`UPDATE urls SET click_count = click_count + 1 WHERE short_code = $1`, code)
	return err
}

func (d *Database) FindByOwner(ctx context.Context, ownerID int64) ([]types.ShortLink, error) {
	links := []types.ShortLink{}
	err := d.db.SelectContext(ctx, &links,
		`SELECT id, short_code, original_url, user_id, click_count, expires_at, created_at
		 FROM urls WHERE user_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (d *Database) ResolveOwnerID(ctx context.Context, apiKey string) (int64, error) {
	var id int64
	err := d.db.GetContext(ctx, &id, `SELECT id FROM users WHERE api_key = $1`, apiKey)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, service.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (d *Database) EnsureTelegramUser(ctx context.Context, telegramID int64) (int64, error) {
	var id int64
	err := d.db.GetContext(ctx, &id,
		`INSERT INTO users (telegram_id) VALUES ($1)
		 ON CONFLICT (telegram_id) DO UPDATE SET telegram_id = EXCLUDED.telegram_id
		 RETURNING id`, telegramID)
	if err != nil {
		return 0, err
	}
	return id, nil
}
