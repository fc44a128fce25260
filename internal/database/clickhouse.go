package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"log/slog"
	"net"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/golang-migrate/migrate/v4"
	clickmigrations "github.com/golang-migrate/migrate/v4/database/clickhouse"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/oschwald/geoip2-golang"

	"urlify/internal/types"
)

//go:embed migrations/clickhouse/*.sql
var migrationsClickHouseFS embed.FS

const (
	clickBufferSize = 1000
	clickBatchSize  = 100
	clickFlushEvery = 5 * time.Second
)

// Analytics implements service.EventLog on ClickHouse. Appends go through a
// buffered channel drained by a single worker that batches inserts; the
// channel drops events when full so the redirect path never blocks on the
// analytics store.
type Analytics struct {
	db           *sql.DB
	clicksBuffer chan types.ClickEvent
	geo          *geoip2.Reader
}

// ConnectClickHouse opens the analytics store. geoPath may be empty, in which
// case click events are stored without geo enrichment.
func ConnectClickHouse(ctx context.Context, addr, user, pass, dbName, geoPath string) (*Analytics, error) {
	conn := clickhouse.OpenDB(&clickhouse.Options{
		Addr: []string{addr},
		Auth: clickhouse.Auth{
			Database: dbName,
			Username: user,
			Password: pass,
		},
		DialTimeout: time.Second * 30,
		Compression: &clickhouse.Compression{
			Method: clickhouse.CompressionLZ4,
		},
	})
	if err := conn.PingContext(ctx); err != nil {
		return nil, err
	}

	a := &Analytics{
		db:           conn,
		clicksBuffer: make(chan types.ClickEvent, clickBufferSize),
	}

	if geoPath != "" {
		geo, err := geoip2.Open(geoPath)
		if err != nil {
			slog.Warn("GeoIP database unavailable, storing clicks without geo data", "path", geoPath, "error", err)
		} else {
			a.geo = geo
		}
	}

	if err := a.runMigrations(); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *Analytics) runMigrations() error {
	src, err := iofs.New(migrationsClickHouseFS, "migrations/clickhouse")
	if err != nil {
		return err
	}

	driver, err := clickmigrations.WithInstance(a.db, &clickmigrations.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance(
		"iofs", src,
		"clickhouse", driver,
	)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	slog.Info("ClickHouse migrations applied successfully")
	return nil
}

// Start launches the batching worker. It drains and flushes the buffer once
// more when ctx is cancelled.
func (a *Analytics) Start(ctx context.Context) {
	go a.worker(ctx)
}

func (a *Analytics) worker(ctx context.Context) {
	var buffer []types.ClickEvent
	ticker := time.NewTicker(clickFlushEvery)
	defer ticker.Stop()

	flush := func() {
		if len(buffer) == 0 {
			return
		}
		if err := a.recordClicks(buffer); err != nil {
			slog.Warn("Failed to record click batch", "error", err, "count", len(buffer))
		}
		buffer = nil
	}

	for {
		select {
		case event := <-a.clicksBuffer:
			buffer = append(buffer, event)
			if len(buffer) >= clickBatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-ctx.Done():
			for {
				select {
				case event := <-a.clicksBuffer:
					buffer = append(buffer, event)
				default:
					flush()
					return
				}
			}
		}
	}
}

func (a *Analytics) Close() error {
	if a.geo != nil {
		if err := a.geo.Close(); err != nil {
			return err
		}
	}
	return a.db.Close()
}

func (a *Analytics) recordClicks(clicks []types.ClickEvent) error {
	tx, err := a.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO clicks (short_code, ip, country, city, user_agent, referer, clicked_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, event := range clicks {
		country, city := a.lookupGeo(event.IP)
		if event.ClickedAt.IsZero() {
			event.ClickedAt = time.Now()
		}
		_, err = stmt.Exec(event.Code, event.IP, country, city,
			event.UserAgent, event.Referer, event.ClickedAt)
		if err != nil {
			slog.Error("Failed to insert click event", "error", err, "code", event.Code)
			continue
		}
	}
	return tx.Commit()
}

func (a *Analytics) lookupGeo(rawIP string) (country, city string) {
	country, city = "Unknown", "Unknown"
	if a.geo == nil {
		return country, city
	}
	ip := net.ParseIP(rawIP)
	if ip == nil {
		return country, city
	}
	record, err := a.geo.City(ip)
	if err != nil {
		return country, city
	}
	if name, ok := record.Country.Names["en"]; ok {
		country = name
	}
	if name, ok := record.City.Names["en"]; ok {
		city = name
	}
	return country, city
}

// Append queues one click event. Never blocks: the event is dropped with a
// warning when the buffer is full.
func (a *Analytics) Append(event types.ClickEvent) {
	select {
	case a.clicksBuffer <- event:
	default:
		slog.Warn("Analytics buffer full, dropping click event", "code", event.Code)
	}
}

// RecentClicks returns up to limit most recent events for code, newest first.
func (a *Analytics) RecentClicks(ctx context.Context, code string, limit int) ([]types.ClickEvent, error) {
	rows, err := a.db.QueryContext(ctx,
		`SELECT short_code, ip, country, city, user_agent, referer, clicked_at
		 FROM clicks WHERE short_code = ? ORDER BY clicked_at DESC LIMIT ?`, code, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []types.ClickEvent
	for rows.Next() {
		var e types.ClickEvent
		if err := rows.Scan(&e.Code, &e.IP, &e.Country, &e.City,
			&e.UserAgent, &e.Referer, &e.ClickedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
