package sql

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	maxRetries    = 5
	_queryTimeout = 5 * time.Second
)

func NewPosgreORM(dsn string) (*DB, error) {
	pass, ok := os.LookupEnv("FORMS_SERVER_POSTGRES_PASSWORD")
	if ok {
		dsn = fmt.Sprintf("%s password=%s", dsn, pass)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return &DB{
		DB:                   gormDB,
		autoMigrationEnabled: true,
	}, nil
}

type PostgreDatabase struct {
	url  string
	Conn *pgxpool.Pool
}

func NewPosgreDatabase(url string) *PostgreDatabase {
	return &PostgreDatabase{
		url: url,
	}
}

func (d *PostgreDatabase) Open() error {
	for range maxRetries {
		conn, err := pgxpool.New(context.Background(), d.url)
		if err != nil {
			time.Sleep(5 * time.Second)
		} else {
			d.Conn = conn
			return nil
		}
	}

	return fmt.Errorf("imposible to connect to database after %d retries", maxRetries)
}

func (d *PostgreDatabase) Close() {
	d.Conn.Close()
}

func (d *PostgreDatabase) Command(sql string) error {
	_, err := d.Conn.Exec(context.Background(), sql)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	return nil
}

// Up applies all pending SQL migrations from the given directory in
// lexicographic order. Applied versions are tracked in schema_migrations.
func (d *PostgreDatabase) Up(migrationsPath string, replacements map[string]string) error {
	err := d.Command(`CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied_at TIMESTAMPTZ NOT NULL DEFAULT now())`)
	if err != nil {
		return fmt.Errorf("creating migrations table: %w", err)
	}

	entries, err := os.ReadDir(migrationsPath)
	if err != nil {
		return fmt.Errorf("reading migrations dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		applied, err := d.isApplied(name)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(migrationsPath, name))
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		script := string(raw)
		for placeholder, value := range replacements {
			script = strings.ReplaceAll(script, placeholder, value)
		}

		if err := d.Command(script); err != nil {
			return fmt.Errorf("applying migration %s: %w", name, err)
		}

		_, err = d.Conn.Exec(context.Background(), `INSERT INTO schema_migrations (version) VALUES ($1)`, name)
		if err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

func (d *PostgreDatabase) isApplied(version string) (bool, error) {
	ctx, cancelFn := context.WithTimeout(context.Background(), _queryTimeout)
	defer cancelFn()

	var count int
	err := d.Conn.QueryRow(ctx, `SELECT count(*) FROM schema_migrations WHERE version = $1`, version).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("querying migrations table: %w", err)
	}

	return count > 0, nil
}
