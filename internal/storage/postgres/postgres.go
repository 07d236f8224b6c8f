package postgres

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pribylovaa/hotel-listing-api/internal/storage"
)

type Storage struct {
	db *pgxpool.Pool
}

// New создает новое подключение к PostgreSQL.
func New(ctx context.Context, dbURL string) (*Storage, error) {
	const op = "storage.postgres.New"

	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

// Ping проверяет доступность БД (используется health-check'ом).
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close закрывает пул соединений.
func (s *Storage) Close() {
	s.db.Close()
}

// Migrate применяет ещё не применённые *.up.sql из fsys (формат имён N_title.up.sql).
// Применённые версии хранятся в schema_migrations, поэтому повторный запуск ничего не делает.
func (s *Storage) Migrate(ctx context.Context, fsys fs.FS) error {
	const op = "storage.postgres.Migrate"

	m, err := s.migrator(ctx, fsys)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer closeMigrator(m)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Rollback откатывает все применённые миграции по *.down.sql.
func (s *Storage) Rollback(ctx context.Context, fsys fs.FS) error {
	const op = "storage.postgres.Rollback"

	m, err := s.migrator(ctx, fsys)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer closeMigrator(m)

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// MigrationVersion возвращает версию схемы (0 — миграции не применялись) и признак dirty.
func (s *Storage) MigrationVersion(ctx context.Context, fsys fs.FS) (uint, bool, error) {
	const op = "storage.postgres.MigrationVersion"

	m, err := s.migrator(ctx, fsys)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", op, err)
	}
	defer closeMigrator(m)

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", op, err)
	}

	return version, dirty, nil
}

// migrator собирает golang-migrate поверх пула: database/sql-обёртка берёт соединения из s.db.
func (s *Storage) migrator(ctx context.Context, fsys fs.FS) (*migrate.Migrate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, err := iofs.New(fsys, ".")
	if err != nil {
		return nil, err
	}

	db := stdlib.OpenDBFromPool(s.db)
	driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		_ = db.Close()
		_ = src.Close()
		return nil, err
	}

	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		_ = driver.Close()
		_ = src.Close()
		return nil, err
	}

	return m, nil
}

func closeMigrator(m *migrate.Migrate) {
	_, _ = m.Close()
}

// Проверка на соответствие интерфейсу Storage.
var _ storage.Storage = (*Storage)(nil)
