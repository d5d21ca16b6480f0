package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
)

type Storage struct {
	db *pgxpool.Pool
}

const (
	// tables
	EntriesTable = "gallery_entries"
	MediaTable   = "gallery_media"
)

const schema = `
CREATE TABLE IF NOT EXISTS gallery_entries (
	id          TEXT PRIMARY KEY,
	position    INT NOT NULL,
	title       TEXT NOT NULL,
	client      TEXT NOT NULL DEFAULT '',
	date        TEXT NOT NULL DEFAULT '',
	location    TEXT NOT NULL DEFAULT '',
	tags        TEXT[] NOT NULL DEFAULT '{}',
	description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS gallery_media (
	entry_id  TEXT NOT NULL REFERENCES gallery_entries(id) ON DELETE CASCADE,
	position  INT NOT NULL,
	kind      TEXT NOT NULL CHECK (kind IN ('image', 'video')),
	src       TEXT NOT NULL,
	thumb     TEXT NOT NULL DEFAULT '',
	poster    TEXT NOT NULL DEFAULT '',
	alt       TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (entry_id, position)
);
`

func New(ctx context.Context, dsn string) (*Storage, error) {
	const op = "storage.postgresql.New"

	db, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		db: db,
	}, nil
}

// NewFromPool оборачивает уже открытый пул (используется в тестах)
func NewFromPool(db *pgxpool.Pool) *Storage {
	return &Storage{db: db}
}

func (s *Storage) DB() *pgxpool.Pool {
	return s.db
}

// Migrate создает таблицы каталога, если их еще нет
func (s *Storage) Migrate(ctx context.Context) error {
	const op = "storage.postgresql.Migrate"

	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) Stop() {
	s.db.Close()
}
