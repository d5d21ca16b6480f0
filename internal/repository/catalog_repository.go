package repository

import (
	"context"
	"fmt"

	"bluearc/internal/domain/models"
	"bluearc/internal/storage/postgresql"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/lib/pq"
)

type PostgresCatalogRepo struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

func NewPostgresCatalogRepo(db *pgxpool.Pool) *PostgresCatalogRepo {
	return &PostgresCatalogRepo{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Entries возвращает каталог в авторском порядке вместе с медиа
func (r *PostgresCatalogRepo) Entries(ctx context.Context) (models.Catalog, error) {
	const op = "repository.PostgresCatalogRepo.Entries"

	query, args, err := r.sb.Select(
		"id", "title", "client", "date", "location", "tags", "description",
	).
		From(postgresql.EntriesTable).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var catalog models.Catalog
	byID := make(map[string]int)

	for rows.Next() {
		var e models.GalleryEntry
		if err := rows.Scan(
			&e.ID,
			&e.Title,
			&e.Client,
			&e.Date,
			&e.Location,
			&e.Tags,
			&e.Description,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		byID[e.ID] = len(catalog)
		catalog = append(catalog, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(catalog) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrCatalogEmpty)
	}

	if err := r.attachMedia(ctx, catalog, byID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return catalog, nil
}

func (r *PostgresCatalogRepo) attachMedia(ctx context.Context, catalog models.Catalog, byID map[string]int) error {
	query, args, err := r.sb.Select(
		"entry_id", "kind", "src", "thumb", "poster", "alt",
	).
		From(postgresql.MediaTable).
		OrderBy("entry_id", "position ASC").
		ToSql()
	if err != nil {
		return err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entryID string
			kind    string
			m       models.MediaItem
		)
		if err := rows.Scan(&entryID, &kind, &m.Source, &m.Thumbnail, &m.Poster, &m.AltText); err != nil {
			return err
		}
		m.Kind = models.MediaKind(kind)

		i, ok := byID[entryID]
		if !ok {
			continue
		}
		catalog[i].Media = append(catalog[i].Media, m)
	}

	return rows.Err()
}

// ReplaceCatalog заменяет содержимое каталога целиком в одной транзакции
func (r *PostgresCatalogRepo) ReplaceCatalog(ctx context.Context, catalog models.Catalog) error {
	const op = "repository.PostgresCatalogRepo.ReplaceCatalog"

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback(ctx)

	query, args, err := r.sb.Delete(postgresql.EntriesTable).ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for pos, e := range catalog {
		query, args, err := r.sb.Insert(postgresql.EntriesTable).
			Columns("id", "position", "title", "client", "date", "location", "tags", "description").
			Values(e.ID, pos, e.Title, e.Client, e.Date, e.Location, pq.Array(append([]string{}, e.Tags...)), e.Description).
			ToSql()
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("%s: entry %s: %w", op, e.ID, err)
		}

		if len(e.Media) == 0 {
			continue
		}

		mediaBuilder := r.sb.Insert(postgresql.MediaTable).
			Columns("entry_id", "position", "kind", "src", "thumb", "poster", "alt")
		for i, m := range e.Media {
			mediaBuilder = mediaBuilder.Values(e.ID, i, string(m.Kind), m.Source, m.Thumbnail, m.Poster, m.AltText)
		}

		query, args, err = mediaBuilder.ToSql()
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("%s: media of %s: %w", op, e.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
