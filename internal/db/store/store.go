package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	c "storemap/internal/core/domain/common"
	e "storemap/internal/core/domain/errors"
	"storemap/internal/core/domain/store"
	"storemap/internal/core/domain/user"
	"storemap/internal/db"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const SLUG_CONSTRAINT_NAME = "store_slug_idx"

const storeColumns = `id, name, slug, description, tags, location, photo, author_id, created_at`

type PgxStoreRepository struct {
	db db.Querier
}

func NewPgxRepository(db db.Querier) *PgxStoreRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxStoreRepository{db: db}
}

func (r *PgxStoreRepository) Create(ctx context.Context, input store.CreateStoreInput) (s store.Store, err error) {
	location, err := encodeLocation(input.Location)
	if err != nil {
		return s, err
	}
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO store (name, slug, description, tags, location, author_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+storeColumns,
		input.Name,
		string(input.Slug),
		input.Description,
		encodeTags(input.Tags),
		location,
		int64(input.AuthorID),
		input.CreatedAt,
	)
	s, err = scanStore(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == SLUG_CONSTRAINT_NAME {
			return s, store.ErrSlugAlreadyExists
		}
	}
	if err != nil {
		return s, err
	}
	return s, s.Validate()
}

func (r *PgxStoreRepository) Update(ctx context.Context, input store.UpdateStoreInput) (s store.Store, err error) {
	location, err := encodeLocation(input.Location)
	if err != nil {
		return s, err
	}
	row := r.db.QueryRow(
		ctx,
		`UPDATE store
		 SET name = $2, description = $3, tags = $4, location = $5
		 WHERE id = $1
		 RETURNING `+storeColumns,
		int64(input.ID),
		input.Name,
		input.Description,
		encodeTags(input.Tags),
		location,
	)
	s, err = scanStore(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return s, store.ErrStoreDoesNotExist
	}
	if err != nil {
		return s, err
	}
	return s, s.Validate()
}

func (r *PgxStoreRepository) GetByID(ctx context.Context, id store.ID) (s store.Store, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+storeColumns+` FROM store WHERE id = $1`,
		int64(id),
	)
	s, err = scanStore(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return s, store.ErrStoreDoesNotExist
	}
	return s, err
}

func (r *PgxStoreRepository) GetBySlug(ctx context.Context, slug store.Slug) (s store.Store, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+storeColumns+` FROM store WHERE slug = $1`,
		string(slug),
	)
	s, err = scanStore(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return s, store.ErrStoreDoesNotExist
	}
	return s, err
}

func (r *PgxStoreRepository) List(
	ctx context.Context,
	options store.ListOptions,
) (stores []store.Store, totalCount uint, err error) {
	err = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM store`).Scan(&totalCount)
	if err != nil {
		return nil, 0, err
	}
	query := `SELECT ` + storeColumns + ` FROM store ORDER BY created_at DESC, id DESC OFFSET $1`
	args := []interface{}{int64(options.Offset)}
	if options.Limit > 0 {
		query += ` LIMIT $2`
		args = append(args, int64(options.Limit))
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	stores = make([]store.Store, 0)
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, 0, err
		}
		stores = append(stores, s)
	}
	return stores, totalCount, rows.Err()
}

func (r *PgxStoreRepository) SetPhoto(ctx context.Context, id store.ID, photo string) (s store.Store, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE store SET photo = $2 WHERE id = $1 RETURNING `+storeColumns,
		int64(id),
		photo,
	)
	s, err = scanStore(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return s, store.ErrStoreDoesNotExist
	}
	return s, err
}

func (r *PgxStoreRepository) TagCounts(ctx context.Context) ([]store.TagCount, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT tag, COUNT(*) AS count
		 FROM store, UNNEST(tags) AS tag
		 GROUP BY tag
		 ORDER BY count DESC, tag ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]store.TagCount, 0)
	for rows.Next() {
		var tc store.TagCount
		if err := rows.Scan(&tc.Tag, &tc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, tc)
	}
	return counts, rows.Err()
}

func (r *PgxStoreRepository) TopRated(
	ctx context.Context,
	minReviews uint,
	limit uint,
) ([]store.TopStore, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT s.id, s.name, s.slug, s.photo, AVG(r.rating)::float8 AS average_rating, COUNT(r.id) AS review_count
		 FROM store AS s
		 JOIN review AS r ON r.store_id = s.id
		 GROUP BY s.id
		 HAVING COUNT(r.id) >= $1
		 ORDER BY average_rating DESC
		 LIMIT $2`,
		int64(minReviews),
		int64(limit),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	top := make([]store.TopStore, 0)
	for rows.Next() {
		var (
			ts    store.TopStore
			id    int64
			photo sql.NullString
		)
		err := rows.Scan(&id, &ts.Name, &ts.Slug, &photo, &ts.AverageRating, &ts.ReviewCount)
		if err != nil {
			return nil, err
		}
		ts.ID = store.ID(id)
		ts.Photo = c.NewOptional(photo.String, photo.Valid)
		top = append(top, ts)
	}
	return top, rows.Err()
}

func encodeLocation(l store.Location) (pgtype.JSONB, error) {
	raw, err := json.Marshal(l)
	if err != nil {
		return pgtype.JSONB{}, err
	}
	return pgtype.JSONB{Bytes: raw, Status: pgtype.Present}, nil
}

func encodeTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func scanStore(row pgx.Row) (s store.Store, err error) {
	var (
		id       int64
		slug     string
		tags     []string
		location pgtype.JSONB
		photo    sql.NullString
		authorID int64
		created  time.Time
	)
	err = row.Scan(&id, &s.Name, &slug, &s.Description, &tags, &location, &photo, &authorID, &created)
	if err != nil {
		return s, err
	}
	if err = json.Unmarshal(location.Bytes, &s.Location); err != nil {
		return s, err
	}
	s.ID = store.ID(id)
	s.Slug = store.Slug(slug)
	s.Tags = tags
	s.Photo = c.NewOptional(photo.String, photo.Valid)
	s.AuthorID = user.ID(authorID)
	s.CreatedAt = created
	return s, nil
}
