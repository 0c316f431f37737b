package store

import (
	"context"
	e "storemap/internal/core/domain/errors"
	"storemap/internal/core/domain/store"
	"storemap/internal/core/domain/user"
	"storemap/internal/db"
	"time"

	"github.com/jackc/pgx/v4"
)

const reviewColumns = `id, store_id, author_id, rating, text, created_at`

type PgxReviewRepository struct {
	db db.Querier
}

func NewPgxReviewRepository(db db.Querier) *PgxReviewRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxReviewRepository{db: db}
}

func (r *PgxReviewRepository) Create(ctx context.Context, input store.CreateReviewInput) (rv store.Review, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO review (store_id, author_id, rating, text, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+reviewColumns,
		int64(input.StoreID),
		int64(input.AuthorID),
		input.Rating,
		input.Text,
		input.CreatedAt,
	)
	rv, err = scanReview(row)
	if err != nil {
		return rv, err
	}
	return rv, rv.Validate()
}

func (r *PgxReviewRepository) ListByStore(ctx context.Context, storeID store.ID) ([]store.Review, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+reviewColumns+` FROM review WHERE store_id = $1 ORDER BY created_at DESC, id DESC`,
		int64(storeID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]store.Review, 0)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func scanReview(row pgx.Row) (rv store.Review, err error) {
	var (
		id       int64
		storeID  int64
		authorID int64
		created  time.Time
	)
	err = row.Scan(&id, &storeID, &authorID, &rv.Rating, &rv.Text, &created)
	if err != nil {
		return rv, err
	}
	rv.ID = store.ReviewID(id)
	rv.StoreID = store.ID(storeID)
	rv.AuthorID = user.ID(authorID)
	rv.CreatedAt = created
	return rv, nil
}
