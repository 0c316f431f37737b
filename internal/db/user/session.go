package user

import (
	"context"
	"errors"
	e "storemap/internal/core/domain/errors"
	"storemap/internal/core/domain/user"
	"storemap/internal/db"

	"github.com/jackc/pgx/v4"
)

type PgxSessionRepository struct {
	db db.Querier
}

func NewPgxSessionRepository(db db.Querier) *PgxSessionRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxSessionRepository{db: db}
}

func (r *PgxSessionRepository) Create(ctx context.Context, input user.CreateSessionInput) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO session (token, user_id, created_at) VALUES ($1, $2, $3)`,
		string(input.Token),
		int64(input.UserID),
		input.CreatedAt,
	)
	return err
}

func (r *PgxSessionRepository) GetUserByToken(ctx context.Context, token user.SessionToken) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT u.id, u.email, u.name, u.password_hash, u.created_at, u.reset_token, u.reset_token_expires_at
		 FROM "user" AS u
		 JOIN session AS s ON s.user_id = u.id
		 WHERE s.token = $1`,
		string(token),
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxSessionRepository) Delete(ctx context.Context, token user.SessionToken) (userID user.ID, err error) {
	var rawUserID int64
	err = r.db.QueryRow(
		ctx,
		`DELETE FROM session WHERE token = $1 RETURNING user_id`,
		string(token),
	).Scan(&rawUserID)
	if errors.Is(err, pgx.ErrNoRows) {
		return userID, user.ErrSessionDoesNotExist
	}
	if err != nil {
		return userID, err
	}
	return user.ID(rawUserID), nil
}
