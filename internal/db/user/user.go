package user

import (
	"context"
	"database/sql"
	"errors"
	c "storemap/internal/core/domain/common"
	"storemap/internal/core/domain/user"
	"storemap/internal/db"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "user_email_idx"

const userColumns = `id, email, name, password_hash, created_at, reset_token, reset_token_expires_at`

type PgxUserRepository struct {
	db db.Querier
}

func NewPgxRepository(db db.Querier) *PgxUserRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxUserRepository{db: db}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO "user" (email, name, password_hash, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+userColumns,
		string(input.Email),
		input.Name,
		string(input.PasswordHash),
		input.CreatedAt,
	)
	u, err = scanUser(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return u, user.ErrEmailAlreadyExists
		}
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM "user" WHERE id = $1`,
		int64(id),
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

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM "user" WHERE email = $1`,
		string(email),
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

func (r *PgxUserRepository) GetByValidResetToken(
	ctx context.Context,
	token user.PasswordResetToken,
	now time.Time,
) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM "user"
		 WHERE reset_token = $1 AND reset_token_expires_at > $2`,
		string(token),
		now,
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrResetTokenInvalidOrExpired
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxUserRepository) SetResetToken(
	ctx context.Context,
	id user.ID,
	token user.PasswordResetToken,
	expiresAt time.Time,
) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE "user"
		 SET reset_token = $2, reset_token_expires_at = $3
		 WHERE id = $1
		 RETURNING `+userColumns,
		int64(id),
		string(token),
		expiresAt,
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

// ConsumeResetToken relies on the guarded UPDATE hitting at most one row,
// so concurrent calls with the same token cannot both succeed.
func (r *PgxUserRepository) ConsumeResetToken(
	ctx context.Context,
	token user.PasswordResetToken,
	now time.Time,
	hash user.PasswordHash,
) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE "user"
		 SET password_hash = $3, reset_token = NULL, reset_token_expires_at = NULL
		 WHERE reset_token = $1 AND reset_token_expires_at > $2
		 RETURNING `+userColumns,
		string(token),
		now,
		string(hash),
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrResetTokenInvalidOrExpired
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

// SetPassword also drops any pending reset token so that earlier
// emailed reset links stop working once the password changes.
func (r *PgxUserRepository) SetPassword(ctx context.Context, id user.ID, password user.PasswordHash) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user"
		 SET password_hash = $2, reset_token = NULL, reset_token_expires_at = NULL
		 WHERE id = $1`,
		int64(id),
		string(password),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var (
		id            int64
		email         string
		name          string
		passwordHash  string
		createdAt     time.Time
		resetToken    sql.NullString
		resetTokenExp sql.NullTime
	)
	err = row.Scan(&id, &email, &name, &passwordHash, &createdAt, &resetToken, &resetTokenExp)
	if err != nil {
		return u, err
	}
	return user.User{
		ID:                  user.ID(id),
		Email:               c.Email(email),
		Name:                name,
		PasswordHash:        user.PasswordHash(passwordHash),
		CreatedAt:           createdAt,
		ResetToken:          c.NewOptional(user.PasswordResetToken(resetToken.String), resetToken.Valid),
		ResetTokenExpiresAt: c.NewOptional(resetTokenExp.Time, resetTokenExp.Valid),
	}, nil
}
