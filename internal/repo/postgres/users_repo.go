package postgres

import (
	"context"
	"errors"

	"github.com/andriiko/pocketbank/internal/domain/user"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UsersRepo is the persistent credential store, selected when DATABASE_URL
// is configured. It implements the same interface as the in-memory repo.
type UsersRepo struct {
	pool *pgxpool.Pool
}

func NewUsersRepo(pool *pgxpool.Pool) *UsersRepo {
	return &UsersRepo{pool: pool}
}

func (r *UsersRepo) FindByIdentifier(ctx context.Context, identifier string) (user.User, error) {
	return r.findWhere(ctx,
		`SELECT id, email, phone, password_hash, created_at
         FROM users
         WHERE email = $1 OR phone = $1
         ORDER BY created_at
         LIMIT 1`,
		identifier,
	)
}

func (r *UsersRepo) FindByEmail(ctx context.Context, email string) (user.User, error) {
	return r.findWhere(ctx,
		`SELECT id, email, phone, password_hash, created_at
         FROM users
         WHERE email = $1`,
		email,
	)
}

func (r *UsersRepo) findWhere(ctx context.Context, query string, arg string) (user.User, error) {
	var u user.User

	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID,
		&u.Email,
		&u.Phone,
		&u.PasswordHash,
		&u.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}

		return user.User{}, err
	}
	return u, nil
}

func (r *UsersRepo) Insert(ctx context.Context, u user.User) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (id, email, phone, password_hash, created_at)
         VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.Email, u.Phone, u.PasswordHash, u.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError

		// 23505 = unique_violation on the email index
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.ErrDuplicateUser
		}

		return err
	}

	return nil
}

func (r *UsersRepo) Count(ctx context.Context) (int, error) {
	var n int

	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n)

	if err != nil {
		return 0, err
	}

	return n, nil
}
