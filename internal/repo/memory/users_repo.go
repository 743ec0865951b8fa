package memory

import (
	"context"
	"sync"

	"github.com/andriiko/pocketbank/internal/domain/user"
)

// UsersRepo is the demo credential store: an append-only slice guarded by a
// mutex. Lookups are linear scans on purpose, matching the behaviour the
// service is specified against (first match wins, insertion order).
type UsersRepo struct {
	mu    sync.RWMutex
	users []user.User
}

func NewUsersRepo() *UsersRepo {
	return &UsersRepo{}
}

func (r *UsersRepo) FindByIdentifier(ctx context.Context, identifier string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == identifier || u.Phone == identifier {
			return u, nil
		}
	}

	return user.User{}, user.ErrUserNotFound
}

func (r *UsersRepo) FindByEmail(ctx context.Context, email string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}

	return user.User{}, user.ErrUserNotFound
}

// Insert re-checks email uniqueness inside the write lock, so concurrent
// registrations with the same email cannot both land.
func (r *UsersRepo) Insert(ctx context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == u.Email {
			return user.ErrDuplicateUser
		}
	}

	r.users = append(r.users, u)

	return nil
}

func (r *UsersRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users), nil
}
