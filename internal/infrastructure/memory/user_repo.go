// Package memory provides an in-memory UserRepo used by unit tests and
// local runs without a MongoDB instance.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/baechuer/user-directory/internal/domain"
)

type UserRepo struct {
	mu      sync.RWMutex
	seq     int
	byID    map[string]domain.User
	byEmail map[string]string // email -> userID
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		byID:    make(map[string]domain.User),
		byEmail: make(map[string]string),
	}
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return r.byID[id], nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (r *UserRepo) GetAll(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

func (r *UserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[u.Email]; exists {
		return domain.User{}, domain.ErrEmailTaken()
	}

	// The store assigns the id, like the document store does.
	r.seq++
	u.ID = fmt.Sprintf("mem-%d", r.seq)

	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID
	return u, nil
}

func (r *UserRepo) Update(ctx context.Context, id string, upd domain.UserUpdate) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}

	if upd.Email != nil && *upd.Email != u.Email {
		if _, exists := r.byEmail[*upd.Email]; exists {
			return domain.User{}, domain.ErrEmailTaken()
		}
		delete(r.byEmail, u.Email)
	}

	upd.Apply(&u)
	r.byID[id] = u
	r.byEmail[u.Email] = id
	return u, nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	delete(r.byID, id)
	delete(r.byEmail, u.Email)
	return u, nil
}
