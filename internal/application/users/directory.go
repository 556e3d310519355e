package users

import (
	"context"

	"github.com/baechuer/user-directory/internal/domain"
)

// GetByID resolves a user id against the store. The access gate uses this to
// neutralize tokens of deleted users; handlers use it for /me.
func (s *Service) GetByID(ctx context.Context, id string) (domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// ListAll returns every user record. No pagination; the endpoint serves an
// administrative view only.
func (s *Service) ListAll(ctx context.Context) ([]domain.User, error) {
	return s.users.GetAll(ctx)
}

// UpdateByID overwrites the provided fields of an existing record and
// returns the updated record. It fails with user_not_found for unknown ids
// and never creates a record.
func (s *Service) UpdateByID(ctx context.Context, id string, upd domain.UserUpdate) (domain.User, error) {
	if upd.IsEmpty() {
		return domain.User{}, domain.ErrInvalidField("body", "no fields to update")
	}
	return s.users.Update(ctx, id, upd)
}

// DeleteByID removes an existing record and returns its last snapshot.
func (s *Service) DeleteByID(ctx context.Context, id string) (domain.User, error) {
	return s.users.Delete(ctx, id)
}
