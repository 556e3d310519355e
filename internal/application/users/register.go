package users

import (
	"context"
	"strings"

	"github.com/baechuer/user-directory/internal/domain"
)

// RegisterInput carries the plaintext registration fields. The service owns
// hashing; the plaintext password is never persisted.
type RegisterInput struct {
	Email      string
	Name       string
	Password   string
	Phone      string
	Profession string
}

// Register creates a new user. It fails with email_taken when the email is
// already registered. The duplicate check is check-then-insert; two racing
// registrations for the same email can both pass it (accepted at this
// system's scope, see DESIGN.md).
func (s *Service) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if _, err := s.users.GetByEmail(ctx, in.Email); err == nil {
		return domain.User{}, domain.ErrEmailTaken()
	} else if !domain.Is(err, "user_not_found") {
		return domain.User{}, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return domain.User{}, domain.ErrHashFailed(err)
	}

	u := domain.User{
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: hash,
		Phone:        in.Phone,
		Profession:   in.Profession,
	}

	created, err := s.users.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}
	return created, nil
}
