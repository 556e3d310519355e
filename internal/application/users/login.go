package users

import (
	"context"
	"strings"

	"github.com/baechuer/user-directory/internal/domain"
)

// LoginResult is the outcome of a successful credential check: the user and
// a freshly signed session token the caller delivers as a cookie.
type LoginResult struct {
	User  domain.User
	Token string
}

// Login verifies the email/password pair and issues a session token bound to
// the user's id. Unknown email and wrong password are reported as distinct
// errors (user_not_found vs invalid_password), matching the public API
// contract.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return LoginResult{}, domain.ErrInvalidPassword()
	}

	tok, err := s.signer.SignSessionToken(u.ID, s.tokenTTL)
	if err != nil {
		return LoginResult{}, domain.ErrTokenSignFailed(err)
	}

	return LoginResult{User: u, Token: tok}, nil
}
