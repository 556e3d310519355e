package users

import (
	"context"
	"time"

	"github.com/baechuer/user-directory/internal/domain"
)

/*
UserRepo
--------
Persistence port for users.
Only describes WHAT the service needs, not HOW it's stored.
The backing store assigns IDs on Create.
*/
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
	Update(ctx context.Context, id string, upd domain.UserUpdate) (domain.User, error)
	Delete(ctx context.Context, id string) (domain.User, error)
}

/*
PasswordHasher
--------------
Abstracts bcrypt / argon2.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error // nil if match
}

/*
TokenSigner
-----------
Issues and verifies session tokens (JWT).
Used by the service and the access-gate middleware.
*/
type TokenClaims struct {
	UserID string
	Exp    time.Time
}

type TokenSigner interface {
	SignSessionToken(userID string, ttl time.Duration) (string, error)
	VerifySessionToken(token string) (TokenClaims, error)
}
