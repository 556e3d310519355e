package users

import (
	"time"
)

// Service implements the identity and directory operations on top of the
// UserRepo / PasswordHasher / TokenSigner ports.
type Service struct {
	users    UserRepo
	hasher   PasswordHasher
	signer   TokenSigner
	tokenTTL time.Duration
}

type Config struct {
	TokenTTL time.Duration
}

func NewService(users UserRepo, hasher PasswordHasher, signer TokenSigner, cfg Config) *Service {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Service{
		users:    users,
		hasher:   hasher,
		signer:   signer,
		tokenTTL: ttl,
	}
}

// TokenTTL is the lifetime stamped into issued session tokens. The cookie
// max-age must match it.
func (s *Service) TokenTTL() time.Duration { return s.tokenTTL }
