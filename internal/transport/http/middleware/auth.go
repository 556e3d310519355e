package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/baechuer/user-directory/internal/application/users"
	"github.com/baechuer/user-directory/internal/domain"
	"github.com/baechuer/user-directory/internal/infrastructure/security"
	"github.com/baechuer/user-directory/internal/metrics"
)

type TokenVerifier interface {
	VerifySessionToken(token string) (users.TokenClaims, error)
}

// UserResolver is the minimal store surface the gate needs to confirm the
// token's subject still exists.
type UserResolver interface {
	GetByID(ctx context.Context, id string) (domain.User, error)
}

type WriteErrFunc func(http.ResponseWriter, *http.Request, error)

// AccessGate verifies the session cookie, then re-resolves the token's user
// against the store on every request. A valid token whose user has since
// been deleted is rejected with 403; that is the only revocation mechanism
// for these stateless tokens.
func AccessGate(verifier TokenVerifier, resolver UserResolver, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := security.ReadSessionToken(r)
			if err != nil || strings.TrimSpace(raw) == "" {
				metrics.RecordGateRejection("token_missing")
				writeErr(w, r, domain.ErrTokenMissing())
				return
			}

			claims, err := verifier.VerifySessionToken(raw)
			if err != nil {
				metrics.RecordGateRejection("token_invalid")
				writeErr(w, r, err)
				return
			}

			if strings.TrimSpace(claims.UserID) == "" {
				metrics.RecordGateRejection("token_invalid")
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			u, err := resolver.GetByID(r.Context(), claims.UserID)
			if err != nil {
				if domain.Is(err, "user_not_found") {
					metrics.RecordGateRejection("user_gone")
					writeErr(w, r, domain.ErrTokenUserGone())
					return
				}
				writeErr(w, r, err)
				return
			}

			ctx := WithIdentity(r.Context(), Identity{
				UserID: u.ID,
				Email:  u.Email,
				Name:   u.Name,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
