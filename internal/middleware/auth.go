package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/inkwell-dev/inkwell/internal/domain"
	"github.com/inkwell-dev/inkwell/internal/jwt"
	"github.com/inkwell-dev/inkwell/internal/utils"
)

// Key to store the user claims in the request context
type key int

const UserClaimsKey key = 0

// Auth holds dependencies for authentication middleware
type Auth struct {
	tokens jwt.TokenService
}

func NewAuth(tokens jwt.TokenService) *Auth {
	return &Auth{tokens: tokens}
}

// NeedAuth returns middleware that requires a valid bearer token.
// It fails closed: absent, malformed, invalid or expired tokens all get 401.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.extractUser(r)
			if err != nil {
				if err == errNoToken {
					http.Error(w, "Not authenticated", http.StatusUnauthorized)
					return
				}
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractUser pulls the bearer token from the Authorization header and
// resolves it to the identity embedded in its claims. The user's existence
// is deliberately not re-checked against storage: tokens stay trusted
// until expiry.
func (a *Auth) extractUser(r *http.Request) (*domain.User, error) {
	tokenString, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found || tokenString == "" {
		return nil, errNoToken
	}

	userId, err := a.tokens.DecodeToken(tokenString)
	if err != nil {
		return nil, err
	}

	return &domain.User{Id: userId}, nil
}

var errNoToken = errorString("no token")

type errorString string

func (e errorString) Error() string { return string(e) }

// GetUserFromContext retrieves the authenticated user from the context.
// Returns nil when the request did not pass through NeedAuth.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(UserClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
