package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/diskusi-dev/diskusi/internal/domain"
	"github.com/diskusi-dev/diskusi/internal/errors"
	"github.com/diskusi-dev/diskusi/internal/utils"
)

// Key to store the user claims in the request context
type key int

const UserClaimsKey key = 0

type TokenDecoder interface {
	DecodeAccessToken(tokenStr string) (domain.User, error)
}

type Auth struct {
	jwt TokenDecoder
}

func NewAuth(jwt TokenDecoder) *Auth {
	return &Auth{jwt}
}

// NeedAuth returns middleware that requires a valid bearer access token.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !found || token == "" {
				utils.WriteError(w, errors.NewAuthentication("Missing authentication"))
				return
			}

			user, err := a.jwt.DecodeAccessToken(token)
			if err != nil {
				utils.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, &user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext retrieves the user from the context
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(UserClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
