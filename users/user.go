// Package users carries the acting user of the in-flight request. The
// identity lives in the request context, set once by the
// authentication middleware and dropped with the request: concurrent
// requests can never observe each other's user.
package users

import (
	"context"

	kitjwt "github.com/go-kit/kit/auth/jwt"

	"github.com/bobinette/notenet/errors"
	"github.com/bobinette/notenet/jwt"
)

var contextKey = "user"

// User is the identity attributed to the in-flight request.
type User struct {
	ID    string
	Name  string
	Email string
}

// NewContext returns a context carrying the user.
func NewContext(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, contextKey, user)
}

// FromContext retrieves the acting user. Callers that reach this point
// without an identity get a 401: the decision services never guess a
// user.
func FromContext(ctx context.Context) (User, error) {
	v := ctx.Value(contextKey)
	if v == nil {
		return User{}, errors.New("no user", errors.Unauthorized())
	}

	user, ok := v.(User)
	if !ok {
		return User{}, errors.New("invalid user", errors.Unauthorized())
	}

	return user, nil
}

func extractUserID(ctx context.Context) (string, error) {
	claims := ctx.Value(kitjwt.JWTClaimsContextKey)
	if claims == nil {
		return "", errors.New("no user", errors.Unauthorized())
	}

	c, ok := claims.(*jwt.Claims)
	if !ok {
		return "", errors.New("invalid claims", errors.Unauthorized())
	}

	return c.UserID, nil
}
