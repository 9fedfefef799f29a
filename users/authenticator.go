package users

import (
	"context"

	"github.com/go-kit/kit/endpoint"

	"github.com/bobinette/notenet/errors"
)

// Getter resolves a user id to a full identity.
type Getter interface {
	Get(id string) (User, error)
}

type Authenticator struct {
	users Getter
}

func NewAuthenticator(g Getter) *Authenticator {
	return &Authenticator{
		users: g,
	}
}

// Valid trusts the token: it stores the bare identity from the claims
// without hitting the registry. For endpoints that only need an id.
func (a *Authenticator) Valid(next endpoint.Endpoint) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		userID, err := extractUserID(ctx)
		if err != nil {
			return nil, err
		}

		return next(NewContext(ctx, User{ID: userID}), req)
	}
}

// Authenticated loads the full user behind the token and rejects
// tokens for users that no longer exist.
func (a *Authenticator) Authenticated(next endpoint.Endpoint) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		userID, err := extractUserID(ctx)
		if err != nil {
			return nil, err
		}

		user, err := a.users.Get(userID)
		if err != nil {
			if errors.IsNotFound(err) {
				return nil, errors.New("unknown user", errors.Unauthorized())
			}
			return nil, err
		}

		return next(NewContext(ctx, user), req)
	}
}
