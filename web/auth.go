package web

import (
	"github.com/bobinette/notenet/services"
	"github.com/bobinette/notenet/users"
)

// identity adapts the user registry to the authenticator.
type identity struct {
	service *services.UserService
}

func (i identity) Get(id string) (users.User, error) {
	user, err := i.service.Get(id)
	if err != nil {
		return users.User{}, err
	}

	return users.User{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

// NewAuthenticator builds the authenticator used by all the routes.
func NewAuthenticator(service *services.UserService) *users.Authenticator {
	return users.NewAuthenticator(identity{service: service})
}
