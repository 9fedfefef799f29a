package web

import (
	"context"
	"encoding/json"
	"net/http"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/bobinette/notenet"
	"github.com/bobinette/notenet/errors"
	"github.com/bobinette/notenet/services"
	"github.com/bobinette/notenet/users"
)

type UserEndpoint struct {
	service *services.UserService
}

// RegisterUserRoutes defines the user routes: who am I, register and
// list. Registration only checks the token signature, so that a
// freshly minted token can create its own user.
func RegisterUserRoutes(srv Server, service *services.UserService, jwtKey []byte, auth *users.Authenticator) {
	ep := UserEndpoint{service: service}

	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
		kithttp.ServerBefore(kitjwt.ToHTTPContext()),
	}

	authenticationMiddleware := authenticated(jwtKey, auth)
	validMiddleware := valid(jwtKey, auth)

	meHandler := kithttp.NewServer(
		authenticationMiddleware(ep.Me),
		decodeMeRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)
	srv.RegisterHandler("/me", "GET", meHandler)

	registerHandler := kithttp.NewServer(
		validMiddleware(ep.Register),
		decodeRegisterUserRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)
	srv.RegisterHandler("/users", "POST", registerHandler)

	listHandler := kithttp.NewServer(
		authenticationMiddleware(ep.List),
		decodeListUsersRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)
	srv.RegisterHandler("/users", "GET", listHandler)
}

func (ep UserEndpoint) Me(ctx context.Context, _ interface{}) (interface{}, error) {
	user, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	return ep.service.Get(user.ID)
}

func (ep UserEndpoint) Register(ctx context.Context, r interface{}) (interface{}, error) {
	user, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	body, ok := r.(notenet.User)
	if !ok {
		return nil, errInvalidRequest
	}

	// The identity comes from the token, never from the body.
	body.ID = user.ID
	return ep.service.Upsert(body)
}

func (ep UserEndpoint) List(ctx context.Context, _ interface{}) (interface{}, error) {
	if _, err := users.FromContext(ctx); err != nil {
		return nil, err
	}

	list, err := ep.service.List()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"data": list}, nil
}

func decodeMeRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()
	return nil, nil
}

func decodeRegisterUserRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var user notenet.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		return nil, errors.New("invalid body", errors.BadRequest(), errors.WithCause(err))
	}
	return user, nil
}

func decodeListUsersRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()
	return nil, nil
}
