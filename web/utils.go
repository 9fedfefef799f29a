package web

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-kit/kit/endpoint"

	"github.com/bobinette/notenet/errors"
	"github.com/bobinette/notenet/jwt"
	"github.com/bobinette/notenet/users"
)

// Variables and functions for specific errors
var (
	errInvalidRequest = errors.New("invalid request")
)

// Server defines the interface to register the http handlers.
type Server interface {
	RegisterHandler(path, method string, f http.Handler)
}

// authenticated chains the jwt parsing with the user loading, so that
// every endpoint behind it sees a full identity in the context.
func authenticated(key []byte, auth *users.Authenticator) endpoint.Middleware {
	jwtMiddleware := jwt.Middleware(key)
	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return jwtMiddleware(auth.Authenticated(next))
	}
}

// valid only checks the token signature, without loading the user.
func valid(key []byte, auth *users.Authenticator) endpoint.Middleware {
	jwtMiddleware := jwt.Middleware(key)
	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return jwtMiddleware(auth.Valid(next))
	}
}

// paramInt reads an int url parameter injected in the context by the router.
func paramInt(ctx context.Context, key string) (int, error) {
	params, ok := ctx.Value("params").(map[string]string)
	if !ok {
		return 0, errors.New("no parameters in context", errors.BadRequest())
	}

	v, err := strconv.Atoi(params[key])
	if err != nil {
		return 0, errors.New(key+" should be an int", errors.BadRequest(), errors.WithCause(err))
	}
	return v, nil
}

// paramString reads a string url parameter injected in the context by the router.
func paramString(ctx context.Context, key string) (string, error) {
	params, ok := ctx.Value("params").(map[string]string)
	if !ok {
		return "", errors.New("no parameters in context", errors.BadRequest())
	}
	return params[key], nil
}

func queryUInt64(values map[string][]string, key string) (uint64, error) {
	vs := values[key]
	if len(vs) == 0 || vs[0] == "" {
		return 0, nil
	}

	v, err := strconv.ParseUint(vs[0], 10, 64)
	if err != nil {
		return 0, errors.New(key+" should be an unsigned int", errors.BadRequest(), errors.WithCause(err))
	}
	return v, nil
}

// encodeError writes an error as an HTTP response. It handles the status code
// contained in the error.
func encodeError(_ context.Context, err error, w http.ResponseWriter) {
	statusCode := http.StatusInternalServerError
	if err, ok := err.(errors.Error); ok {
		statusCode = err.Code()
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
	})
}
