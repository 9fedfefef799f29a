package jwt

import (
	"github.com/dgrijalva/jwt-go"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	"github.com/go-kit/kit/endpoint"
)

// Middleware parses the bearer token found in the context by the
// transport layer and stores its claims back in the context.
func Middleware(key []byte) endpoint.Middleware {
	claims := Claims{}
	return kitjwt.NewParser(func(token *jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.SigningMethodHS256, &claims)
}
