package web

import (
	"context"
	"encoding/json"
	"net/http"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/bobinette/notenet/errors"
	"github.com/bobinette/notenet/permission"
	"github.com/bobinette/notenet/services"
	"github.com/bobinette/notenet/users"
)

type GrantEndpoint struct {
	service *services.GrantService
}

// RegisterGrantRoutes defines the sharing routes of a note. They are
// all restricted to the note's owner by the service.
func RegisterGrantRoutes(srv Server, service *services.GrantService, jwtKey []byte, auth *users.Authenticator) {
	ep := GrantEndpoint{service: service}

	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
		kithttp.ServerBefore(kitjwt.ToHTTPContext()),
	}

	authenticationMiddleware := authenticated(jwtKey, auth)

	listHandler := kithttp.NewServer(
		authenticationMiddleware(ep.ForNote),
		decodeNoteGrantsRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)
	srv.RegisterHandler("/notes/:id/grants", "GET", listHandler)

	grantUserHandler := kithttp.NewServer(
		authenticationMiddleware(ep.GrantUser),
		decodeGrantUserRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)
	srv.RegisterHandler("/notes/:id/grants/users", "POST", grantUserHandler)

	revokeUserHandler := kithttp.NewServer(
		authenticationMiddleware(ep.RevokeUser),
		decodeRevokeUserRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)
	srv.RegisterHandler("/notes/:id/grants/users/:userId", "DELETE", revokeUserHandler)

	grantTeamHandler := kithttp.NewServer(
		authenticationMiddleware(ep.GrantTeam),
		decodeGrantTeamRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)
	srv.RegisterHandler("/notes/:id/grants/teams", "POST", grantTeamHandler)

	revokeTeamHandler := kithttp.NewServer(
		authenticationMiddleware(ep.RevokeTeam),
		decodeRevokeTeamRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)
	srv.RegisterHandler("/notes/:id/grants/teams/:teamId", "DELETE", revokeTeamHandler)
}

func (ep GrantEndpoint) ForNote(ctx context.Context, r interface{}) (interface{}, error) {
	user, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	noteID, ok := r.(int)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.ForNote(user.ID, noteID)
}

func (ep GrantEndpoint) GrantUser(ctx context.Context, r interface{}) (interface{}, error) {
	user, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	grant, ok := r.(permission.Grant)
	if !ok {
		return nil, errInvalidRequest
	}

	if err := ep.service.GrantUser(user.ID, grant); err != nil {
		return nil, err
	}
	return map[string]interface{}{"data": "ok"}, nil
}

type revokeUserRequest struct {
	NoteID int
	UserID string
}

func (ep GrantEndpoint) RevokeUser(ctx context.Context, r interface{}) (interface{}, error) {
	user, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	req, ok := r.(revokeUserRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	if err := ep.service.RevokeUser(user.ID, req.UserID, req.NoteID); err != nil {
		return nil, err
	}
	return map[string]interface{}{"data": "ok"}, nil
}

func (ep GrantEndpoint) GrantTeam(ctx context.Context, r interface{}) (interface{}, error) {
	user, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	grant, ok := r.(permission.TeamGrant)
	if !ok {
		return nil, errInvalidRequest
	}

	if err := ep.service.GrantTeam(user.ID, grant); err != nil {
		return nil, err
	}
	return map[string]interface{}{"data": "ok"}, nil
}

type revokeTeamRequest struct {
	NoteID int
	TeamID int
}

func (ep GrantEndpoint) RevokeTeam(ctx context.Context, r interface{}) (interface{}, error) {
	user, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	req, ok := r.(revokeTeamRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	if err := ep.service.RevokeTeam(user.ID, req.TeamID, req.NoteID); err != nil {
		return nil, err
	}
	return map[string]interface{}{"data": "ok"}, nil
}

func decodeNoteGrantsRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()
	return paramInt(ctx, "id")
}

func decodeGrantUserRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	noteID, err := paramInt(ctx, "id")
	if err != nil {
		return nil, err
	}

	var body struct {
		UserID string           `json:"userId"`
		Level  permission.Level `json:"level"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, errors.New("invalid body", errors.BadRequest(), errors.WithCause(err))
	}

	return permission.Grant{
		UserID: body.UserID,
		NoteID: noteID,
		Level:  body.Level,
	}, nil
}

func decodeRevokeUserRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	noteID, err := paramInt(ctx, "id")
	if err != nil {
		return nil, err
	}

	userID, err := paramString(ctx, "userId")
	if err != nil {
		return nil, err
	}

	return revokeUserRequest{
		NoteID: noteID,
		UserID: userID,
	}, nil
}

func decodeGrantTeamRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	noteID, err := paramInt(ctx, "id")
	if err != nil {
		return nil, err
	}

	var body struct {
		TeamID int              `json:"teamId"`
		Level  permission.Level `json:"level"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, errors.New("invalid body", errors.BadRequest(), errors.WithCause(err))
	}

	return permission.TeamGrant{
		TeamID: body.TeamID,
		NoteID: noteID,
		Level:  body.Level,
	}, nil
}

func decodeRevokeTeamRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	noteID, err := paramInt(ctx, "id")
	if err != nil {
		return nil, err
	}

	teamID, err := paramInt(ctx, "teamId")
	if err != nil {
		return nil, err
	}

	return revokeTeamRequest{
		NoteID: noteID,
		TeamID: teamID,
	}, nil
}
