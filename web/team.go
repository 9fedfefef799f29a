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

type TeamEndpoint struct {
	service *services.TeamService
}

// RegisterTeamRoutes defines the team routes: create, get, list mine,
// invite, kick and delete.
func RegisterTeamRoutes(srv Server, service *services.TeamService, jwtKey []byte, auth *users.Authenticator) {
	ep := TeamEndpoint{service: service}

	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
		kithttp.ServerBefore(kitjwt.ToHTTPContext()),
	}

	authenticationMiddleware := authenticated(jwtKey, auth)

	myTeamsHandler := kithttp.NewServer(
		authenticationMiddleware(ep.My),
		decodeMyTeamsRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)
	srv.RegisterHandler("/teams", "GET", myTeamsHandler)

	createHandler := kithttp.NewServer(
		authenticationMiddleware(ep.Create),
		decodeCreateTeamRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)
	srv.RegisterHandler("/teams", "POST", createHandler)

	getHandler := kithttp.NewServer(
		authenticationMiddleware(ep.Get),
		decodeGetTeamRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)
	srv.RegisterHandler("/teams/:id", "GET", getHandler)

	deleteHandler := kithttp.NewServer(
		authenticationMiddleware(ep.Delete),
		decodeDeleteTeamRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)
	srv.RegisterHandler("/teams/:id", "DELETE", deleteHandler)

	inviteHandler := kithttp.NewServer(
		authenticationMiddleware(ep.Invite),
		decodeInviteTeamMemberRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)
	srv.RegisterHandler("/teams/:id/invite", "POST", inviteHandler)

	kickHandler := kithttp.NewServer(
		authenticationMiddleware(ep.Kick),
		decodeKickTeamMemberRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)
	srv.RegisterHandler("/teams/:id/kick", "POST", kickHandler)
}

func (ep TeamEndpoint) My(ctx context.Context, _ interface{}) (interface{}, error) {
	user, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	teams, err := ep.service.My(user.ID)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"data": teams}, nil
}

func (ep TeamEndpoint) Create(ctx context.Context, r interface{}) (interface{}, error) {
	user, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	team, ok := r.(notenet.Team)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.Create(user.ID, team)
}

func (ep TeamEndpoint) Get(ctx context.Context, r interface{}) (interface{}, error) {
	user, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	id, ok := r.(int)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.Get(user.ID, id)
}

func (ep TeamEndpoint) Delete(ctx context.Context, r interface{}) (interface{}, error) {
	user, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	id, ok := r.(int)
	if !ok {
		return nil, errInvalidRequest
	}

	if err := ep.service.Delete(user.ID, id); err != nil {
		return nil, err
	}
	return map[string]interface{}{"data": "ok"}, nil
}

type inviteTeamMemberRequest struct {
	TeamID int
	Email  string `json:"email"`
}

func (ep TeamEndpoint) Invite(ctx context.Context, r interface{}) (interface{}, error) {
	user, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	req, ok := r.(inviteTeamMemberRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.Invite(user.ID, req.TeamID, req.Email)
}

type kickTeamMemberRequest struct {
	TeamID int
	UserID string `json:"userId"`
}

func (ep TeamEndpoint) Kick(ctx context.Context, r interface{}) (interface{}, error) {
	user, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	req, ok := r.(kickTeamMemberRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.Kick(user.ID, req.TeamID, req.UserID)
}

func decodeMyTeamsRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()
	return nil, nil
}

func decodeCreateTeamRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var team notenet.Team
	if err := json.NewDecoder(r.Body).Decode(&team); err != nil {
		return nil, errors.New("invalid body", errors.BadRequest(), errors.WithCause(err))
	}
	return team, nil
}

func decodeGetTeamRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()
	return paramInt(ctx, "id")
}

func decodeDeleteTeamRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()
	return paramInt(ctx, "id")
}

func decodeInviteTeamMemberRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	teamID, err := paramInt(ctx, "id")
	if err != nil {
		return nil, err
	}

	req := inviteTeamMemberRequest{
		TeamID: teamID,
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.New("invalid body", errors.BadRequest(), errors.WithCause(err))
	}
	return req, nil
}

func decodeKickTeamMemberRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	teamID, err := paramInt(ctx, "id")
	if err != nil {
		return nil, err
	}

	req := kickTeamMemberRequest{
		TeamID: teamID,
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.New("invalid body", errors.BadRequest(), errors.WithCause(err))
	}
	return req, nil
}
