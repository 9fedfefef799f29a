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

type NoteEndpoint struct {
	service *services.NoteService
}

// RegisterNoteRoutes defines the note routes: create, get, list or
// search, update and delete.
func RegisterNoteRoutes(srv Server, service *services.NoteService, jwtKey []byte, auth *users.Authenticator) {
	ep := NoteEndpoint{service: service}

	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
		kithttp.ServerBefore(kitjwt.ToHTTPContext()),
	}

	authenticationMiddleware := authenticated(jwtKey, auth)

	createHandler := kithttp.NewServer(
		authenticationMiddleware(ep.Create),
		decodeCreateNoteRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)
	srv.RegisterHandler("/notes", "POST", createHandler)

	listHandler := kithttp.NewServer(
		authenticationMiddleware(ep.List),
		decodeListNotesRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)
	srv.RegisterHandler("/notes", "GET", listHandler)

	getHandler := kithttp.NewServer(
		authenticationMiddleware(ep.Get),
		decodeGetNoteRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)
	srv.RegisterHandler("/notes/:id", "GET", getHandler)

	updateHandler := kithttp.NewServer(
		authenticationMiddleware(ep.Update),
		decodeUpdateNoteRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)
	srv.RegisterHandler("/notes/:id", "PUT", updateHandler)

	deleteHandler := kithttp.NewServer(
		authenticationMiddleware(ep.Delete),
		decodeDeleteNoteRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)
	srv.RegisterHandler("/notes/:id", "DELETE", deleteHandler)
}

func (ep NoteEndpoint) Create(ctx context.Context, r interface{}) (interface{}, error) {
	user, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	note, ok := r.(notenet.Note)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.Create(user.ID, note)
}

func (ep NoteEndpoint) Get(ctx context.Context, r interface{}) (interface{}, error) {
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

// List returns the caller's notes, or a search over the notes the
// caller can read when a query is present.
func (ep NoteEndpoint) List(ctx context.Context, r interface{}) (interface{}, error) {
	user, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	search, ok := r.(notenet.NoteSearch)
	if !ok {
		return nil, errInvalidRequest
	}

	if search.Q == "" {
		notes, err := ep.service.ListMine(user.ID)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"data": notes}, nil
	}

	notes, err := ep.service.Search(user.ID, search)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"data": notes}, nil
}

func (ep NoteEndpoint) Update(ctx context.Context, r interface{}) (interface{}, error) {
	user, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	note, ok := r.(notenet.Note)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.Update(user.ID, note)
}

func (ep NoteEndpoint) Delete(ctx context.Context, r interface{}) (interface{}, error) {
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

func decodeCreateNoteRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var note notenet.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		return nil, errors.New("invalid body", errors.BadRequest(), errors.WithCause(err))
	}
	return note, nil
}

func decodeGetNoteRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()
	return paramInt(ctx, "id")
}

func decodeListNotesRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	values := map[string][]string(r.URL.Query())

	limit, err := queryUInt64(values, "limit")
	if err != nil {
		return nil, err
	}
	offset, err := queryUInt64(values, "offset")
	if err != nil {
		return nil, err
	}

	return notenet.NoteSearch{
		Q:      r.URL.Query().Get("q"),
		Limit:  limit,
		Offset: offset,
	}, nil
}

func decodeUpdateNoteRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	id, err := paramInt(ctx, "id")
	if err != nil {
		return nil, err
	}

	var note notenet.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		return nil, errors.New("invalid body", errors.BadRequest(), errors.WithCause(err))
	}
	note.ID = id
	return note, nil
}

func decodeDeleteNoteRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()
	return paramInt(ctx, "id")
}
