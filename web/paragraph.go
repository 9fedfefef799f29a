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

type ParagraphEndpoint struct {
	service *services.ParagraphService
}

// RegisterParagraphRoutes defines the paragraph routes, nested under
// the note they belong to, plus the markdown rendering of a full note.
func RegisterParagraphRoutes(srv Server, service *services.ParagraphService, jwtKey []byte, auth *users.Authenticator) {
	ep := ParagraphEndpoint{service: service}

	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
		kithttp.ServerBefore(kitjwt.ToHTTPContext()),
	}

	authenticationMiddleware := authenticated(jwtKey, auth)

	listHandler := kithttp.NewServer(
		authenticationMiddleware(ep.ListByNote),
		decodeListParagraphsRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)
	srv.RegisterHandler("/notes/:id/paragraphs", "GET", listHandler)

	createHandler := kithttp.NewServer(
		authenticationMiddleware(ep.Create),
		decodeCreateParagraphRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)
	srv.RegisterHandler("/notes/:id/paragraphs", "POST", createHandler)

	renderHandler := kithttp.NewServer(
		authenticationMiddleware(ep.Render),
		decodeRenderNoteRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)
	srv.RegisterHandler("/notes/:id/render", "GET", renderHandler)

	getHandler := kithttp.NewServer(
		authenticationMiddleware(ep.Get),
		decodeGetParagraphRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)
	srv.RegisterHandler("/paragraphs/:id", "GET", getHandler)

	updateHandler := kithttp.NewServer(
		authenticationMiddleware(ep.Update),
		decodeUpdateParagraphRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)
	srv.RegisterHandler("/paragraphs/:id", "PUT", updateHandler)

	deleteHandler := kithttp.NewServer(
		authenticationMiddleware(ep.Delete),
		decodeDeleteParagraphRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)
	srv.RegisterHandler("/paragraphs/:id", "DELETE", deleteHandler)
}

func (ep ParagraphEndpoint) ListByNote(ctx context.Context, r interface{}) (interface{}, error) {
	user, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	noteID, ok := r.(int)
	if !ok {
		return nil, errInvalidRequest
	}

	paragraphs, err := ep.service.ListByNote(user.ID, noteID)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"data": paragraphs}, nil
}

func (ep ParagraphEndpoint) Create(ctx context.Context, r interface{}) (interface{}, error) {
	user, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	paragraph, ok := r.(notenet.Paragraph)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.Create(user.ID, paragraph)
}

func (ep ParagraphEndpoint) Get(ctx context.Context, r interface{}) (interface{}, error) {
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

func (ep ParagraphEndpoint) Update(ctx context.Context, r interface{}) (interface{}, error) {
	user, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	paragraph, ok := r.(notenet.Paragraph)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.Update(user.ID, paragraph)
}

func (ep ParagraphEndpoint) Delete(ctx context.Context, r interface{}) (interface{}, error) {
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

func (ep ParagraphEndpoint) Render(ctx context.Context, r interface{}) (interface{}, error) {
	user, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	noteID, ok := r.(int)
	if !ok {
		return nil, errInvalidRequest
	}

	html, err := ep.service.Render(user.ID, noteID)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"data": html}, nil
}

func decodeListParagraphsRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()
	return paramInt(ctx, "id")
}

func decodeCreateParagraphRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	noteID, err := paramInt(ctx, "id")
	if err != nil {
		return nil, err
	}

	var paragraph notenet.Paragraph
	if err := json.NewDecoder(r.Body).Decode(&paragraph); err != nil {
		return nil, errors.New("invalid body", errors.BadRequest(), errors.WithCause(err))
	}
	paragraph.NoteID = noteID
	return paragraph, nil
}

func decodeGetParagraphRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()
	return paramInt(ctx, "id")
}

func decodeUpdateParagraphRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	id, err := paramInt(ctx, "id")
	if err != nil {
		return nil, err
	}

	var paragraph notenet.Paragraph
	if err := json.NewDecoder(r.Body).Decode(&paragraph); err != nil {
		return nil, errors.New("invalid body", errors.BadRequest(), errors.WithCause(err))
	}
	paragraph.ID = id
	return paragraph, nil
}

func decodeDeleteParagraphRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()
	return paramInt(ctx, "id")
}

func decodeRenderNoteRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()
	return paramInt(ctx, "id")
}
