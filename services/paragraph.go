package services

import (
	"fmt"
	"strings"

	"github.com/russross/blackfriday"

	"github.com/bobinette/notenet"
	"github.com/bobinette/notenet/errors"
	"github.com/bobinette/notenet/permission"
)

type ParagraphService struct {
	repository  notenet.ParagraphRepository
	permissions *permission.Service
}

func NewParagraphService(repo notenet.ParagraphRepository, permissions *permission.Service) *ParagraphService {
	return &ParagraphService{
		repository:  repo,
		permissions: permissions,
	}
}

// Get requires READER on the paragraph's note.
func (s *ParagraphService) Get(callerID string, id int) (notenet.Paragraph, error) {
	paragraph, err := s.repository.Get(id)
	if err != nil {
		return notenet.Paragraph{}, err
	} else if paragraph == nil {
		return notenet.Paragraph{}, errParagraphNotFound(id)
	}

	if err := s.permissions.RequirePermission(callerID, paragraph.NoteID, permission.Reader); err != nil {
		return notenet.Paragraph{}, err
	}

	return *paragraph, nil
}

// ListByNote requires READER on the note.
func (s *ParagraphService) ListByNote(callerID string, noteID int) ([]*notenet.Paragraph, error) {
	if err := s.permissions.RequirePermission(callerID, noteID, permission.Reader); err != nil {
		return nil, err
	}

	return s.repository.ListByNote(noteID)
}

// Create requires WRITER on the note.
func (s *ParagraphService) Create(callerID string, paragraph notenet.Paragraph) (notenet.Paragraph, error) {
	if paragraph.ID != 0 {
		return notenet.Paragraph{}, errors.New("field id should be empty", errors.BadRequest())
	}
	if paragraph.NoteID <= 0 {
		return notenet.Paragraph{}, errors.New("field noteId is required", errors.BadRequest())
	}
	if !paragraph.Type.Valid() {
		return notenet.Paragraph{}, errors.New(fmt.Sprintf("invalid paragraph type %q", paragraph.Type), errors.BadRequest())
	}

	if err := s.permissions.RequirePermission(callerID, paragraph.NoteID, permission.Writer); err != nil {
		return notenet.Paragraph{}, err
	}

	if err := s.repository.Upsert(&paragraph); err != nil {
		return notenet.Paragraph{}, err
	}

	return paragraph, nil
}

// Update requires WRITER on the note. A paragraph cannot move to
// another note.
func (s *ParagraphService) Update(callerID string, paragraph notenet.Paragraph) (notenet.Paragraph, error) {
	if paragraph.ID <= 0 {
		return notenet.Paragraph{}, errors.New("field id is required", errors.BadRequest())
	}
	if !paragraph.Type.Valid() {
		return notenet.Paragraph{}, errors.New(fmt.Sprintf("invalid paragraph type %q", paragraph.Type), errors.BadRequest())
	}

	existing, err := s.repository.Get(paragraph.ID)
	if err != nil {
		return notenet.Paragraph{}, err
	} else if existing == nil {
		return notenet.Paragraph{}, errParagraphNotFound(paragraph.ID)
	}

	if paragraph.NoteID != 0 && paragraph.NoteID != existing.NoteID {
		return notenet.Paragraph{}, errors.New("a paragraph cannot change note", errors.BadRequest())
	}
	paragraph.NoteID = existing.NoteID

	if err := s.permissions.RequirePermission(callerID, existing.NoteID, permission.Writer); err != nil {
		return notenet.Paragraph{}, err
	}

	paragraph.CreatedAt = existing.CreatedAt
	if err := s.repository.Upsert(&paragraph); err != nil {
		return notenet.Paragraph{}, err
	}

	return paragraph, nil
}

// Delete requires WRITER on the note.
func (s *ParagraphService) Delete(callerID string, id int) error {
	existing, err := s.repository.Get(id)
	if err != nil {
		return err
	} else if existing == nil {
		return errParagraphNotFound(id)
	}

	if err := s.permissions.RequirePermission(callerID, existing.NoteID, permission.Writer); err != nil {
		return err
	}

	return s.repository.Delete(id)
}

// Render returns the note's text paragraphs as HTML. READER is enough:
// rendering is a read.
func (s *ParagraphService) Render(callerID string, noteID int) (string, error) {
	paragraphs, err := s.ListByNote(callerID, noteID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, p := range paragraphs {
		if p.Type != notenet.ParagraphText {
			continue
		}
		b.Write(blackfriday.MarkdownCommon([]byte(p.Text)))
	}
	return b.String(), nil
}
