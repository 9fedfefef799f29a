package services

import (
	"github.com/bobinette/notenet"
	"github.com/bobinette/notenet/errors"
	"github.com/bobinette/notenet/permission"
)

type NoteService struct {
	notes      notenet.NoteRepository
	paragraphs notenet.ParagraphRepository
	grants     GrantStore
	teamGrants TeamGrantStore
	index      notenet.NoteIndex

	permissions *permission.Service
	users       *UserService
}

func NewNoteService(
	notes notenet.NoteRepository,
	paragraphs notenet.ParagraphRepository,
	grants GrantStore,
	teamGrants TeamGrantStore,
	index notenet.NoteIndex,
	permissions *permission.Service,
	users *UserService,
) *NoteService {
	return &NoteService{
		notes:       notes,
		paragraphs:  paragraphs,
		grants:      grants,
		teamGrants:  teamGrants,
		index:       index,
		permissions: permissions,
		users:       users,
	}
}

// Create inserts a note owned by the caller. No permission is needed:
// anyone may create, and creating makes you the owner.
func (s *NoteService) Create(callerID string, note notenet.Note) (notenet.Note, error) {
	if note.ID != 0 {
		return notenet.Note{}, errors.New("field id should be empty", errors.BadRequest())
	}
	if note.Title == "" {
		return notenet.Note{}, errors.New("title is required", errors.BadRequest())
	}

	note.Owner = callerID
	if err := s.notes.Upsert(&note); err != nil {
		return notenet.Note{}, err
	}

	if err := s.index.Index(&note); err != nil {
		return notenet.Note{}, err
	}

	return note, nil
}

// Get requires READER on the note.
func (s *NoteService) Get(callerID string, id int) (notenet.Note, error) {
	if err := s.permissions.RequirePermission(callerID, id, permission.Reader); err != nil {
		return notenet.Note{}, err
	}

	note, err := s.notes.Get(id)
	if err != nil {
		return notenet.Note{}, err
	} else if note == nil {
		return notenet.Note{}, errNoteNotFound(id)
	}

	return *note, nil
}

// ListMine returns the notes the caller owns.
func (s *NoteService) ListMine(callerID string) ([]*notenet.Note, error) {
	return s.notes.ListByOwner(callerID)
}

// Search runs the query through the index and keeps only the notes the
// caller can read. A denial on one note skips it; a store failure
// aborts the whole search.
func (s *NoteService) Search(callerID string, search notenet.NoteSearch) ([]*notenet.Note, error) {
	results, err := s.index.Search(search)
	if err != nil {
		return nil, err
	}

	notes := make([]*notenet.Note, 0, len(results.IDs))
	for _, id := range results.IDs {
		err := s.permissions.RequirePermission(callerID, id, permission.Reader)
		if errors.IsForbidden(err) || errors.IsNotFound(err) {
			continue
		} else if err != nil {
			return nil, err
		}

		note, err := s.notes.Get(id)
		if err != nil {
			return nil, err
		} else if note == nil {
			continue
		}
		notes = append(notes, note)
	}

	return notes, nil
}

// Update requires EXECUTOR on the note. Changing the owner field
// additionally requires ownership, whatever grant the caller holds:
// EXECUTOR authorizes content edits, never an ownership transfer. The
// new owner must exist.
func (s *NoteService) Update(callerID string, note notenet.Note) (notenet.Note, error) {
	if note.ID <= 0 {
		return notenet.Note{}, errors.New("field id is required", errors.BadRequest())
	}
	if note.Title == "" {
		return notenet.Note{}, errors.New("title is required", errors.BadRequest())
	}

	if err := s.permissions.RequirePermission(callerID, note.ID, permission.Executor); err != nil {
		return notenet.Note{}, err
	}

	existing, err := s.notes.Get(note.ID)
	if err != nil {
		return notenet.Note{}, err
	} else if existing == nil {
		return notenet.Note{}, errNoteNotFound(note.ID)
	}

	if note.Owner == "" {
		note.Owner = existing.Owner
	}
	if note.Owner != existing.Owner {
		if err := s.permissions.RequireOwnership(callerID, note.ID); err != nil {
			return notenet.Note{}, err
		}
		if err := s.users.RequireExistence(note.Owner); err != nil {
			return notenet.Note{}, err
		}
	}

	note.CreatedAt = existing.CreatedAt
	if err := s.notes.Upsert(&note); err != nil {
		return notenet.Note{}, err
	}

	if err := s.index.Index(&note); err != nil {
		return notenet.Note{}, err
	}

	return note, nil
}

// Delete requires ownership. It removes the note's paragraphs and
// every grant referencing it, so a later note reusing the id starts
// clean.
func (s *NoteService) Delete(callerID string, id int) error {
	if err := s.permissions.RequireOwnership(callerID, id); err != nil {
		return err
	}

	if err := s.paragraphs.DeleteByNote(id); err != nil {
		return err
	}
	if err := s.grants.DeleteByNote(id); err != nil {
		return err
	}
	if err := s.teamGrants.DeleteByNote(id); err != nil {
		return err
	}
	if err := s.index.Delete(id); err != nil {
		return err
	}

	return s.notes.Delete(id)
}
