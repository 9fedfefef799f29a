// Package inmem provides in-memory repositories. They back the tests
// and the dev environment; nothing here survives a restart.
package inmem

import (
	"fmt"
	"sync"

	"github.com/bobinette/notenet"
	"github.com/bobinette/notenet/errors"
)

type NoteRepository struct {
	mu    sync.Locker
	notes []notenet.Note
	maxID int
}

func NewNoteRepository() *NoteRepository {
	return &NoteRepository{
		mu:    &sync.Mutex{},
		notes: make([]notenet.Note, 0),
	}
}

func (r *NoteRepository) Get(id int) (*notenet.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, note := range r.notes {
		if note.ID == id {
			n := note
			return &n, nil
		}
	}
	return nil, nil
}

func (r *NoteRepository) ListByOwner(owner string) ([]*notenet.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	notes := make([]*notenet.Note, 0)
	for _, note := range r.notes {
		if note.Owner == owner {
			n := note
			notes = append(notes, &n)
		}
	}
	return notes, nil
}

func (r *NoteRepository) Upsert(note *notenet.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if note.ID == 0 {
		r.maxID++
		note.ID = r.maxID
	} else if note.ID > r.maxID {
		r.maxID = note.ID
	}

	for i, n := range r.notes {
		if n.ID == note.ID {
			r.notes[i] = *note
			return nil
		}
	}
	r.notes = append(r.notes, *note)
	return nil
}

func (r *NoteRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, note := range r.notes {
		if note.ID == id {
			r.notes = append(r.notes[:i], r.notes[i+1:]...)
			return nil
		}
	}
	return nil
}

// Owner implements the ownership read contract of the permission
// service.
func (r *NoteRepository) Owner(id int) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, note := range r.notes {
		if note.ID == id {
			return note.Owner, nil
		}
	}
	return "", errors.New(fmt.Sprintf("No note for id %d", id), errors.NotFound())
}
