package inmem

import (
	"sync"

	"github.com/bobinette/notenet/permission"
)

// GrantRepository stores direct user grants. Duplicates for the same
// (user, note) pair are kept as-is: readers take the maximum.
type GrantRepository struct {
	mu     sync.Locker
	grants []permission.Grant
}

func NewGrantRepository() *GrantRepository {
	return &GrantRepository{
		mu:     &sync.Mutex{},
		grants: make([]permission.Grant, 0),
	}
}

func (r *GrantRepository) MaxLevel(userID string, noteID int) (permission.Level, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var max permission.Level
	found := false
	for _, g := range r.grants {
		if g.UserID != userID || g.NoteID != noteID {
			continue
		}
		if !found || g.Level > max {
			max = g.Level
		}
		found = true
	}
	return max, found, nil
}

func (r *GrantRepository) ForNote(noteID int) ([]permission.Grant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	grants := make([]permission.Grant, 0)
	for _, g := range r.grants {
		if g.NoteID == noteID {
			grants = append(grants, g)
		}
	}
	return grants, nil
}

func (r *GrantRepository) Grant(g permission.Grant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.grants = append(r.grants, g)
	return nil
}

// Revoke removes every grant of the user on the note, duplicates
// included.
func (r *GrantRepository) Revoke(userID string, noteID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.grants[:0]
	for _, g := range r.grants {
		if g.UserID == userID && g.NoteID == noteID {
			continue
		}
		kept = append(kept, g)
	}
	r.grants = kept
	return nil
}

func (r *GrantRepository) DeleteByNote(noteID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.grants[:0]
	for _, g := range r.grants {
		if g.NoteID == noteID {
			continue
		}
		kept = append(kept, g)
	}
	r.grants = kept
	return nil
}
