package inmem

import (
	"sync"

	"github.com/bobinette/notenet/permission"
)

type TeamGrantRepository struct {
	mu     sync.Locker
	grants []permission.TeamGrant
}

func NewTeamGrantRepository() *TeamGrantRepository {
	return &TeamGrantRepository{
		mu:     &sync.Mutex{},
		grants: make([]permission.TeamGrant, 0),
	}
}

func (r *TeamGrantRepository) ForNote(noteID int) ([]permission.TeamGrant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	grants := make([]permission.TeamGrant, 0)
	for _, g := range r.grants {
		if g.NoteID == noteID {
			grants = append(grants, g)
		}
	}
	return grants, nil
}

func (r *TeamGrantRepository) Grant(g permission.TeamGrant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.grants = append(r.grants, g)
	return nil
}

func (r *TeamGrantRepository) Revoke(teamID, noteID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.grants[:0]
	for _, g := range r.grants {
		if g.TeamID == teamID && g.NoteID == noteID {
			continue
		}
		kept = append(kept, g)
	}
	r.grants = kept
	return nil
}

func (r *TeamGrantRepository) DeleteByNote(noteID int) error {
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

func (r *TeamGrantRepository) DeleteByTeam(teamID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.grants[:0]
	for _, g := range r.grants {
		if g.TeamID == teamID {
			continue
		}
		kept = append(kept, g)
	}
	r.grants = kept
	return nil
}
