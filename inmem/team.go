package inmem

import (
	"sort"
	"sync"

	"github.com/bobinette/notenet"
)

type TeamRepository struct {
	mu    sync.Locker
	teams []notenet.Team
	maxID int
}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{
		mu:    &sync.Mutex{},
		teams: make([]notenet.Team, 0),
	}
}

func (r *TeamRepository) Get(id int) (notenet.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, team := range r.teams {
		if team.ID == id {
			return team, nil
		}
	}
	return notenet.Team{}, nil
}

func (r *TeamRepository) GetForUser(userID string) ([]notenet.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	teams := make([]notenet.Team, 0)
	for _, team := range r.teams {
		if team.HasMember(userID) {
			teams = append(teams, team)
		}
	}
	return teams, nil
}

// TeamsOf implements the membership read contract of the permission
// service: owned and enrolled teams unioned, no duplicates.
func (r *TeamRepository) TeamsOf(userID string) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int, 0)
	for _, team := range r.teams {
		if team.HasMember(userID) {
			ids = append(ids, team.ID)
		}
	}
	sort.Ints(ids)
	return ids, nil
}

func (r *TeamRepository) Upsert(team *notenet.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if team.ID == 0 {
		r.maxID++
		team.ID = r.maxID
	} else if team.ID > r.maxID {
		r.maxID = team.ID
	}

	for i, t := range r.teams {
		if t.ID == team.ID {
			r.teams[i] = *team
			return nil
		}
	}
	r.teams = append(r.teams, *team)
	return nil
}

func (r *TeamRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, team := range r.teams {
		if team.ID == id {
			r.teams = append(r.teams[:i], r.teams[i+1:]...)
			return nil
		}
	}
	return nil
}
