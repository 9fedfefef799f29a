package cayley

import (
	"sort"

	"github.com/cayleygraph/cayley"
	"github.com/cayleygraph/cayley/graph"
	"github.com/cayleygraph/cayley/quad"

	"github.com/bobinette/notenet"
)

var (
	maxTeamIDNode = quad.Raw("maxTeamID")
	maxTeamIDEdge = quad.Raw("value")

	allTeamsNode = quad.Raw("allTeams")
	allTeamsEdge = quad.Raw("team")
)

// TeamRepository stores teams as a graph: users own or are members of
// teams, and carry their name and email as edges.
type TeamRepository struct {
	store *Store
}

func NewTeamRepository(store *Store) *TeamRepository {
	return &TeamRepository{
		store: store,
	}
}

func (r *TeamRepository) Get(id int) (notenet.Team, error) {
	startingPoint := cayley.StartPath(r.store, teamQuad(id))
	startingPoint = startingPoint.Except(startingPoint.HasReverse(deletedEdge, deletedNode))
	p := startingPoint.SaveOptional(nameEdge, "name")

	it := r.store.buildIterator(p)
	defer it.Close()

	team := notenet.Team{
		Members: make([]notenet.TeamMember, 0),
	}
	for it.Next() {
		teamID, err := r.store.entity(it.Result(), "team")
		if err != nil {
			return notenet.Team{}, err
		} else if teamID == 0 {
			continue
		}

		team.ID = teamID

		m := make(map[string]graph.Value)
		it.TagResults(m)
		for tag, token := range m {
			if tag != "name" {
				continue
			}
			name, err := r.store.string(token)
			if err != nil {
				return notenet.Team{}, err
			}
			team.Name = name
		}
	}

	if team.ID == 0 {
		return notenet.Team{}, nil
	}

	owners := startingPoint.In(ownsEdge)
	it = r.store.buildIterator(owners)
	defer it.Close()

	for it.Next() {
		ownerID, err := r.store.user(it.Result())
		if err != nil {
			return notenet.Team{}, err
		} else if ownerID == "" {
			continue
		}

		team.Owner = ownerID
	}

	members := startingPoint.In(isMemberOfEdge).
		SaveOptional(nameEdge, "name").
		SaveOptional(emailEdge, "email")
	it = r.store.buildIterator(members)
	defer it.Close()

	for it.Next() {
		memberID, err := r.store.user(it.Result())
		if err != nil {
			return notenet.Team{}, err
		} else if memberID == "" {
			continue
		}

		member := notenet.TeamMember{
			ID: memberID,
		}

		m := make(map[string]graph.Value)
		it.TagResults(m)

		for tag, token := range m {
			switch tag {
			case "name":
				name, err := r.store.string(token)
				if err != nil {
					return notenet.Team{}, err
				}
				member.Name = name
			case "email":
				email, err := r.store.string(token)
				if err != nil {
					return notenet.Team{}, err
				}
				member.Email = email
			}
		}

		team.Members = append(team.Members, member)
	}

	sort.Slice(team.Members, func(i, j int) bool { return team.Members[i].ID < team.Members[j].ID })

	return team, nil
}

// TeamsOf returns the ids of the teams the user owns or is a member of,
// sorted ascending.
func (r *TeamRepository) TeamsOf(userID string) ([]int, error) {
	p := cayley.StartPath(r.store, userQuad(userID)).Out(ownsEdge, isMemberOfEdge)
	p = p.Except(p.HasReverse(deletedEdge, deletedNode))
	it := r.store.buildIterator(p)
	defer it.Close()

	ids := make([]int, 0)
	for it.Next() {
		teamID, err := r.store.entity(it.Result(), "team")
		if err != nil {
			return nil, err
		} else if teamID == 0 {
			continue
		}

		ids = append(ids, teamID)
	}

	sort.Ints(ids)
	return ids, nil
}

func (r *TeamRepository) GetForUser(userID string) ([]notenet.Team, error) {
	ids, err := r.TeamsOf(userID)
	if err != nil {
		return nil, err
	}

	teams := make([]notenet.Team, len(ids))
	for i, id := range ids {
		team, err := r.Get(id)
		if err != nil {
			return nil, err
		}
		teams[i] = team
	}

	return teams, nil
}

func (r *TeamRepository) Upsert(team *notenet.Team) error {
	if team.ID == 0 {
		id, err := r.store.incrementMaxID(maxTeamIDNode, maxTeamIDEdge)
		if err != nil {
			return err
		}

		team.ID = id
	}

	oldTeam, err := r.Get(team.ID)
	if err != nil {
		return err
	}

	tx := graph.NewTransaction()
	replaceTarget(tx, teamQuad(team.ID), nameEdge, quad.Raw(oldTeam.Name), quad.Raw(team.Name))

	// Owner
	if oldTeam.Owner != "" && oldTeam.Owner != team.Owner {
		removeQuad(tx, userQuad(oldTeam.Owner), ownsEdge, teamQuad(team.ID))
	}
	if team.Owner != "" {
		addQuad(tx, userQuad(team.Owner), ownsEdge, teamQuad(team.ID))
	}

	// Remove old members
	for _, m := range oldTeam.Members {
		removeQuad(tx, userQuad(m.ID), isMemberOfEdge, teamQuad(team.ID))
	}

	// Add new members, refreshing their name and email
	oldMembers := make(map[string]notenet.TeamMember, len(oldTeam.Members))
	for _, m := range oldTeam.Members {
		oldMembers[m.ID] = m
	}
	for _, m := range team.Members {
		addQuad(tx, userQuad(m.ID), isMemberOfEdge, teamQuad(team.ID))

		old := oldMembers[m.ID]
		if m.Name != old.Name {
			replaceTarget(tx, userQuad(m.ID), nameEdge, quad.Raw(old.Name), quad.Raw(m.Name))
		}
		if m.Email != old.Email {
			replaceTarget(tx, userQuad(m.ID), emailEdge, quad.Raw(old.Email), quad.Raw(m.Email))
		}
	}

	// Add team to all teams
	addQuad(tx, allTeamsNode, allTeamsEdge, teamQuad(team.ID))

	return r.store.ApplyDeltas(tx.Deltas, graph.IgnoreOpts{IgnoreMissing: true, IgnoreDup: true})
}

func (r *TeamRepository) Delete(id int) error {
	tx := graph.NewTransaction()
	addQuad(tx, deletedNode, deletedEdge, teamQuad(id))
	return r.store.ApplyDeltas(tx.Deltas, graph.IgnoreOpts{IgnoreDup: true})
}
