package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobinette/notenet"
	"github.com/bobinette/notenet/errors"
	"github.com/bobinette/notenet/permission"
)

func (e *env) createTeam(t *testing.T, owner, name string) notenet.Team {
	team, err := e.teams.Create(owner, notenet.Team{Name: name})
	require.NoError(t, err)
	require.NotEqual(t, 0, team.ID)
	return team
}

func TestTeamService_Create(t *testing.T) {
	e := newEnv(t)

	// Members in the payload are dropped, the team starts with its
	// owner only.
	team, err := e.teams.Create("alice", notenet.Team{
		Name:    "Pizza",
		Members: []notenet.TeamMember{{ID: "bob"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", team.Owner)
	assert.Len(t, team.Members, 0)

	_, err = e.teams.Create("alice", notenet.Team{})
	errors.AssertCode(t, err, http.StatusBadRequest)
}

func TestTeamService_Get(t *testing.T) {
	e := newEnv(t)
	team := e.createTeam(t, "alice", "Pizza")

	got, err := e.teams.Get("alice", team.ID)
	require.NoError(t, err)
	assert.Equal(t, team.Name, got.Name)

	// bob is not a member: he gets a 404, not a 403.
	_, err = e.teams.Get("bob", team.ID)
	errors.AssertCode(t, err, http.StatusNotFound)

	_, err = e.teams.Get("alice", 100)
	errors.AssertCode(t, err, http.StatusNotFound)
}

func TestTeamService_Invite(t *testing.T) {
	e := newEnv(t)
	team := e.createTeam(t, "alice", "Pizza")

	team, err := e.teams.Invite("alice", team.ID, "bob@notenet.io")
	require.NoError(t, err)
	require.Len(t, team.Members, 1)
	assert.Equal(t, "bob", team.Members[0].ID)

	// Inviting again is a no-op.
	team, err = e.teams.Invite("alice", team.ID, "bob@notenet.io")
	require.NoError(t, err)
	assert.Len(t, team.Members, 1)

	// A member cannot invite, only the owner.
	_, err = e.teams.Invite("bob", team.ID, "carol@notenet.io")
	errors.AssertCode(t, err, http.StatusForbidden)

	// Unknown email.
	_, err = e.teams.Invite("alice", team.ID, "ghost@notenet.io")
	errors.AssertCode(t, err, http.StatusNotFound)

	// Membership opens team-granted notes.
	note := e.createNote(t, "carol", "Shared")
	require.NoError(t, e.teamGrantRepo.Grant(permission.TeamGrant{TeamID: team.ID, NoteID: note.ID, Level: permission.Reader}))
	_, err = e.notes.Get("bob", note.ID)
	require.NoError(t, err)
}

func TestTeamService_Kick(t *testing.T) {
	e := newEnv(t)
	team := e.createTeam(t, "alice", "Pizza")
	_, err := e.teams.Invite("alice", team.ID, "bob@notenet.io")
	require.NoError(t, err)
	_, err = e.teams.Invite("alice", team.ID, "carol@notenet.io")
	require.NoError(t, err)

	// A member cannot kick another member.
	_, err = e.teams.Kick("bob", team.ID, "carol")
	errors.AssertCode(t, err, http.StatusForbidden)

	// A member can leave.
	team, err = e.teams.Kick("carol", team.ID, "carol")
	require.NoError(t, err)
	assert.Len(t, team.Members, 1)

	// Nobody kicks the owner, not even the owner.
	_, err = e.teams.Kick("alice", team.ID, "alice")
	errors.AssertCode(t, err, http.StatusBadRequest)

	// The owner kicks a member.
	team, err = e.teams.Kick("alice", team.ID, "bob")
	require.NoError(t, err)
	assert.Len(t, team.Members, 0)

	_, err = e.teams.Kick("alice", team.ID, "bob")
	errors.AssertCode(t, err, http.StatusNotFound)
}

func TestTeamService_Delete(t *testing.T) {
	e := newEnv(t)
	team := e.createTeam(t, "alice", "Pizza")
	_, err := e.teams.Invite("alice", team.ID, "bob@notenet.io")
	require.NoError(t, err)

	note := e.createNote(t, "carol", "Shared")
	require.NoError(t, e.teamGrantRepo.Grant(permission.TeamGrant{TeamID: team.ID, NoteID: note.ID, Level: permission.Reader}))

	// A member cannot delete the team.
	err = e.teams.Delete("bob", team.ID)
	errors.AssertCode(t, err, http.StatusForbidden)

	require.NoError(t, e.teams.Delete("alice", team.ID))

	_, err = e.teams.Get("alice", team.ID)
	errors.AssertCode(t, err, http.StatusNotFound)

	// The team's grants went with it.
	_, err = e.notes.Get("bob", note.ID)
	errors.AssertCode(t, err, http.StatusForbidden)
}

func TestTeamService_My(t *testing.T) {
	e := newEnv(t)
	pizza := e.createTeam(t, "alice", "Pizza")
	e.createTeam(t, "bob", "Yolo")
	_, err := e.teams.Invite("alice", pizza.ID, "carol@notenet.io")
	require.NoError(t, err)

	teams, err := e.teams.My("carol")
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, pizza.ID, teams[0].ID)

	teams, err = e.teams.My("alice")
	require.NoError(t, err)
	assert.Len(t, teams, 1)
}
