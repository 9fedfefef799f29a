package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobinette/notenet/errors"
	"github.com/bobinette/notenet/permission"
)

func TestGrantService_GrantUser(t *testing.T) {
	e := newEnv(t)
	note := e.createNote(t, "alice", "Plans")

	require.NoError(t, e.grants.GrantUser("alice", permission.Grant{UserID: "bob", NoteID: note.ID, Level: permission.Writer}))

	// The grant takes effect.
	_, err := e.notes.Get("bob", note.ID)
	require.NoError(t, err)

	// Granting is owner-only, even for an EXECUTOR holder.
	require.NoError(t, e.grants.GrantUser("alice", permission.Grant{UserID: "bob", NoteID: note.ID, Level: permission.Executor}))
	err = e.grants.GrantUser("bob", permission.Grant{UserID: "carol", NoteID: note.ID, Level: permission.Reader})
	errors.AssertCode(t, err, http.StatusForbidden)

	// The grantee must exist.
	err = e.grants.GrantUser("alice", permission.Grant{UserID: "ghost", NoteID: note.ID, Level: permission.Reader})
	errors.AssertCode(t, err, http.StatusNotFound)

	// The level must be one of the known ranks.
	err = e.grants.GrantUser("alice", permission.Grant{UserID: "bob", NoteID: note.ID, Level: permission.Level(42)})
	errors.AssertCode(t, err, http.StatusBadRequest)

	// Granting on a missing note is a 404.
	err = e.grants.GrantUser("alice", permission.Grant{UserID: "bob", NoteID: 404, Level: permission.Reader})
	errors.AssertCode(t, err, http.StatusNotFound)
}

func TestGrantService_RevokeUser(t *testing.T) {
	e := newEnv(t)
	note := e.createNote(t, "alice", "Plans")
	require.NoError(t, e.grants.GrantUser("alice", permission.Grant{UserID: "bob", NoteID: note.ID, Level: permission.Executor}))

	err := e.grants.RevokeUser("bob", "bob", note.ID)
	errors.AssertCode(t, err, http.StatusForbidden)

	require.NoError(t, e.grants.RevokeUser("alice", "bob", note.ID))

	// Revocation is immediate.
	_, err = e.notes.Get("bob", note.ID)
	errors.AssertCode(t, err, http.StatusForbidden)

	// Revoking an absent grant is a no-op.
	require.NoError(t, e.grants.RevokeUser("alice", "bob", note.ID))
}

func TestGrantService_GrantTeam(t *testing.T) {
	e := newEnv(t)
	note := e.createNote(t, "alice", "Plans")
	team := e.createTeam(t, "bob", "Pizza")
	_, err := e.teams.Invite("bob", team.ID, "carol@notenet.io")
	require.NoError(t, err)

	require.NoError(t, e.grants.GrantTeam("alice", permission.TeamGrant{TeamID: team.ID, NoteID: note.ID, Level: permission.Reader}))

	// Every member benefits, the owner included.
	_, err = e.notes.Get("bob", note.ID)
	require.NoError(t, err)
	_, err = e.notes.Get("carol", note.ID)
	require.NoError(t, err)

	// The team must exist.
	err = e.grants.GrantTeam("alice", permission.TeamGrant{TeamID: 100, NoteID: note.ID, Level: permission.Reader})
	errors.AssertCode(t, err, http.StatusNotFound)

	err = e.grants.GrantTeam("alice", permission.TeamGrant{TeamID: team.ID, NoteID: note.ID, Level: permission.Level(42)})
	errors.AssertCode(t, err, http.StatusBadRequest)

	err = e.grants.GrantTeam("bob", permission.TeamGrant{TeamID: team.ID, NoteID: note.ID, Level: permission.Writer})
	errors.AssertCode(t, err, http.StatusForbidden)
}

func TestGrantService_RevokeTeam(t *testing.T) {
	e := newEnv(t)
	note := e.createNote(t, "alice", "Plans")
	team := e.createTeam(t, "bob", "Pizza")
	require.NoError(t, e.grants.GrantTeam("alice", permission.TeamGrant{TeamID: team.ID, NoteID: note.ID, Level: permission.Reader}))

	err := e.grants.RevokeTeam("bob", team.ID, note.ID)
	errors.AssertCode(t, err, http.StatusForbidden)

	require.NoError(t, e.grants.RevokeTeam("alice", team.ID, note.ID))
	_, err = e.notes.Get("bob", note.ID)
	errors.AssertCode(t, err, http.StatusForbidden)
}

func TestGrantService_ForNote(t *testing.T) {
	e := newEnv(t)
	note := e.createNote(t, "alice", "Plans")
	team := e.createTeam(t, "bob", "Pizza")
	require.NoError(t, e.grants.GrantUser("alice", permission.Grant{UserID: "bob", NoteID: note.ID, Level: permission.Writer}))
	require.NoError(t, e.grants.GrantTeam("alice", permission.TeamGrant{TeamID: team.ID, NoteID: note.ID, Level: permission.Reader}))

	grants, err := e.grants.ForNote("alice", note.ID)
	require.NoError(t, err)
	require.Len(t, grants.Users, 1)
	assert.Equal(t, permission.Writer, grants.Users[0].Level)
	require.Len(t, grants.Teams, 1)
	assert.Equal(t, team.ID, grants.Teams[0].TeamID)

	// The list is for the owner's eyes only.
	_, err = e.grants.ForNote("bob", note.ID)
	errors.AssertCode(t, err, http.StatusForbidden)

	_, err = e.grants.ForNote("alice", 404)
	errors.AssertCode(t, err, http.StatusNotFound)
}
