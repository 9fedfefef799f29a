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

func TestNoteService_Create(t *testing.T) {
	e := newEnv(t)

	note, err := e.notes.Create("alice", notenet.Note{Title: "Plans"})
	require.NoError(t, err)
	assert.Equal(t, "alice", note.Owner, "creating makes you the owner")
	assert.NotEqual(t, 0, note.ID)

	_, err = e.notes.Create("alice", notenet.Note{Title: ""})
	errors.AssertCode(t, err, http.StatusBadRequest)

	_, err = e.notes.Create("alice", notenet.Note{ID: 12, Title: "Plans"})
	errors.AssertCode(t, err, http.StatusBadRequest)
}

func TestNoteService_Get(t *testing.T) {
	e := newEnv(t)
	note := e.createNote(t, "alice", "Plans")

	// The owner reads without any grant.
	got, err := e.notes.Get("alice", note.ID)
	require.NoError(t, err)
	assert.Equal(t, note, got)

	// A stranger is denied.
	_, err = e.notes.Get("bob", note.ID)
	errors.AssertCode(t, err, http.StatusForbidden)

	// READER is enough to read.
	require.NoError(t, e.grantRepo.Grant(permission.Grant{UserID: "bob", NoteID: note.ID, Level: permission.Reader}))
	got, err = e.notes.Get("bob", note.ID)
	require.NoError(t, err)
	assert.Equal(t, note, got)

	// A missing note is a 404 whoever asks.
	_, err = e.notes.Get("alice", 404)
	errors.AssertCode(t, err, http.StatusNotFound)
}

func TestNoteService_ListMine(t *testing.T) {
	e := newEnv(t)
	e.createNote(t, "alice", "Plans")
	e.createNote(t, "alice", "Groceries")
	e.createNote(t, "bob", "Secrets")

	notes, err := e.notes.ListMine("alice")
	require.NoError(t, err)
	assert.Len(t, notes, 2)

	notes, err = e.notes.ListMine("carol")
	require.NoError(t, err)
	assert.Len(t, notes, 0)
}

func TestNoteService_Search(t *testing.T) {
	e := newEnv(t)
	plans := e.createNote(t, "alice", "Weekend plans")
	e.createNote(t, "alice", "Groceries")
	secret := e.createNote(t, "bob", "Secret plans")

	// Searching only surfaces notes the caller can read, silently
	// skipping the rest.
	notes, err := e.notes.Search("alice", notenet.NoteSearch{Q: "plans"})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, plans.ID, notes[0].ID)

	// With a grant on bob's note, it shows up.
	require.NoError(t, e.grantRepo.Grant(permission.Grant{UserID: "alice", NoteID: secret.ID, Level: permission.Reader}))
	notes, err = e.notes.Search("alice", notenet.NoteSearch{Q: "plans"})
	require.NoError(t, err)
	assert.Len(t, notes, 2)

	// A stranger to everything sees nothing.
	notes, err = e.notes.Search("carol", notenet.NoteSearch{Q: "plans"})
	require.NoError(t, err)
	assert.Len(t, notes, 0)
}

func TestNoteService_Update(t *testing.T) {
	e := newEnv(t)
	note := e.createNote(t, "alice", "Plans")

	// EXECUTOR is required to update.
	note.Title = "Better plans"
	_, err := e.notes.Update("bob", note)
	errors.AssertCode(t, err, http.StatusForbidden)

	require.NoError(t, e.grantRepo.Grant(permission.Grant{UserID: "bob", NoteID: note.ID, Level: permission.Writer}))
	_, err = e.notes.Update("bob", note)
	errors.AssertCode(t, err, http.StatusForbidden)

	require.NoError(t, e.grantRepo.Grant(permission.Grant{UserID: "bob", NoteID: note.ID, Level: permission.Executor}))
	updated, err := e.notes.Update("bob", note)
	require.NoError(t, err)
	assert.Equal(t, "Better plans", updated.Title)
	assert.Equal(t, "alice", updated.Owner)
	assert.Equal(t, note.CreatedAt, updated.CreatedAt, "update must not touch the creation date")
}

func TestNoteService_Update_OwnerChange(t *testing.T) {
	e := newEnv(t)
	note := e.createNote(t, "alice", "Plans")

	// EXECUTOR cannot transfer ownership.
	require.NoError(t, e.grantRepo.Grant(permission.Grant{UserID: "bob", NoteID: note.ID, Level: permission.Executor}))
	note.Owner = "bob"
	_, err := e.notes.Update("bob", note)
	errors.AssertCode(t, err, http.StatusForbidden)

	// The owner can, but only towards an existing user.
	note.Owner = "nobody"
	_, err = e.notes.Update("alice", note)
	errors.AssertCode(t, err, http.StatusNotFound)

	note.Owner = "bob"
	updated, err := e.notes.Update("alice", note)
	require.NoError(t, err)
	assert.Equal(t, "bob", updated.Owner)

	// The transfer is effective: alice is no longer the owner.
	err = e.notes.Delete("alice", note.ID)
	errors.AssertCode(t, err, http.StatusForbidden)
}

func TestNoteService_Delete(t *testing.T) {
	e := newEnv(t)
	note := e.createNote(t, "alice", "Plans")

	_, err := e.paragraphs.Create("alice", notenet.Paragraph{NoteID: note.ID, Text: "hello", Type: notenet.ParagraphText})
	require.NoError(t, err)
	require.NoError(t, e.grantRepo.Grant(permission.Grant{UserID: "bob", NoteID: note.ID, Level: permission.Executor}))

	// EXECUTOR does not delete, deletion is owner-only.
	err = e.notes.Delete("bob", note.ID)
	errors.AssertCode(t, err, http.StatusForbidden)

	require.NoError(t, e.notes.Delete("alice", note.ID))

	_, err = e.notes.Get("alice", note.ID)
	errors.AssertCode(t, err, http.StatusNotFound)

	// The cascade removed the paragraphs and the grants.
	paragraphs, err := e.paragraphRepo.ListByNote(note.ID)
	require.NoError(t, err)
	assert.Len(t, paragraphs, 0)

	_, found, err := e.grantRepo.MaxLevel("bob", note.ID)
	require.NoError(t, err)
	assert.False(t, found)
}
