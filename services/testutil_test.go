package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bobinette/notenet"
	"github.com/bobinette/notenet/inmem"
	"github.com/bobinette/notenet/permission"
)

// env wires every service over in-memory repositories, with a few
// users registered: alice, bob and carol.
type env struct {
	noteRepo      *inmem.NoteRepository
	paragraphRepo *inmem.ParagraphRepository
	grantRepo     *inmem.GrantRepository
	teamGrantRepo *inmem.TeamGrantRepository
	teamRepo      *inmem.TeamRepository
	userRepo      *inmem.UserRepository
	index         *inmem.NoteIndex

	users      *UserService
	notes      *NoteService
	teams      *TeamService
	grants     *GrantService
	paragraphs *ParagraphService
}

func newEnv(t *testing.T) *env {
	e := &env{
		noteRepo:      inmem.NewNoteRepository(),
		paragraphRepo: inmem.NewParagraphRepository(),
		grantRepo:     inmem.NewGrantRepository(),
		teamGrantRepo: inmem.NewTeamGrantRepository(),
		teamRepo:      inmem.NewTeamRepository(),
		userRepo:      inmem.NewUserRepository(),
		index:         inmem.NewNoteIndex(),
	}

	permissions := permission.NewService(e.grantRepo, e.teamGrantRepo, e.teamRepo, e.noteRepo)
	e.users = NewUserService(e.userRepo)
	e.notes = NewNoteService(e.noteRepo, e.paragraphRepo, e.grantRepo, e.teamGrantRepo, e.index, permissions, e.users)
	e.teams = NewTeamService(e.teamRepo, e.userRepo, e.teamGrantRepo)
	e.grants = NewGrantService(e.grantRepo, e.teamGrantRepo, e.teamRepo, permissions, e.users)
	e.paragraphs = NewParagraphService(e.paragraphRepo, permissions)

	for _, user := range []notenet.User{
		{ID: "alice", Name: "Alice", Email: "alice@notenet.io"},
		{ID: "bob", Name: "Bob", Email: "bob@notenet.io"},
		{ID: "carol", Name: "Carol", Email: "carol@notenet.io"},
	} {
		u := user
		require.NoError(t, e.userRepo.Upsert(&u))
	}

	return e
}

// createNote inserts a note owned by owner and returns it.
func (e *env) createNote(t *testing.T, owner, title string) notenet.Note {
	note, err := e.notes.Create(owner, notenet.Note{Title: title})
	require.NoError(t, err)
	require.NotEqual(t, 0, note.ID)
	return note
}
