package bolt

import (
	"testing"

	"github.com/bobinette/notenet/permission"
)

func TestGrantStore(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	store := &GrantStore{Driver: driver}

	_, found, err := store.MaxLevel("alice", 1)
	if err != nil {
		t.Fatal("error reading:", err)
	} else if found {
		t.Fatal("expected no grant")
	}

	for _, g := range []permission.Grant{
		{UserID: "alice", NoteID: 1, Level: permission.Reader},
		{UserID: "alice", NoteID: 1, Level: permission.Executor},
		{UserID: "alice", NoteID: 1, Level: permission.Writer},
		{UserID: "alice", NoteID: 2, Level: permission.Writer},
		{UserID: "bob", NoteID: 1, Level: permission.Reader},
	} {
		if err := store.Grant(g); err != nil {
			t.Fatal("error granting:", err)
		}
	}

	// The maximum wins, whatever the insertion order.
	level, found, err := store.MaxLevel("alice", 1)
	if err != nil {
		t.Fatal("error reading:", err)
	} else if !found {
		t.Fatal("expected a grant")
	} else if level != permission.Executor {
		t.Fatalf("incorrect level: expected %v got %v", permission.Executor, level)
	}

	grants, err := store.ForNote(1)
	if err != nil {
		t.Fatal("error listing:", err)
	} else if len(grants) != 4 {
		t.Fatalf("incorrect number of grants: expected 4 got %d", len(grants))
	}

	// Revoking removes every grant of the user on the note.
	if err := store.Revoke("alice", 1); err != nil {
		t.Fatal("error revoking:", err)
	}
	if _, found, _ := store.MaxLevel("alice", 1); found {
		t.Fatal("expected the grants to be gone")
	}
	if level, _, _ := store.MaxLevel("alice", 2); level != permission.Writer {
		t.Fatal("revoking on one note should not touch the others")
	}

	if err := store.DeleteByNote(1); err != nil {
		t.Fatal("error deleting by note:", err)
	}
	if grants, _ := store.ForNote(1); len(grants) != 0 {
		t.Fatalf("expected no grants, got %d", len(grants))
	}
	if grants, _ := store.ForNote(2); len(grants) != 1 {
		t.Fatalf("expected 1 grant on note 2, got %d", len(grants))
	}
}
