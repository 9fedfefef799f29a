package bolt

import (
	"reflect"
	"testing"

	"github.com/bobinette/notenet"
)

func TestNoteStore_Upsert_Get(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	store := &NoteStore{Driver: driver}

	note := notenet.Note{Title: "Test", Owner: "alice"}
	if err := store.Upsert(&note); err != nil {
		t.Fatal("error inserting:", err)
	} else if note.ID == 0 {
		t.Fatal("expected an id to be assigned")
	} else if note.CreatedAt.IsZero() || note.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set")
	}

	retrieved, err := store.Get(note.ID)
	if err != nil {
		t.Fatal("error getting:", err)
	} else if retrieved == nil {
		t.Fatal("expected a note")
	} else if retrieved.Title != note.Title || retrieved.Owner != note.Owner {
		t.Fatalf("incorrect note retrieved: expected %+v got %+v", note, *retrieved)
	}

	// Updating keeps the id and the creation date.
	createdAt := note.CreatedAt
	note.Title = "Test updated"
	if err := store.Upsert(&note); err != nil {
		t.Fatal("error updating:", err)
	} else if !note.CreatedAt.Equal(createdAt) {
		t.Fatal("update should not change the creation date")
	}

	retrieved, err = store.Get(note.ID)
	if err != nil {
		t.Fatal("error getting:", err)
	} else if retrieved.Title != "Test updated" {
		t.Fatalf("incorrect title: got %s", retrieved.Title)
	}
}

func TestNoteStore_Get_Missing(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	store := &NoteStore{Driver: driver}

	note, err := store.Get(42)
	if err != nil {
		t.Fatal("error getting:", err)
	} else if note != nil {
		t.Fatalf("expected nil, got %+v", *note)
	}
}

func TestNoteStore_ListByOwner(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	store := &NoteStore{Driver: driver}

	for _, note := range []notenet.Note{
		{Title: "Plans", Owner: "alice"},
		{Title: "Groceries", Owner: "alice"},
		{Title: "Secrets", Owner: "bob"},
	} {
		n := note
		if err := store.Upsert(&n); err != nil {
			t.Fatal("error inserting:", err)
		}
	}

	notes, err := store.ListByOwner("alice")
	if err != nil {
		t.Fatal("error listing:", err)
	} else if len(notes) != 2 {
		t.Fatalf("incorrect number of notes: expected 2 got %d", len(notes))
	}

	titles := []string{notes[0].Title, notes[1].Title}
	if !reflect.DeepEqual(titles, []string{"Plans", "Groceries"}) {
		t.Fatalf("incorrect notes: got %v", titles)
	}

	notes, err = store.ListByOwner("carol")
	if err != nil {
		t.Fatal("error listing:", err)
	} else if len(notes) != 0 {
		t.Fatalf("expected no notes, got %d", len(notes))
	}
}

func TestNoteStore_Delete(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	store := &NoteStore{Driver: driver}

	note := notenet.Note{Title: "Test", Owner: "alice"}
	if err := store.Upsert(&note); err != nil {
		t.Fatal("error inserting:", err)
	}

	if err := store.Delete(note.ID); err != nil {
		t.Fatal("error deleting:", err)
	}

	retrieved, err := store.Get(note.ID)
	if err != nil {
		t.Fatal("error getting:", err)
	} else if retrieved != nil {
		t.Fatal("expected the note to be gone")
	}
}

func TestNoteStore_Owner(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	store := &NoteStore{Driver: driver}

	note := notenet.Note{Title: "Test", Owner: "alice"}
	if err := store.Upsert(&note); err != nil {
		t.Fatal("error inserting:", err)
	}

	owner, err := store.Owner(note.ID)
	if err != nil {
		t.Fatal("error getting owner:", err)
	} else if owner != "alice" {
		t.Fatalf("incorrect owner: expected alice got %s", owner)
	}

	if _, err := store.Owner(42); err == nil {
		t.Fatal("expected an error for a missing note")
	}
}
