package bolt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/boltdb/bolt"

	"github.com/bobinette/notenet"
	"github.com/bobinette/notenet/errors"
)

var noteBucket = []byte("notes")

type NoteStore struct {
	Driver *Driver
}

// Get retrieves the note defined by id. If no note can be found for
// the given id, Get returns nil.
func (s *NoteStore) Get(id int) (*notenet.Note, error) {
	var note *notenet.Note
	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(noteBucket)

		data := bucket.Get(itob(id))
		if data == nil {
			return nil
		}

		note = &notenet.Note{}
		return json.Unmarshal(data, note)
	})
	if err != nil {
		return nil, err
	}

	return note, nil
}

func (s *NoteStore) ListByOwner(owner string) ([]*notenet.Note, error) {
	notes := make([]*notenet.Note, 0)

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(noteBucket)

		c := bucket.Cursor()
		for id, data := c.First(); id != nil; id, data = c.Next() {
			var note notenet.Note
			if err := json.Unmarshal(data, &note); err != nil {
				return err
			}

			if note.Owner == owner {
				notes = append(notes, &note)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return notes, nil
}

// Upsert inserts or updates a note, depending on note.ID.
func (s *NoteStore) Upsert(note *notenet.Note) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(noteBucket)

		if note.ID <= 0 {
			id, err := bucket.NextSequence()
			if err != nil {
				return fmt.Errorf("error incrementing id: %v", err)
			}
			note.ID = int(id)
			note.CreatedAt = time.Now()
		}
		note.UpdatedAt = time.Now()

		data, err := json.Marshal(note)
		if err != nil {
			return err
		}

		return bucket.Put(itob(note.ID), data)
	})
}

func (s *NoteStore) Delete(id int) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(noteBucket)
		return bucket.Delete(itob(id))
	})
}

// Owner implements the ownership read contract of the permission
// service: a missing note is a 404, never a silent empty owner.
func (s *NoteStore) Owner(id int) (string, error) {
	note, err := s.Get(id)
	if err != nil {
		return "", err
	} else if note == nil {
		return "", errors.New(fmt.Sprintf("No note for id %d", id), errors.NotFound())
	}

	return note.Owner, nil
}
