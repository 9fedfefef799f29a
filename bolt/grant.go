package bolt

import (
	"encoding/json"
	"fmt"

	"github.com/boltdb/bolt"

	"github.com/bobinette/notenet/permission"
)

var grantBucket = []byte("grants")

// GrantStore keeps the direct user grants. All the grants of a user on
// a note live under one key; the slice may contain duplicates, readers
// only take the maximum.
type GrantStore struct {
	Driver *Driver
}

func grantKey(userID string, noteID int) []byte {
	return []byte(fmt.Sprintf("%s/%d", userID, noteID))
}

func (s *GrantStore) MaxLevel(userID string, noteID int) (permission.Level, bool, error) {
	var max permission.Level
	found := false

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(grantBucket)

		data := bucket.Get(grantKey(userID, noteID))
		if data == nil {
			return nil
		}

		var grants []permission.Grant
		if err := json.Unmarshal(data, &grants); err != nil {
			return err
		}

		for _, g := range grants {
			if !found || g.Level > max {
				max = g.Level
			}
			found = true
		}
		return nil
	})
	if err != nil {
		return 0, false, err
	}

	return max, found, nil
}

func (s *GrantStore) ForNote(noteID int) ([]permission.Grant, error) {
	grants := make([]permission.Grant, 0)

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(grantBucket)

		c := bucket.Cursor()
		for key, data := c.First(); key != nil; key, data = c.Next() {
			var gs []permission.Grant
			if err := json.Unmarshal(data, &gs); err != nil {
				return err
			}

			for _, g := range gs {
				if g.NoteID == noteID {
					grants = append(grants, g)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return grants, nil
}

func (s *GrantStore) Grant(g permission.Grant) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(grantBucket)
		key := grantKey(g.UserID, g.NoteID)

		var grants []permission.Grant
		if data := bucket.Get(key); data != nil {
			if err := json.Unmarshal(data, &grants); err != nil {
				return err
			}
		}
		grants = append(grants, g)

		data, err := json.Marshal(grants)
		if err != nil {
			return err
		}
		return bucket.Put(key, data)
	})
}

// Revoke removes every grant of the user on the note, duplicates
// included.
func (s *GrantStore) Revoke(userID string, noteID int) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(grantBucket)
		return bucket.Delete(grantKey(userID, noteID))
	})
}

func (s *GrantStore) DeleteByNote(noteID int) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(grantBucket)

		keys := make([][]byte, 0)
		c := bucket.Cursor()
		for key, data := c.First(); key != nil; key, data = c.Next() {
			var gs []permission.Grant
			if err := json.Unmarshal(data, &gs); err != nil {
				return err
			}
			if len(gs) > 0 && gs[0].NoteID == noteID {
				k := make([]byte, len(key))
				copy(k, key)
				keys = append(keys, k)
			}
		}

		for _, key := range keys {
			if err := bucket.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}
