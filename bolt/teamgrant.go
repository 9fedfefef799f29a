package bolt

import (
	"encoding/json"
	"fmt"

	"github.com/boltdb/bolt"

	"github.com/bobinette/notenet/permission"
)

var teamGrantBucket = []byte("team_grants")

type TeamGrantStore struct {
	Driver *Driver
}

func teamGrantKey(teamID, noteID int) []byte {
	return []byte(fmt.Sprintf("%d/%d", teamID, noteID))
}

// ForNote returns every team grant recorded for the note, whoever
// asks.
func (s *TeamGrantStore) ForNote(noteID int) ([]permission.TeamGrant, error) {
	grants := make([]permission.TeamGrant, 0)

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(teamGrantBucket)

		c := bucket.Cursor()
		for key, data := c.First(); key != nil; key, data = c.Next() {
			var gs []permission.TeamGrant
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

func (s *TeamGrantStore) Grant(g permission.TeamGrant) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(teamGrantBucket)
		key := teamGrantKey(g.TeamID, g.NoteID)

		var grants []permission.TeamGrant
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

func (s *TeamGrantStore) Revoke(teamID, noteID int) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(teamGrantBucket)
		return bucket.Delete(teamGrantKey(teamID, noteID))
	})
}

func (s *TeamGrantStore) DeleteByNote(noteID int) error {
	return s.deleteWhere(func(g permission.TeamGrant) bool { return g.NoteID == noteID })
}

func (s *TeamGrantStore) DeleteByTeam(teamID int) error {
	return s.deleteWhere(func(g permission.TeamGrant) bool { return g.TeamID == teamID })
}

func (s *TeamGrantStore) deleteWhere(match func(permission.TeamGrant) bool) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(teamGrantBucket)

		keys := make([][]byte, 0)
		c := bucket.Cursor()
		for key, data := c.First(); key != nil; key, data = c.Next() {
			var gs []permission.TeamGrant
			if err := json.Unmarshal(data, &gs); err != nil {
				return err
			}
			if len(gs) > 0 && match(gs[0]) {
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
