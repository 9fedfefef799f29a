package bolt

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/boltdb/bolt"

	"github.com/bobinette/notenet"
)

var teamBucket = []byte("teams")

type TeamStore struct {
	Driver *Driver
}

func (s *TeamStore) Get(id int) (notenet.Team, error) {
	var team notenet.Team
	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(teamBucket)

		data := bucket.Get(itob(id))
		if data == nil {
			return nil
		}

		team = notenet.Team{}
		return json.Unmarshal(data, &team)
	})
	if err != nil {
		return notenet.Team{}, err
	}

	return team, nil
}

func (s *TeamStore) GetForUser(userID string) ([]notenet.Team, error) {
	teams := make([]notenet.Team, 0)

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(teamBucket)

		c := bucket.Cursor()
		for id, data := c.First(); id != nil; id, data = c.Next() {
			var team notenet.Team
			if err := json.Unmarshal(data, &team); err != nil {
				return err
			}

			if team.HasMember(userID) {
				teams = append(teams, team)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return teams, nil
}

// TeamsOf implements the membership read contract of the permission
// service.
func (s *TeamStore) TeamsOf(userID string) ([]int, error) {
	teams, err := s.GetForUser(userID)
	if err != nil {
		return nil, err
	}

	ids := make([]int, len(teams))
	for i, team := range teams {
		ids[i] = team.ID
	}
	sort.Ints(ids)
	return ids, nil
}

func (s *TeamStore) Upsert(team *notenet.Team) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(teamBucket)

		if team.ID <= 0 {
			id, err := bucket.NextSequence()
			if err != nil {
				return fmt.Errorf("error incrementing id: %v", err)
			}
			team.ID = int(id)
		}

		data, err := json.Marshal(team)
		if err != nil {
			return err
		}

		return bucket.Put(itob(team.ID), data)
	})
}

func (s *TeamStore) Delete(id int) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(teamBucket)
		return bucket.Delete(itob(id))
	})
}
