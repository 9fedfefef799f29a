// Package bolt persists the domain in a bolt database, one bucket per
// entity, values as JSON.
package bolt

import (
	"encoding/binary"
	"time"

	"github.com/boltdb/bolt"

	"github.com/bobinette/notenet/errors"
)

type Driver struct {
	store *bolt.DB
}

// Open opens the connection to the bolt database defined by path and
// creates the buckets if needed.
func (d *Driver) Open(path string) error {
	if d.store != nil {
		return errors.New("store already open")
	}

	store, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return err
	}

	err = store.Update(func(tx *bolt.Tx) error {
		buckets := [][]byte{
			noteBucket,
			paragraphBucket,
			teamBucket,
			userBucket,
			grantBucket,
			teamGrantBucket,
		}
		for _, bucket := range buckets {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		store.Close()
		return err
	}

	d.store = store
	return nil
}

// Close closes the underlying database.
func (d *Driver) Close() error {
	if d.store != nil {
		err := d.store.Close()
		d.store = nil
		return err
	}
	return nil
}

func itob(i int) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(i))
	return b
}
