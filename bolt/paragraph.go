package bolt

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/boltdb/bolt"

	"github.com/bobinette/notenet"
)

var paragraphBucket = []byte("paragraphs")

type ParagraphStore struct {
	Driver *Driver
}

func (s *ParagraphStore) Get(id int) (*notenet.Paragraph, error) {
	var paragraph *notenet.Paragraph
	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(paragraphBucket)

		data := bucket.Get(itob(id))
		if data == nil {
			return nil
		}

		paragraph = &notenet.Paragraph{}
		return json.Unmarshal(data, paragraph)
	})
	if err != nil {
		return nil, err
	}

	return paragraph, nil
}

func (s *ParagraphStore) ListByNote(noteID int) ([]*notenet.Paragraph, error) {
	paragraphs := make([]*notenet.Paragraph, 0)

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(paragraphBucket)

		c := bucket.Cursor()
		for id, data := c.First(); id != nil; id, data = c.Next() {
			var paragraph notenet.Paragraph
			if err := json.Unmarshal(data, &paragraph); err != nil {
				return err
			}

			if paragraph.NoteID == noteID {
				paragraphs = append(paragraphs, &paragraph)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(paragraphs, func(i, j int) bool {
		return paragraphs[i].Position < paragraphs[j].Position
	})
	return paragraphs, nil
}

func (s *ParagraphStore) Upsert(paragraph *notenet.Paragraph) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(paragraphBucket)

		if paragraph.ID <= 0 {
			id, err := bucket.NextSequence()
			if err != nil {
				return fmt.Errorf("error incrementing id: %v", err)
			}
			paragraph.ID = int(id)
			paragraph.CreatedAt = time.Now()
		}
		paragraph.UpdatedAt = time.Now()

		data, err := json.Marshal(paragraph)
		if err != nil {
			return err
		}

		return bucket.Put(itob(paragraph.ID), data)
	})
}

func (s *ParagraphStore) Delete(id int) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(paragraphBucket)
		return bucket.Delete(itob(id))
	})
}

func (s *ParagraphStore) DeleteByNote(noteID int) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(paragraphBucket)

		keys := make([][]byte, 0)
		c := bucket.Cursor()
		for key, data := c.First(); key != nil; key, data = c.Next() {
			var paragraph notenet.Paragraph
			if err := json.Unmarshal(data, &paragraph); err != nil {
				return err
			}
			if paragraph.NoteID == noteID {
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
