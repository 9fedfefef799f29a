package inmem

import (
	"sort"
	"strings"
	"sync"

	"github.com/bobinette/notenet"
)

// NoteIndex is a naive substring index, good enough for tests and dev.
type NoteIndex struct {
	mu     sync.Locker
	titles map[int]string
}

func NewNoteIndex() *NoteIndex {
	return &NoteIndex{
		mu:     &sync.Mutex{},
		titles: make(map[int]string),
	}
}

func (s *NoteIndex) Index(note *notenet.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.titles[note.ID] = note.Title
	return nil
}

func (s *NoteIndex) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.titles, id)
	return nil
}

func (s *NoteIndex) Search(search notenet.NoteSearch) (notenet.NoteSearchResults, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(search.Q)

	only := make(map[int]struct{}, len(search.IDs))
	for _, id := range search.IDs {
		only[id] = struct{}{}
	}

	ids := make([]int, 0)
	for id, title := range s.titles {
		if q != "" && !strings.Contains(strings.ToLower(title), q) {
			continue
		}
		if len(only) > 0 {
			if _, ok := only[id]; !ok {
				continue
			}
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)

	total := uint64(len(ids))
	if search.Offset > 0 {
		if search.Offset >= total {
			ids = []int{}
		} else {
			ids = ids[search.Offset:]
		}
	}
	if search.Limit > 0 && uint64(len(ids)) > search.Limit {
		ids = ids[:search.Limit]
	}

	return notenet.NoteSearchResults{
		IDs: ids,
		Pagination: notenet.Pagination{
			Total:  total,
			Limit:  search.Limit,
			Offset: search.Offset,
		},
	}, nil
}
