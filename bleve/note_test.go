package bleve

import (
	"io/ioutil"
	"os"
	"reflect"
	"testing"

	"github.com/blevesearch/bleve"

	"github.com/bobinette/notenet"
)

func createIndex(t *testing.T) (*NoteIndex, func()) {
	dir, err := ioutil.TempDir("", "")
	if err != nil {
		t.Fatal("could not create tmp dir:", err)
	}

	path := dir + "/index"
	index, err := bleve.New(path, noteMapping())
	if err != nil {
		os.RemoveAll(dir)
		t.Fatal("error creating index", err)
	}

	return &NoteIndex{index: index}, func() {
		if err := index.Close(); err != nil {
			t.Log(err)
		}
		if err := os.RemoveAll(dir); err != nil {
			t.Log(err)
		}
	}
}

func TestSearch(t *testing.T) {
	index, f := createIndex(t)
	defer f()

	notes := []*notenet.Note{
		&notenet.Note{ID: 1, Title: "Groceries"},
		&notenet.Note{ID: 2, Title: "Pizza recipe"},
		&notenet.Note{ID: 3, Title: "Reinforcement learning"},
		&notenet.Note{ID: 4, Title: "pizza toppings"},
		&notenet.Note{ID: 5, Title: "learning to cook"},
		&notenet.Note{ID: 6, Title: "later that day"},
	}
	ids := make([]int, len(notes))
	for i, note := range notes {
		if err := index.Index(note); err != nil {
			t.Fatal("error indexing", note.ID, err)
		}
		ids[i] = note.ID
	}

	var tts = map[string]struct {
		Search   notenet.NoteSearch
		Expected notenet.NoteSearchResults
	}{
		"match all": {
			Search: notenet.NoteSearch{
				Q:     "",
				Limit: 10,
			},
			Expected: notenet.NoteSearchResults{
				IDs: ids,
				Pagination: notenet.Pagination{
					Total:  uint64(len(ids)),
					Limit:  10,
					Offset: 0,
				},
			},
		},
		"one word": {
			Search: notenet.NoteSearch{
				Q:     "pizza",
				Limit: 10,
			},
			Expected: notenet.NoteSearchResults{
				IDs: []int{2, 4},
				Pagination: notenet.Pagination{
					Total:  2,
					Limit:  10,
					Offset: 0,
				},
			},
		},
		"prefix": {
			Search: notenet.NoteSearch{
				Q:     "learn",
				Limit: 10,
			},
			Expected: notenet.NoteSearchResults{
				IDs: []int{3, 5},
				Pagination: notenet.Pagination{
					Total:  2,
					Limit:  10,
					Offset: 0,
				},
			},
		},
		"with uppercase letters": {
			Search: notenet.NoteSearch{
				Q:     "Pizza",
				Limit: 10,
			},
			Expected: notenet.NoteSearchResults{
				IDs: []int{2, 4},
				Pagination: notenet.Pagination{
					Total:  2,
					Limit:  10,
					Offset: 0,
				},
			},
		},
		"no match": {
			Search: notenet.NoteSearch{
				Q:     "meteorology",
				Limit: 10,
			},
			Expected: notenet.NoteSearchResults{
				IDs: []int{},
				Pagination: notenet.Pagination{
					Total:  0,
					Limit:  10,
					Offset: 0,
				},
			},
		},
		"by ids": {
			Search: notenet.NoteSearch{
				IDs:   []int{1, 3, 17},
				Limit: 10,
			},
			Expected: notenet.NoteSearchResults{
				IDs: []int{1, 3},
				Pagination: notenet.Pagination{
					Total:  2,
					Limit:  10,
					Offset: 0,
				},
			},
		},
		"q restricted by ids": {
			Search: notenet.NoteSearch{
				Q:     "learning",
				IDs:   []int{3},
				Limit: 10,
			},
			Expected: notenet.NoteSearchResults{
				IDs: []int{3},
				Pagination: notenet.Pagination{
					Total:  1,
					Limit:  10,
					Offset: 0,
				},
			},
		},
		"match all with limit": {
			Search: notenet.NoteSearch{
				Q:     "",
				Limit: 3,
			},
			Expected: notenet.NoteSearchResults{
				IDs: ids[:3],
				Pagination: notenet.Pagination{
					Total:  uint64(len(ids)),
					Limit:  3,
					Offset: 0,
				},
			},
		},
	}

	for name, tt := range tts {
		res, err := index.Search(tt.Search)
		if err != nil {
			t.Errorf("%s - search failed with error: %v", name, err)
		} else if !reflect.DeepEqual(tt.Expected.IDs, res.IDs) {
			t.Errorf("%s - got wrong ids: expected %v got %v", name, tt.Expected.IDs, res.IDs)
		} else if !reflect.DeepEqual(tt.Expected.Pagination, res.Pagination) {
			t.Errorf("%s - got wrong pagination: expected %v got %v", name, tt.Expected.Pagination, res.Pagination)
		}
	}
}
