package notenet

import (
	"time"
)

type Note struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// Owner is the single user controlling the note. It is never empty
	// and there is never more than one.
	Owner string `json:"owner"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type NoteRepository interface {
	// Get retrieves the note defined by id. It returns nil when no note
	// exists for that id.
	Get(int) (*Note, error)
	ListByOwner(string) ([]*Note, error)
	Upsert(*Note) error
	Delete(int) error
}

type Pagination struct {
	Total  uint64 `json:"total"`
	Limit  uint64 `json:"limit"`
	Offset uint64 `json:"offset"`
}

type NoteSearch struct {
	IDs []int  `json:"ids"`
	Q   string `json:"q"`

	Limit  uint64 `json:"limit"`
	Offset uint64 `json:"offset"`
}

type NoteSearchResults struct {
	IDs        []int
	Pagination Pagination
}

type NoteIndex interface {
	Index(*Note) error
	Delete(int) error
	Search(NoteSearch) (NoteSearchResults, error)
}
