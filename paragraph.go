package notenet

import (
	"time"
)

// ParagraphType tells the front how to render the block.
type ParagraphType string

const (
	ParagraphText  ParagraphType = "text"
	ParagraphCode  ParagraphType = "code"
	ParagraphImage ParagraphType = "image"
)

func (t ParagraphType) Valid() bool {
	switch t {
	case ParagraphText, ParagraphCode, ParagraphImage:
		return true
	}
	return false
}

// Paragraph is a content block of a note. Position orders the blocks
// within the note.
type Paragraph struct {
	ID     int    `json:"id"`
	NoteID int    `json:"noteId"`
	Title  string `json:"title"`
	Text   string `json:"text"`

	Type     ParagraphType `json:"type"`
	Position int           `json:"position"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ParagraphRepository interface {
	// Get returns nil when no paragraph exists for that id.
	Get(int) (*Paragraph, error)
	ListByNote(int) ([]*Paragraph, error)
	Upsert(*Paragraph) error
	Delete(int) error
	DeleteByNote(int) error
}
