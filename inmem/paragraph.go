package inmem

import (
	"sort"
	"sync"

	"github.com/bobinette/notenet"
)

type ParagraphRepository struct {
	mu         sync.Locker
	paragraphs []notenet.Paragraph
	maxID      int
}

func NewParagraphRepository() *ParagraphRepository {
	return &ParagraphRepository{
		mu:         &sync.Mutex{},
		paragraphs: make([]notenet.Paragraph, 0),
	}
}

func (r *ParagraphRepository) Get(id int) (*notenet.Paragraph, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.paragraphs {
		if p.ID == id {
			paragraph := p
			return &paragraph, nil
		}
	}
	return nil, nil
}

func (r *ParagraphRepository) ListByNote(noteID int) ([]*notenet.Paragraph, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	paragraphs := make([]*notenet.Paragraph, 0)
	for _, p := range r.paragraphs {
		if p.NoteID == noteID {
			paragraph := p
			paragraphs = append(paragraphs, &paragraph)
		}
	}
	sort.Slice(paragraphs, func(i, j int) bool {
		return paragraphs[i].Position < paragraphs[j].Position
	})
	return paragraphs, nil
}

func (r *ParagraphRepository) Upsert(paragraph *notenet.Paragraph) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if paragraph.ID == 0 {
		r.maxID++
		paragraph.ID = r.maxID
	} else if paragraph.ID > r.maxID {
		r.maxID = paragraph.ID
	}

	for i, p := range r.paragraphs {
		if p.ID == paragraph.ID {
			r.paragraphs[i] = *paragraph
			return nil
		}
	}
	r.paragraphs = append(r.paragraphs, *paragraph)
	return nil
}

func (r *ParagraphRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.paragraphs {
		if p.ID == id {
			r.paragraphs = append(r.paragraphs[:i], r.paragraphs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *ParagraphRepository) DeleteByNote(noteID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.paragraphs[:0]
	for _, p := range r.paragraphs {
		if p.NoteID == noteID {
			continue
		}
		kept = append(kept, p)
	}
	r.paragraphs = kept
	return nil
}
