package bleve

import (
	"strconv"
	"strings"

	"github.com/blevesearch/bleve"
	"github.com/blevesearch/bleve/analysis/lang/en"
	"github.com/blevesearch/bleve/mapping"
	"github.com/blevesearch/bleve/search/query"

	"github.com/bobinette/notenet"
)

type NoteIndex struct {
	index bleve.Index
}

// Open opens the index at path, creating it with the note mapping when it
// does not exist yet.
func (s *NoteIndex) Open(path string) error {
	index, err := bleve.Open(path)
	if err == bleve.ErrorIndexPathDoesNotExist {
		index, err = bleve.New(path, noteMapping())
	}
	if err != nil {
		return err
	}

	s.index = index
	return nil
}

func (s *NoteIndex) Close() error {
	if s.index == nil {
		return nil
	}

	return s.index.Close()
}

func (s *NoteIndex) Index(note *notenet.Note) error {
	data := map[string]interface{}{
		"title":       note.Title,
		"description": note.Description,
	}

	return s.index.Index(strconv.Itoa(note.ID), data)
}

func (s *NoteIndex) Delete(id int) error {
	return s.index.Delete(strconv.Itoa(id))
}

func (s *NoteIndex) Search(search notenet.NoteSearch) (notenet.NoteSearchResults, error) {
	q := andQ(
		query.NewMatchAllQuery(),
		s.searchTitle(search.Q),
		s.searchIDs(search.IDs),
	)

	searchRequest := bleve.NewSearchRequest(q)
	searchRequest.SortBy([]string{"_id"})

	if search.Limit > 0 {
		searchRequest.Size = int(search.Limit)
	}
	searchRequest.From = int(search.Offset)

	searchResults, err := s.index.Search(searchRequest)
	if err != nil {
		return notenet.NoteSearchResults{}, err
	}

	ids := make([]int, len(searchResults.Hits))
	for i, hit := range searchResults.Hits {
		ids[i], err = strconv.Atoi(hit.ID)
		if err != nil {
			return notenet.NoteSearchResults{}, err
		}
	}

	return notenet.NoteSearchResults{
		IDs: ids,
		Pagination: notenet.Pagination{
			Total:  searchResults.Total,
			Limit:  search.Limit,
			Offset: search.Offset,
		},
	}, nil
}

func noteMapping() mapping.IndexMapping {
	tm := bleve.NewTextFieldMapping()
	tm.Analyzer = en.AnalyzerName

	dm := bleve.NewDocumentMapping()
	dm.AddFieldMappingsAt("title", tm)
	dm.AddFieldMappingsAt("description", tm)

	m := bleve.NewIndexMapping()
	m.AddDocumentMapping("note", dm)
	m.DefaultMapping = dm
	return m
}

func andQ(qs ...query.Query) query.Query {
	ands := make([]query.Query, 0, len(qs))
	for _, q := range qs {
		if q != nil {
			ands = append(ands, q)
		}
	}

	if len(ands) == 0 {
		return nil
	}
	return query.NewConjunctionQuery(ands)
}

func (s *NoteIndex) searchTitle(queryString string) query.Query {
	words := strings.Fields(queryString)
	if len(words) == 0 {
		return nil
	}

	analyzer := s.index.Mapping().AnalyzerNamed(en.AnalyzerName)

	ands := make([]query.Query, 0, len(words))
	for _, word := range words {
		tokens := analyzer.Analyze([]byte(word))
		for _, token := range tokens {
			q := query.NewPrefixQuery(string(token.Term))
			q.SetField("title")
			ands = append(ands, q)
		}
	}

	return andQ(ands...)
}

func (*NoteIndex) searchIDs(ids []int) query.Query {
	if len(ids) == 0 {
		return nil
	}

	docIDs := make([]string, len(ids))
	for i, id := range ids {
		docIDs[i] = strconv.Itoa(id)
	}
	return query.NewDocIDQuery(docIDs)
}
