package cayley

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cayleygraph/cayley/graph"
	"github.com/cayleygraph/cayley/quad"
)

var (
	deletedNode = quad.Raw("deleted")
	deletedEdge = quad.Raw("isDeleted")

	nameEdge  = quad.Raw("name")
	emailEdge = quad.Raw("email")

	ownsEdge       = quad.Raw("owns")
	isMemberOfEdge = quad.Raw("isMemberOf")
)

// userQuad crafts a user quad.IRI from an id: <user:id>
func userQuad(id string) quad.IRI {
	return quad.IRI(fmt.Sprintf("user:%s", id))
}

// teamQuad crafts a team quad.IRI from an id: <team:id>
func teamQuad(id int) quad.IRI {
	return quad.IRI(fmt.Sprintf("team:%d", id))
}

// splitIRI splits the iri into prefix and data, both as strings.
func splitIRI(iri quad.IRI) (string, string) {
	iriString := iri.String()
	// ":" is allowed in the prefix but not in the id
	index := strings.LastIndex(iriString, ":")
	if index < 0 {
		return "", ""
	}
	return iriString[1:index], iriString[index+1 : len(iriString)-1]
}

// splitIRIInt splits the iri into a string prefix and an int id. It
// returns an error if it fails to convert the id to an int.
func splitIRIInt(iri quad.IRI) (string, int, error) {
	prefix, data := splitIRI(iri)
	id, err := strconv.Atoi(data)
	if err != nil {
		return "", 0, err
	}
	return prefix, id, nil
}

func addQuad(tx *graph.Transaction, source, predicate, target interface{}) {
	tx.AddQuad(quad.Make(
		source,
		predicate,
		target,
		"",
	))
}

func removeQuad(tx *graph.Transaction, source, predicate, target interface{}) {
	tx.RemoveQuad(quad.Make(
		source,
		predicate,
		target,
		"",
	))
}

func replaceTarget(tx *graph.Transaction, source, predicate, oldValue, newValue interface{}) {
	// Remove old value
	removeQuad := quad.Make(
		source,
		predicate,
		oldValue,
		"",
	)
	tx.RemoveQuad(removeQuad)

	// Set new value
	addQuad := quad.Make(
		source,
		predicate,
		newValue,
		"",
	)
	tx.AddQuad(addQuad)
}
