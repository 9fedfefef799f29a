package services

import (
	"fmt"

	"github.com/bobinette/notenet/errors"
)

// errUserNotFound returns a 404 for when a user could not be found.
func errUserNotFound(id string) error {
	return errors.New(fmt.Sprintf("No user for id %s", id), errors.NotFound())
}

// errNoteNotFound returns a 404 for when a note could not be found.
func errNoteNotFound(id int) error {
	return errors.New(fmt.Sprintf("No note for id %d", id), errors.NotFound())
}

// errTeamNotFound returns a 404 for when a team could not be found.
func errTeamNotFound(id int) error {
	return errors.New(fmt.Sprintf("No team for id %d", id), errors.NotFound())
}

// errParagraphNotFound returns a 404 for when a paragraph could not be found.
func errParagraphNotFound(id int) error {
	return errors.New(fmt.Sprintf("No paragraph for id %d", id), errors.NotFound())
}

// errNotTeamOwner returns a 403 for when team owner privilege is needed.
func errNotTeamOwner(id int) error {
	return errors.New(fmt.Sprintf("You are not the owner of team %d", id), errors.Forbidden())
}
