package services

import (
	"github.com/bobinette/notenet/permission"
)

// GrantStore is the management side of the direct user grants: the
// permission read contract plus the mutations the owner-facing
// operations need. The decision service itself only ever sees the
// read side.
type GrantStore interface {
	permission.GrantRepository

	ForNote(noteID int) ([]permission.Grant, error)
	Grant(permission.Grant) error
	Revoke(userID string, noteID int) error
	DeleteByNote(noteID int) error
}

// TeamGrantStore is the management side of the team grants.
type TeamGrantStore interface {
	permission.TeamGrantRepository

	Grant(permission.TeamGrant) error
	Revoke(teamID, noteID int) error
	DeleteByNote(noteID int) error
	DeleteByTeam(teamID int) error
}
