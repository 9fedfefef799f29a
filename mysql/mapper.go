package mysql

import (
	"time"

	"github.com/bobinette/notenet/permission"
)

// Levels are stored as their wire tokens so that rows stay readable
// and rank values can move without a migration.
type Grant struct {
	ID uint

	UserID string `gorm:"index:idx_grant_user_note"`
	NoteID int    `gorm:"index:idx_grant_user_note"`
	Level  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func newGrant(g permission.Grant) Grant {
	return Grant{
		UserID: g.UserID,
		NoteID: g.NoteID,
		Level:  g.Level.String(),
	}
}

func (g Grant) format() (permission.Grant, error) {
	level, err := permission.ParseLevel(g.Level)
	if err != nil {
		return permission.Grant{}, err
	}

	return permission.Grant{
		UserID: g.UserID,
		NoteID: g.NoteID,
		Level:  level,
	}, nil
}

type TeamGrant struct {
	ID uint

	TeamID int `gorm:"index:idx_team_grant_team_note"`
	NoteID int `gorm:"index:idx_team_grant_team_note"`
	Level  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func newTeamGrant(g permission.TeamGrant) TeamGrant {
	return TeamGrant{
		TeamID: g.TeamID,
		NoteID: g.NoteID,
		Level:  g.Level.String(),
	}
}

func (g TeamGrant) format() (permission.TeamGrant, error) {
	level, err := permission.ParseLevel(g.Level)
	if err != nil {
		return permission.TeamGrant{}, err
	}

	return permission.TeamGrant{
		TeamID: g.TeamID,
		NoteID: g.NoteID,
		Level:  level,
	}, nil
}
