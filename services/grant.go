package services

import (
	"fmt"

	"github.com/bobinette/notenet"
	"github.com/bobinette/notenet/errors"
	"github.com/bobinette/notenet/permission"
)

// NoteGrants lists everything recorded for a note, direct user grants
// and team grants side by side.
type NoteGrants struct {
	Users []permission.Grant     `json:"users"`
	Teams []permission.TeamGrant `json:"teams"`
}

// GrantService manages the grants on a note. Every operation here is
// owner-only: holding EXECUTOR lets you edit content, not hand out
// access.
type GrantService struct {
	grants     GrantStore
	teamGrants TeamGrantStore
	teams      notenet.TeamRepository

	permissions *permission.Service
	users       *UserService
}

func NewGrantService(
	grants GrantStore,
	teamGrants TeamGrantStore,
	teams notenet.TeamRepository,
	permissions *permission.Service,
	users *UserService,
) *GrantService {
	return &GrantService{
		grants:      grants,
		teamGrants:  teamGrants,
		teams:       teams,
		permissions: permissions,
		users:       users,
	}
}

func (s *GrantService) GrantUser(callerID string, g permission.Grant) error {
	if !g.Level.Valid() {
		return errors.New(fmt.Sprintf("invalid permission level %d", g.Level), errors.BadRequest())
	}

	if err := s.permissions.RequireOwnership(callerID, g.NoteID); err != nil {
		return err
	}
	if err := s.users.RequireExistence(g.UserID); err != nil {
		return err
	}

	return s.grants.Grant(g)
}

func (s *GrantService) RevokeUser(callerID, userID string, noteID int) error {
	if err := s.permissions.RequireOwnership(callerID, noteID); err != nil {
		return err
	}

	return s.grants.Revoke(userID, noteID)
}

func (s *GrantService) GrantTeam(callerID string, g permission.TeamGrant) error {
	if !g.Level.Valid() {
		return errors.New(fmt.Sprintf("invalid permission level %d", g.Level), errors.BadRequest())
	}

	if err := s.permissions.RequireOwnership(callerID, g.NoteID); err != nil {
		return err
	}

	team, err := s.teams.Get(g.TeamID)
	if err != nil {
		return err
	} else if team.ID == 0 {
		return errTeamNotFound(g.TeamID)
	}

	return s.teamGrants.Grant(g)
}

func (s *GrantService) RevokeTeam(callerID string, teamID, noteID int) error {
	if err := s.permissions.RequireOwnership(callerID, noteID); err != nil {
		return err
	}

	return s.teamGrants.Revoke(teamID, noteID)
}

// ForNote returns every grant on the note. Owner-only: the grant list
// reveals who has access.
func (s *GrantService) ForNote(callerID string, noteID int) (NoteGrants, error) {
	if err := s.permissions.RequireOwnership(callerID, noteID); err != nil {
		return NoteGrants{}, err
	}

	userGrants, err := s.grants.ForNote(noteID)
	if err != nil {
		return NoteGrants{}, err
	}

	teamGrants, err := s.teamGrants.ForNote(noteID)
	if err != nil {
		return NoteGrants{}, err
	}

	return NoteGrants{
		Users: userGrants,
		Teams: teamGrants,
	}, nil
}
