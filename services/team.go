package services

import (
	"fmt"

	"github.com/bobinette/notenet"
	"github.com/bobinette/notenet/errors"
)

type TeamService struct {
	repository     notenet.TeamRepository
	userRepository notenet.UserRepository
	teamGrants     TeamGrantStore
}

func NewTeamService(repo notenet.TeamRepository, userRepo notenet.UserRepository, teamGrants TeamGrantStore) *TeamService {
	return &TeamService{
		repository:     repo,
		userRepository: userRepo,
		teamGrants:     teamGrants,
	}
}

func (s *TeamService) Get(callerID string, teamID int) (notenet.Team, error) {
	team, err := s.repository.Get(teamID)
	if err != nil {
		return notenet.Team{}, err
	}

	// team.ID == 0 means that there was no team in the database
	if team.ID == 0 {
		return notenet.Team{}, errTeamNotFound(teamID)
	}

	// Non-members get a 404, not a 403: the team's existence is not
	// theirs to learn.
	if !team.HasMember(callerID) {
		return notenet.Team{}, errTeamNotFound(teamID)
	}

	return team, nil
}

func (s *TeamService) My(callerID string) ([]notenet.Team, error) {
	return s.repository.GetForUser(callerID)
}

// Create inserts a team owned by the caller. Whatever members the
// payload carried are dropped: a new team starts with its owner only.
func (s *TeamService) Create(callerID string, team notenet.Team) (notenet.Team, error) {
	if team.Name == "" {
		return notenet.Team{}, errors.New("team name is required", errors.BadRequest())
	}

	team.ID = 0
	team.Owner = callerID
	team.Members = []notenet.TeamMember{}

	if err := s.repository.Upsert(&team); err != nil {
		return notenet.Team{}, err
	}

	return team, nil
}

// Invite adds the user registered under memberEmail to the team. Only
// the owner invites.
func (s *TeamService) Invite(callerID string, teamID int, memberEmail string) (notenet.Team, error) {
	team, err := s.Get(callerID, teamID)
	if err != nil {
		return notenet.Team{}, err
	}

	if team.Owner != callerID {
		return notenet.Team{}, errNotTeamOwner(teamID)
	}

	user, err := s.userRepository.GetByEmail(memberEmail)
	if err != nil {
		return notenet.Team{}, err
	} else if user == nil {
		return notenet.Team{}, errors.New(fmt.Sprintf("no user found for email %s", memberEmail), errors.NotFound())
	}

	if team.HasMember(user.ID) {
		return team, nil
	}

	team.Members = append(team.Members, notenet.TeamMember{ID: user.ID, Name: user.Name, Email: user.Email})
	if err := s.repository.Upsert(&team); err != nil {
		return notenet.Team{}, err
	}

	return team, nil
}

// Kick removes a member. The owner can kick anyone but themselves; a
// member can kick themselves, i.e. leave the team.
func (s *TeamService) Kick(callerID string, teamID int, memberID string) (notenet.Team, error) {
	team, err := s.Get(callerID, teamID)
	if err != nil {
		return notenet.Team{}, err
	}

	if callerID != memberID && team.Owner != callerID {
		return notenet.Team{}, errNotTeamOwner(teamID)
	}

	if memberID == team.Owner {
		return notenet.Team{}, errors.New("cannot kick the team owner", errors.BadRequest())
	}

	index := -1
	for i, member := range team.Members {
		if member.ID == memberID {
			index = i
			break
		}
	}

	if index == -1 {
		return notenet.Team{}, errors.New(fmt.Sprintf("user %s is not a member of team %d", memberID, teamID), errors.NotFound())
	}
	team.Members = append(team.Members[:index], team.Members[index+1:]...)

	if err := s.repository.Upsert(&team); err != nil {
		return notenet.Team{}, err
	}

	return team, nil
}

// Delete removes the team and every grant it held. Only the owner
// deletes; note access through other sources is untouched.
func (s *TeamService) Delete(callerID string, teamID int) error {
	team, err := s.Get(callerID, teamID)
	if err != nil {
		return err
	}

	if team.Owner != callerID {
		return errNotTeamOwner(teamID)
	}

	if err := s.teamGrants.DeleteByTeam(teamID); err != nil {
		return err
	}

	return s.repository.Delete(teamID)
}
