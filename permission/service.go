package permission

import (
	"context"
	"fmt"

	"github.com/bobinette/notenet/errors"
	"github.com/bobinette/notenet/users"
)

// Service composes the read contracts into the two decisions the rest
// of the application relies on. It holds no state of its own: every
// decision re-reads the current facts, so a revocation takes effect on
// the very next call, and concurrent decisions are safe.
type Service struct {
	grants      GrantRepository
	teamGrants  TeamGrantRepository
	memberships MembershipRepository
	owners      OwnerRepository
}

func NewService(grants GrantRepository, teamGrants TeamGrantRepository, memberships MembershipRepository, owners OwnerRepository) *Service {
	return &Service{
		grants:      grants,
		teamGrants:  teamGrants,
		memberships: memberships,
		owners:      owners,
	}
}

// RequirePermission returns nil if the user holds required on the
// note through a direct grant, through one of their teams, or by
// owning the note. The direct grant is checked first: it is a single
// lookup, where team standing costs two lookups and an intersection.
//
// When every source misses, the note's existence decides the outcome:
// a missing note surfaces as the owner lookup's 404, never as a 403.
func (s *Service) RequirePermission(userID string, noteID int, required Level) error {
	level, ok, err := s.grants.MaxLevel(userID, noteID)
	if err != nil {
		return err
	}
	if ok && level.Satisfies(required) {
		return nil
	}

	ok, err = s.hasTeamStanding(userID, noteID, required)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	// The owner passes every permission check without holding a grant.
	owner, err := s.owners.Owner(noteID)
	if err != nil {
		return err
	}
	if owner == userID {
		return nil
	}

	return errors.New(
		fmt.Sprintf("user %s does not have permission %s on note %d", userID, required, noteID),
		errors.Forbidden(),
	)
}

// RequireOwnership returns nil only if the user owns the note. This is
// an identity comparison, never a rank comparison: no grant, not even
// EXECUTOR, substitutes for it. Destructive operations (delete, owner
// transfer) go through here.
func (s *Service) RequireOwnership(userID string, noteID int) error {
	owner, err := s.owners.Owner(noteID)
	if err != nil {
		return err
	}

	if owner != userID {
		return errors.New(
			fmt.Sprintf("user %s must be the owner of note %d", userID, noteID),
			errors.Forbidden(),
		)
	}

	return nil
}

// RequirePermissionFromContext is RequirePermission for the acting
// user carried by the request context.
func (s *Service) RequirePermissionFromContext(ctx context.Context, noteID int, required Level) error {
	user, err := users.FromContext(ctx)
	if err != nil {
		return err
	}
	return s.RequirePermission(user.ID, noteID, required)
}

// RequireOwnershipFromContext is RequireOwnership for the acting user
// carried by the request context.
func (s *Service) RequireOwnershipFromContext(ctx context.Context, noteID int) error {
	user, err := users.FromContext(ctx)
	if err != nil {
		return err
	}
	return s.RequireOwnership(user.ID, noteID)
}

func (s *Service) hasTeamStanding(userID string, noteID int, required Level) (bool, error) {
	teams, err := s.memberships.TeamsOf(userID)
	if err != nil {
		return false, err
	}
	if len(teams) == 0 {
		return false, nil
	}

	mine := make(map[int]struct{}, len(teams))
	for _, id := range teams {
		mine[id] = struct{}{}
	}

	grants, err := s.teamGrants.ForNote(noteID)
	if err != nil {
		return false, err
	}

	for _, grant := range grants {
		if !grant.Level.Satisfies(required) {
			continue
		}
		if _, ok := mine[grant.TeamID]; ok {
			return true, nil
		}
	}

	return false, nil
}
