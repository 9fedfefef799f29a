package mysql

import (
	"github.com/bobinette/notenet/permission"
)

type TeamGrantRepository struct {
	driver *Driver
}

func NewTeamGrantRepository(driver *Driver) *TeamGrantRepository {
	repo := &TeamGrantRepository{
		driver: driver,
	}
	return repo
}

func (r *TeamGrantRepository) ForNote(noteID int) ([]permission.TeamGrant, error) {
	var dbGrants []TeamGrant
	err := r.driver.db.
		Where("note_id = ?", noteID).
		Find(&dbGrants).
		Error
	if err != nil {
		return nil, err
	}

	grants := make([]permission.TeamGrant, len(dbGrants))
	for i, dbGrant := range dbGrants {
		grant, err := dbGrant.format()
		if err != nil {
			return nil, err
		}
		grants[i] = grant
	}
	return grants, nil
}

func (r *TeamGrantRepository) Grant(g permission.TeamGrant) error {
	dbGrant := newTeamGrant(g)
	return r.driver.db.Save(&dbGrant).Error
}

func (r *TeamGrantRepository) Revoke(teamID, noteID int) error {
	return r.driver.db.
		Where("team_id = ? AND note_id = ?", teamID, noteID).
		Delete(TeamGrant{}).
		Error
}

func (r *TeamGrantRepository) DeleteByNote(noteID int) error {
	return r.driver.db.
		Where("note_id = ?", noteID).
		Delete(TeamGrant{}).
		Error
}

func (r *TeamGrantRepository) DeleteByTeam(teamID int) error {
	return r.driver.db.
		Where("team_id = ?", teamID).
		Delete(TeamGrant{}).
		Error
}
