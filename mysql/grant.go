package mysql

import (
	"github.com/bobinette/notenet/permission"
)

type GrantRepository struct {
	driver *Driver
}

func NewGrantRepository(driver *Driver) *GrantRepository {
	repo := &GrantRepository{
		driver: driver,
	}
	return repo
}

func (r *GrantRepository) MaxLevel(userID string, noteID int) (permission.Level, bool, error) {
	var dbGrants []Grant
	err := r.driver.db.
		Where("user_id = ? AND note_id = ?", userID, noteID).
		Find(&dbGrants).
		Error
	if err != nil {
		return 0, false, err
	}

	var max permission.Level
	found := false
	for _, dbGrant := range dbGrants {
		grant, err := dbGrant.format()
		if err != nil {
			return 0, false, err
		}

		if !found || grant.Level > max {
			max = grant.Level
		}
		found = true
	}
	return max, found, nil
}

func (r *GrantRepository) ForNote(noteID int) ([]permission.Grant, error) {
	var dbGrants []Grant
	err := r.driver.db.
		Where("note_id = ?", noteID).
		Find(&dbGrants).
		Error
	if err != nil {
		return nil, err
	}

	grants := make([]permission.Grant, len(dbGrants))
	for i, dbGrant := range dbGrants {
		grant, err := dbGrant.format()
		if err != nil {
			return nil, err
		}
		grants[i] = grant
	}
	return grants, nil
}

func (r *GrantRepository) Grant(g permission.Grant) error {
	dbGrant := newGrant(g)
	return r.driver.db.Save(&dbGrant).Error
}

func (r *GrantRepository) Revoke(userID string, noteID int) error {
	return r.driver.db.
		Where("user_id = ? AND note_id = ?", userID, noteID).
		Delete(Grant{}).
		Error
}

func (r *GrantRepository) DeleteByNote(noteID int) error {
	return r.driver.db.
		Where("note_id = ?", noteID).
		Delete(Grant{}).
		Error
}
