package services

import (
	"github.com/bobinette/notenet"
	"github.com/bobinette/notenet/errors"
)

type UserService struct {
	repository notenet.UserRepository
}

func NewUserService(repo notenet.UserRepository) *UserService {
	return &UserService{
		repository: repo,
	}
}

func (s *UserService) Get(id string) (notenet.User, error) {
	user, err := s.repository.Get(id)
	if err != nil {
		return notenet.User{}, err
	} else if user == nil {
		return notenet.User{}, errUserNotFound(id)
	}

	return *user, nil
}

// RequireExistence fails with a 404 when no user is registered under
// id. Owner transfers go through here so a note can never end up owned
// by nobody.
func (s *UserService) RequireExistence(id string) error {
	user, err := s.repository.Get(id)
	if err != nil {
		return err
	} else if user == nil {
		return errUserNotFound(id)
	}

	return nil
}

func (s *UserService) Upsert(user notenet.User) (notenet.User, error) {
	if user.ID == "" {
		return notenet.User{}, errors.New("user id is required", errors.BadRequest())
	}
	if user.Email == "" {
		return notenet.User{}, errors.New("user email is required", errors.BadRequest())
	}

	if err := s.repository.Upsert(&user); err != nil {
		return notenet.User{}, err
	}

	return user, nil
}

func (s *UserService) List() ([]*notenet.User, error) {
	return s.repository.List()
}
