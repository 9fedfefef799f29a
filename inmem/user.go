package inmem

import (
	"sync"

	"github.com/bobinette/notenet"
)

type UserRepository struct {
	mu    sync.Locker
	users []notenet.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		mu:    &sync.Mutex{},
		users: make([]notenet.User, 0),
	}
}

func (r *UserRepository) Get(id string) (*notenet.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.ID == id {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) GetByEmail(email string) (*notenet.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) Upsert(user *notenet.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = *user
			return nil
		}
	}
	r.users = append(r.users, *user)
	return nil
}

func (r *UserRepository) List() ([]*notenet.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]*notenet.User, len(r.users))
	for i := range r.users {
		u := r.users[i]
		users[i] = &u
	}
	return users, nil
}
