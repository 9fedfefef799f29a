package notenet

type SigningKey struct {
	Key string `json:"k"`
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UserRepository interface {
	// Get returns nil when no user exists for that id.
	Get(string) (*User, error)
	GetByEmail(string) (*User, error)
	Upsert(*User) error
	List() ([]*User, error)
}
