package notenet

type TeamMember struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Team groups users so that a note can be shared with all of them at
// once. The owner counts as a member for authorization purposes.
type Team struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Owner string `json:"owner"`

	Members []TeamMember `json:"members"`
}

// HasMember tells whether the user belongs to the team, as owner or as
// an enrolled member.
func (t Team) HasMember(userID string) bool {
	if t.Owner == userID {
		return true
	}
	for _, m := range t.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}

type TeamRepository interface {
	// Get returns a team with a zero ID when no team exists for that id.
	Get(int) (Team, error)
	// GetForUser returns the teams the user owns or is enrolled in.
	GetForUser(string) ([]Team, error)

	Upsert(*Team) error
	Delete(int) error
}
