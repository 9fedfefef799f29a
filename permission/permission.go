// Package permission decides whether a user may act on a note. Access
// can come from a direct grant, from a grant held by one of the user's
// teams, or from owning the note. The three sources are independent:
// each one alone is enough, and revoking one never touches the others.
package permission

// Grant is a direct authorization of a level for a user on a note.
// Duplicates for the same (user, note) pair may exist; readers only
// care about the maximum.
type Grant struct {
	UserID string `json:"userId"`
	NoteID int    `json:"noteId"`
	Level  Level  `json:"level"`
}

// TeamGrant authorizes a level for every member of a team on a note.
type TeamGrant struct {
	TeamID int   `json:"teamId"`
	NoteID int   `json:"noteId"`
	Level  Level `json:"level"`
}

// GrantRepository is the read side of the direct user grants.
type GrantRepository interface {
	// MaxLevel returns the highest level granted directly to the user
	// on the note. The boolean is false when the user holds no grant at
	// all, which is a regular outcome, not an error.
	MaxLevel(userID string, noteID int) (Level, bool, error)
}

// MembershipRepository resolves the teams a user belongs to. Owning a
// team and being enrolled in it both count as belonging; the result
// carries no duplicates.
type MembershipRepository interface {
	TeamsOf(userID string) ([]int, error)
}

// TeamGrantRepository is the read side of the team grants. ForNote
// returns every grant recorded for the note, whoever asks: filtering
// by the caller's teams is the service's job, which keeps the store
// simple and cacheable.
type TeamGrantRepository interface {
	ForNote(noteID int) ([]TeamGrant, error)
}

// OwnerRepository answers who owns a note. Owner returns an error with
// a 404 code when the note does not exist; a note that exists always
// has exactly one owner.
type OwnerRepository interface {
	Owner(noteID int) (string, error)
}
