package permission

import (
	"encoding/json"
	"fmt"

	"github.com/bobinette/notenet/errors"
)

// Level is the rank a grant confers on a note. Ranks are explicit
// integers, not declaration positions, so a level can be added between
// two existing ones without renumbering anything.
//
// Higher levels include lower levels. Ownership is not a level: it is
// an identity relation checked separately, and no level substitutes
// for it.
type Level int

const (
	Reader   Level = 100
	Writer   Level = 200
	Executor Level = 300
)

// Satisfies tells whether the level is at least as strong as required.
func (l Level) Satisfies(required Level) bool {
	return l >= required
}

func (l Level) Valid() bool {
	switch l {
	case Reader, Writer, Executor:
		return true
	}
	return false
}

func (l Level) String() string {
	switch l {
	case Reader:
		return "READER"
	case Writer:
		return "WRITER"
	case Executor:
		return "EXECUTOR"
	}
	return "unknown"
}

// ParseLevel reads a wire token. The tokens are part of the client
// contract and never change, even if the ranks behind them do.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "READER":
		return Reader, nil
	case "WRITER":
		return Writer, nil
	case "EXECUTOR":
		return Executor, nil
	}
	return 0, errors.New(fmt.Sprintf("invalid permission level %q", s), errors.BadRequest())
}

func (l Level) MarshalJSON() ([]byte, error) {
	if !l.Valid() {
		return nil, errors.New(fmt.Sprintf("invalid permission level %d", l))
	}
	return json.Marshal(l.String())
}

func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	level, err := ParseLevel(s)
	if err != nil {
		return err
	}

	*l = level
	return nil
}
