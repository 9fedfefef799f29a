package permission

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_Satisfies(t *testing.T) {
	var tts = map[string]struct {
		Held     Level
		Required Level
		Expected bool
	}{
		"reader satisfies reader":        {Reader, Reader, true},
		"reader does not satisfy writer": {Reader, Writer, false},
		"reader does not satisfy exec":   {Reader, Executor, false},
		"writer satisfies reader":        {Writer, Reader, true},
		"writer satisfies writer":        {Writer, Writer, true},
		"writer does not satisfy exec":   {Writer, Executor, false},
		"executor satisfies reader":      {Executor, Reader, true},
		"executor satisfies writer":      {Executor, Writer, true},
		"executor satisfies executor":    {Executor, Executor, true},
	}

	for name, tt := range tts {
		if got := tt.Held.Satisfies(tt.Required); got != tt.Expected {
			t.Errorf("%s: expected %v got %v", name, tt.Expected, got)
		}
	}
}

func TestLevel_Tokens(t *testing.T) {
	var tts = map[Level]string{
		Reader:   "READER",
		Writer:   "WRITER",
		Executor: "EXECUTOR",
	}

	for level, token := range tts {
		assert.Equal(t, token, level.String())

		parsed, err := ParseLevel(token)
		require.NoError(t, err)
		assert.Equal(t, level, parsed)
	}

	_, err := ParseLevel("OWNER")
	assert.Error(t, err, "ownership is not a level")

	_, err = ParseLevel("reader")
	assert.Error(t, err, "tokens are case sensitive")
}

func TestLevel_JSON(t *testing.T) {
	data, err := json.Marshal(Writer)
	require.NoError(t, err)
	assert.Equal(t, `"WRITER"`, string(data))

	var level Level
	err = json.Unmarshal([]byte(`"EXECUTOR"`), &level)
	require.NoError(t, err)
	assert.Equal(t, Executor, level)

	err = json.Unmarshal([]byte(`"ADMIN"`), &level)
	assert.Error(t, err)

	_, err = json.Marshal(Level(42))
	assert.Error(t, err)
}
