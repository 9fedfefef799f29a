package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecoder(t *testing.T) {
	e := NewEncodeDecoder([]byte("test-key"))

	token, err := e.Encode("5e0cf39e")
	require.NoError(t, err, "encoding should not fail")

	userID, err := e.Decode(token)
	require.NoError(t, err, "decoding should not fail")
	assert.Equal(t, "5e0cf39e", userID)

	// A token signed with another key is rejected.
	other := NewEncodeDecoder([]byte("other-key"))
	_, err = other.Decode(token)
	assert.Error(t, err, "decoding with the wrong key should fail")
}
