package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("guest1")
	require.NoError(t, err)
	assert.NotEqual(t, "guest1", hash)

	assert.True(t, CheckPasswordHash("guest1", hash))
}

func TestPasswordHashSingleCharFlips(t *testing.T) {
	hash, err := HashPassword("guest1")
	require.NoError(t, err)

	assert.False(t, CheckPasswordHash("guest2", hash))
	assert.False(t, CheckPasswordHash("Guest1", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestDecodeImageDataURI(t *testing.T) {
	contentType, data, err := DecodeImageDataURI("data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, []byte("hello"), data)
}

func TestDecodeImageDataURIRejectsGarbage(t *testing.T) {
	_, _, err := DecodeImageDataURI("not a data uri")
	assert.Error(t, err)

	_, _, err = DecodeImageDataURI("data:image/png;base64,%%%")
	assert.Error(t, err)
}
