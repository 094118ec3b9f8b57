package dataurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	s := Encode("image/png", []byte{0x89, 'P', 'N', 'G'})
	assert.Equal(t, "data:image/png;base64,iVBORw==", s)

	mimeType, data, err := Decode(s)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)
}

func TestDecodeRejectsRemoteURL(t *testing.T) {
	_, _, err := Decode("https://example.com/a.png")
	assert.ErrorIs(t, err, ErrMalformed)
	assert.False(t, IsDataURL("https://example.com/a.png"))
}

func TestDecodeRejectsNonBase64(t *testing.T) {
	_, _, err := Decode("data:text/plain,hello")
	assert.ErrorIs(t, err, ErrMalformed)
}
