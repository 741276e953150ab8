package byteutils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase58(t *testing.T) {
	pub, err := FromHex("f7d68da919331a9bd52a4ff81c8c740e6f76635224895d4c371e68d5c7f31032")
	require.NoError(t, err)
	assert.Equal(t, "HgTTJLAQ5sqfknMq7yLPZbehtuLSsKj9CxWN7k8QvYJd", Base58Encode(pub))

	back, err := Base58Decode("HgTTJLAQ5sqfknMq7yLPZbehtuLSsKj9CxWN7k8QvYJd")
	require.NoError(t, err)
	assert.Equal(t, pub, back)
}

func TestBase58LeadingZeros(t *testing.T) {
	data := []byte{0, 0, 1, 2, 3}
	back, err := Base58Decode(Base58Encode(data))
	require.NoError(t, err)
	assert.Equal(t, data, back)
}

func TestBase58Invalid(t *testing.T) {
	for _, s := range []string{"0abc", "IOl", "ab c", "é"} {
		_, err := Base58Decode(s)
		assert.Equal(t, ErrInvalidBase58, err, s)
	}
}

func TestBase64(t *testing.T) {
	data := bytes.Repeat([]byte{0xfb, 0xff}, 32)
	s := Base64Encode(data)
	back, err := Base64Decode(s)
	require.NoError(t, err)
	assert.Equal(t, data, back)

	_, err = Base64Decode("not base64!")
	assert.Equal(t, ErrInvalidBase64, err)
}

func TestHashHex(t *testing.T) {
	h := Hash{0xab, 0x01}
	assert.Equal(t, HexHash("AB01"), h.Hex())
	back, err := h.Hex().Hash()
	require.NoError(t, err)
	assert.True(t, h.Equals(back))
}

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3}
	Zero(b)
	assert.Equal(t, []byte{0, 0, 0}, b)
	Zero(nil)
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal([]byte{1, 2}, []byte{1, 2}))
	assert.False(t, Equal([]byte{1, 2}, []byte{1, 3}))
	assert.False(t, Equal([]byte{1}, []byte{1, 2}))
}
