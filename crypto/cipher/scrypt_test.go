package cipher

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gt.pro/gtio/go-ucoin/crypto/keystore"
	"gt.pro/gtio/go-ucoin/util/byteutils"
)

const abcSeed = "c8df2f9e7f0ce88333cd6ef73c5bbcdc7546a165fc5a62f6ba24e48903291db0"

func TestDeriveSeedVector(t *testing.T) {
	seed, err := DeriveSeedFromText("abc", "abc")
	require.NoError(t, err)
	defer seed.Clear()

	assert.Equal(t, keystore.SeedLength, seed.Len())
	assert.Equal(t, abcSeed, byteutils.Hex(seed.Bytes()))
}

func TestDeriveSeedDeterministic(t *testing.T) {
	a, err := DeriveSeed([]byte("password"), []byte("salt"))
	require.NoError(t, err)
	b, err := DeriveSeed([]byte("password"), []byte("salt"))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	c, err := DeriveSeed([]byte("password"), []byte("salt2"))
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
}

func TestDeriveSeedArgumentOrder(t *testing.T) {
	fromText, err := DeriveSeedFromText("the salt", "the password")
	require.NoError(t, err)
	raw, err := DeriveSeed([]byte("the password"), []byte("the salt"))
	require.NoError(t, err)
	assert.True(t, fromText.Equal(raw))
}

func TestDeriveSeedNonASCII(t *testing.T) {
	_, err := DeriveSeedFromText("abc", "pässword")
	assert.Equal(t, keystore.ErrNonASCIIInput, errors.Cause(err))

	_, err = DeriveSeedFromText("sälz", "abc")
	assert.Equal(t, keystore.ErrNonASCIIInput, errors.Cause(err))
}

func TestDeriveSeedEmptyInputs(t *testing.T) {
	seed, err := DeriveSeedFromText("", "")
	require.NoError(t, err)
	assert.Equal(t, keystore.SeedLength, seed.Len())
}

func TestDeriveSeedContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	seed, err := DeriveSeedContext(ctx, "abc", "abc")
	assert.Nil(t, seed)
	assert.Equal(t, context.Canceled, err)
}

func TestDeriveSeedContext(t *testing.T) {
	seed, err := DeriveSeedContext(context.Background(), "abc", "abc")
	require.NoError(t, err)
	assert.Equal(t, abcSeed, byteutils.Hex(seed.Bytes()))
}

func TestSeedLength(t *testing.T) {
	for _, n := range []int{0, 16, 31, 33, 64} {
		_, err := NewSeed(make([]byte, n))
		assert.Equal(t, keystore.ErrInvalidSeedLength, errors.Cause(err), "length %d", n)
	}
}

func TestSeedClear(t *testing.T) {
	raw := make([]byte, keystore.SeedLength)
	raw[0] = 7
	seed, err := NewSeed(raw)
	require.NoError(t, err)

	raw[0] = 9
	assert.Equal(t, byte(7), seed.Bytes()[0], "seed must own a copy")

	seed.Clear()
	assert.Equal(t, 0, seed.Len())
	assert.NotContains(t, seed.String(), "7")
}
