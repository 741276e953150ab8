package ed25519

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gt.pro/gtio/go-ucoin/crypto/keystore"
	"gt.pro/gtio/go-ucoin/util/byteutils"
)

// RFC 8032, section 7.1, test 1.
const (
	rfcSeed = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	rfcPub  = "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"
	rfcSig  = "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := byteutils.FromHex(s)
	require.NoError(t, err)
	return b
}

func TestRFC8032Vector(t *testing.T) {
	priv, err := NewPrivateKeyFromSeed(mustHex(t, rfcSeed))
	require.NoError(t, err)

	pub, err := priv.PublicKey().Encoded()
	require.NoError(t, err)
	assert.Equal(t, rfcPub, byteutils.Hex(pub))

	sig, err := priv.Sign(nil)
	require.NoError(t, err)
	assert.Equal(t, rfcSig, byteutils.Hex(sig))

	ok, err := priv.PublicKey().Verify([]byte{}, sig)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestKeyPairFromSeed(t *testing.T) {
	seed := bytes.Repeat([]byte{0x01}, keystore.SeedLength)
	a, err := NewPrivateKeyFromSeed(seed)
	require.NoError(t, err)
	b, err := NewPrivateKeyFromSeed(seed)
	require.NoError(t, err)

	sa, err := a.Encoded()
	require.NoError(t, err)
	sb, err := b.Encoded()
	require.NoError(t, err)
	assert.Equal(t, sa, sb)
	assert.Len(t, sa, keystore.SecretKeyLength)

	pub, err := a.PublicKey().Encoded()
	require.NoError(t, err)
	assert.Len(t, pub, keystore.PublicKeyLength)
	assert.Equal(t, "8a88e3dd7409f195fd52db2d3cba5d72ca6709bf1d94121bf3748801b40f6f5c", byteutils.Hex(pub))
	assert.Equal(t, pub, sa[32:])

	s, err := a.Seed()
	require.NoError(t, err)
	assert.Equal(t, seed, s)
}

func TestInvalidSeedLength(t *testing.T) {
	for _, n := range []int{0, 31, 33, 64} {
		_, err := NewPrivateKeyFromSeed(make([]byte, n))
		assert.Equal(t, keystore.ErrInvalidSeedLength, errors.Cause(err), "length %d", n)
	}
}

func TestSignVerify(t *testing.T) {
	priv, err := NewPrivateKeyFromSeed(bytes.Repeat([]byte{0x01}, keystore.SeedLength))
	require.NoError(t, err)
	pub := priv.PublicKey()

	sig, err := priv.Sign([]byte("test"))
	require.NoError(t, err)
	assert.Equal(t, "7xIjcFB2S8AlFlmPRbxPiDm9DoXSPzaiAoZ7uljMaNjzeGofvCkMUkftclkjcT3LchCs87SVmgmOGMIiBlEqBw==",
		byteutils.Base64Encode(sig))

	for _, msg := range [][]byte{nil, {}, []byte("a"), bytes.Repeat([]byte("x"), 4096)} {
		sig, err := priv.Sign(msg)
		require.NoError(t, err)
		assert.Len(t, sig, keystore.SignatureLength)

		ok, err := pub.Verify(msg, sig)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestVerifyTampered(t *testing.T) {
	priv, err := NewPrivateKeyFromSeed(bytes.Repeat([]byte{0x05}, keystore.SeedLength))
	require.NoError(t, err)
	pub := priv.PublicKey()
	msg := []byte("transfer 10 units")
	sig, err := priv.Sign(msg)
	require.NoError(t, err)

	for i := 0; i < len(sig)*8; i++ {
		bad := append([]byte(nil), sig...)
		bad[i/8] ^= 1 << uint(i%8)
		ok, err := pub.Verify(msg, bad)
		require.NoError(t, err)
		assert.False(t, ok, "signature bit %d", i)
	}
	for i := 0; i < len(msg)*8; i++ {
		bad := append([]byte(nil), msg...)
		bad[i/8] ^= 1 << uint(i%8)
		ok, err := pub.Verify(bad, sig)
		require.NoError(t, err)
		assert.False(t, ok, "message bit %d", i)
	}
}

func TestVerifyLengths(t *testing.T) {
	pub := make([]byte, keystore.PublicKeyLength)
	_, err := Verify(pub, []byte("m"), make([]byte, 63))
	assert.Equal(t, keystore.ErrSignatureLengthMismatch, errors.Cause(err))

	_, err = Verify(make([]byte, 31), []byte("m"), make([]byte, 64))
	assert.Equal(t, keystore.ErrInvalidPublicKeyLength, errors.Cause(err))

	_, err = NewPublicKey(make([]byte, 33))
	assert.Equal(t, keystore.ErrInvalidPublicKeyLength, errors.Cause(err))
}

func TestDecodePrivateKey(t *testing.T) {
	priv, err := NewPrivateKeyFromSeed(mustHex(t, rfcSeed))
	require.NoError(t, err)
	enc, err := priv.Encoded()
	require.NoError(t, err)

	k := new(PrivateKey)
	require.NoError(t, k.Decode(enc))
	pub, err := k.PublicKey().Encoded()
	require.NoError(t, err)
	assert.Equal(t, rfcPub, byteutils.Hex(pub))

	enc[40] ^= 0xff
	assert.Equal(t, ErrInvalidPrivateKey, k.Decode(enc))

	err = k.Decode(enc[:32])
	assert.Equal(t, keystore.ErrInvalidSecretKeyLength, errors.Cause(err))
}

func TestClear(t *testing.T) {
	priv, err := NewPrivateKeyFromSeed(mustHex(t, rfcSeed))
	require.NoError(t, err)
	priv.Clear()

	assert.Nil(t, priv.PublicKey())
	_, err = priv.Sign([]byte("m"))
	assert.Equal(t, keystore.ErrInvalidSecretKeyLength, errors.Cause(err))
	_, err = priv.Encoded()
	assert.Error(t, err)
	assert.NotContains(t, priv.String(), "9d61")
}

func TestSignature(t *testing.T) {
	priv, err := NewPrivateKeyFromSeed(mustHex(t, rfcSeed))
	require.NoError(t, err)

	signer := new(Signature)
	assert.Equal(t, keystore.ED25519, signer.Algorithm())
	require.NoError(t, signer.InitSign(priv))
	res, err := signer.Sign([]byte("data"))
	require.NoError(t, err)
	assert.Equal(t, rfcPub, byteutils.Hex(res.GetSigner()))

	verifier := new(Signature)
	ok, err := verifier.Verify([]byte("data"), res)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, verifier.InitVerify(priv.PublicKey()))
	ok, err = verifier.Verify([]byte("other"), NewMessage(nil, res.GetData()))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = new(Signature).Verify([]byte("data"), NewMessage(nil, res.GetData()))
	assert.Error(t, err)

	ok, err = verifier.Verify([]byte("data"), nil)
	assert.Error(t, err)
	assert.False(t, ok)
}
