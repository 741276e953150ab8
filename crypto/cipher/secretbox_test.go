package cipher

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gt.pro/gtio/go-ucoin/crypto/keystore"
	"gt.pro/gtio/go-ucoin/util/byteutils"
)

var (
	testSeed  = bytes.Repeat([]byte{0x01}, keystore.SeedLength)
	testNonce = bytes.Repeat([]byte{0x02}, keystore.NonceLength)
)

func TestEncryptVector(t *testing.T) {
	ct, err := Encrypt(testSeed, testNonce, []byte("test"))
	require.NoError(t, err)
	assert.Equal(t, "bf7e3e8714e0889915d84443ef6965808900ad89", byteutils.Hex(ct))

	again, err := Encrypt(testSeed, testNonce, []byte("test"))
	require.NoError(t, err)
	assert.Equal(t, ct, again)

	pt, err := Decrypt(testSeed, testNonce, ct)
	require.NoError(t, err)
	assert.Equal(t, []byte("test"), pt)
}

func TestEncryptEmptyVector(t *testing.T) {
	ct, err := Encrypt(testSeed, testNonce, nil)
	require.NoError(t, err)
	assert.Equal(t, "49c3c9a91b6d9aab30356c2abf470434", byteutils.Hex(ct))

	pt, err := Decrypt(testSeed, testNonce, ct)
	require.NoError(t, err)
	assert.NotNil(t, pt)
	assert.Len(t, pt, 0)
}

// NaCl secretbox vector: tag and first ciphertext bytes of the
// classic firstkey/nonce test.
func TestEncryptNaClVector(t *testing.T) {
	key, _ := byteutils.FromHex("1b27556473e985d462cd51197a9a46c76009549eac6474f206c4ee0844f68389")
	nonce, _ := byteutils.FromHex("69696ee955b62b73cd62bda875fc73d68219e0036b7a0b37")
	msg, _ := byteutils.FromHex("be075fc53c81f2d5cf141316ebeb0c7b5228c52a4c62cbd44b66849b64244ffc" +
		"e5ecbaaf33bd751a1ac728d45e6c61296cdc3c01233561f41db66cce314adb31" +
		"0e3be8250c46f06dceea3a7fa1348057e2f6556ad6b1318a024a838f21af1fde" +
		"048977eb48f59ffd4924ca1c60902e52f0a089bc76897040e082f937763848645e0705")

	ct, err := Encrypt(key, nonce, msg)
	require.NoError(t, err)
	assert.Equal(t, "f3ffc7703f9400e52a7dfb4b3d3305d98e993b9f48681273c29650ba32fc76ce48332ea7164d96a4",
		byteutils.Hex(ct[:40]))
}

func TestRoundTripLengths(t *testing.T) {
	for _, n := range []int{0, 1, 15, 16, 17, 31, 32, 33, 64, 1000} {
		msg := bytes.Repeat([]byte{byte(n)}, n)
		ct, err := Encrypt(testSeed, testNonce, msg)
		require.NoError(t, err)
		assert.Len(t, ct, n+keystore.Overhead)

		pt, err := Decrypt(testSeed, testNonce, ct)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(msg, pt), "length %d", n)
	}
}

func TestDecryptTampered(t *testing.T) {
	ct, err := Encrypt(testSeed, testNonce, []byte("a message to protect"))
	require.NoError(t, err)

	for i := 0; i < len(ct)*8; i++ {
		bad := append([]byte(nil), ct...)
		bad[i/8] ^= 1 << uint(i%8)
		pt, err := Decrypt(testSeed, testNonce, bad)
		assert.Nil(t, pt, "bit %d", i)
		assert.Equal(t, keystore.ErrAuthenticationFailure, err, "bit %d", i)
	}
}

func TestDecryptWrongKeyOrNonce(t *testing.T) {
	ct, err := Encrypt(testSeed, testNonce, []byte("test"))
	require.NoError(t, err)

	otherSeed := bytes.Repeat([]byte{0x03}, keystore.SeedLength)
	_, err = Decrypt(otherSeed, testNonce, ct)
	assert.Equal(t, keystore.ErrAuthenticationFailure, err)

	otherNonce := bytes.Repeat([]byte{0x04}, keystore.NonceLength)
	_, err = Decrypt(testSeed, otherNonce, ct)
	assert.Equal(t, keystore.ErrAuthenticationFailure, err)
}

func TestDecryptShort(t *testing.T) {
	for _, n := range []int{0, 1, 15} {
		_, err := Decrypt(testSeed, testNonce, make([]byte, n))
		assert.Equal(t, keystore.ErrAuthenticationFailure, err)
	}
}

func TestInvalidNonceLength(t *testing.T) {
	for _, n := range []int{0, 12, 23, 25, 32} {
		_, err := Encrypt(testSeed, make([]byte, n), []byte("test"))
		assert.Equal(t, keystore.ErrInvalidNonceLength, errors.Cause(err))

		_, err = Decrypt(testSeed, make([]byte, n), make([]byte, 20))
		assert.Equal(t, keystore.ErrInvalidNonceLength, errors.Cause(err))
	}
}

func TestInvalidSeedLength(t *testing.T) {
	_, err := Encrypt(make([]byte, 31), testNonce, []byte("test"))
	assert.Equal(t, keystore.ErrInvalidSeedLength, errors.Cause(err))

	_, err = Decrypt(make([]byte, 33), testNonce, make([]byte, 20))
	assert.Equal(t, keystore.ErrInvalidSeedLength, errors.Cause(err))
}

func TestSecretBoxClearedSeed(t *testing.T) {
	seed, err := NewSeed(testSeed)
	require.NoError(t, err)
	box := NewSecretBox(seed)
	seed.Clear()

	_, err = box.Encrypt(testNonce, []byte("test"))
	assert.Equal(t, keystore.ErrInvalidSeedLength, errors.Cause(err))
}

func TestSecretBoxConcurrent(t *testing.T) {
	seed, err := NewSeed(testSeed)
	require.NoError(t, err)
	box := NewSecretBox(seed)

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func(i int) {
			msg := []byte{byte(i), 1, 2, 3}
			ct, err := box.Encrypt(testNonce, msg)
			if err != nil {
				done <- err
				return
			}
			pt, err := box.Decrypt(testNonce, ct)
			if err == nil && !bytes.Equal(pt, msg) {
				err = errors.New("plaintext mismatch")
			}
			done <- err
		}(i)
	}
	for i := 0; i < 8; i++ {
		assert.NoError(t, <-done)
	}
}

func TestCipher(t *testing.T) {
	seed, err := NewSeed(testSeed)
	require.NoError(t, err)

	c, err := NewCipher(keystore.XSALSA20POLY1305, seed)
	require.NoError(t, err)
	assert.Equal(t, keystore.XSALSA20POLY1305, c.Algorithm())

	ct, err := c.Encrypt(testNonce, []byte("test"))
	require.NoError(t, err)
	assert.Equal(t, "bf7e3e8714e0889915d84443ef6965808900ad89", byteutils.Hex(ct))

	_, err = NewCipher(keystore.ED25519, seed)
	assert.Equal(t, ErrAlgorithmInvalid, errors.Cause(err))
}

func TestSecretBoxEncrypter(t *testing.T) {
	seed, err := NewSeed(testSeed)
	require.NoError(t, err)

	var enc Encrypter = NewSecretBox(seed)
	ct, err := enc.Encrypt(testNonce, []byte("test"))
	require.NoError(t, err)

	direct, err := Encrypt(testSeed, testNonce, []byte("test"))
	require.NoError(t, err)
	assert.Equal(t, direct, ct)

	msg, err := Decrypt(testSeed, testNonce, ct)
	require.NoError(t, err)
	assert.Equal(t, []byte("test"), msg)
}
