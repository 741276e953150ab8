// Copyright (C) 2018 go-gt authors
//
// This file is part of the go-gt library.
//
// the go-gt library is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// the go-gt library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with the go-gt library.  If not, see <http://www.gnu.org/licenses/>.
//
package crypto

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"gt.pro/gtio/go-ucoin/crypto/cipher"
	"gt.pro/gtio/go-ucoin/crypto/ed25519"
	"gt.pro/gtio/go-ucoin/crypto/keystore"
	"gt.pro/gtio/go-ucoin/metrics"
	"gt.pro/gtio/go-ucoin/util/byteutils"
)

var (
	// ErrIdentityClosed the identity was closed and its secrets wiped
	ErrIdentityClosed = errors.New("identity is closed")
)

// Identity is an account: a seed, the ed25519 key pair expanded from it and
// the secretbox keyed by it. Methods are safe for concurrent use.
type Identity struct {
	mu     sync.RWMutex
	seed   *cipher.Seed
	key    *ed25519.PrivateKey
	box    *cipher.Cipher
	pubKey []byte
}

// NewIdentity derives the identity of (salt, password).
func NewIdentity(salt, password string) (*Identity, error) {
	return NewIdentityContext(context.Background(), salt, password)
}

// NewIdentityContext is NewIdentity with ctx checked around the key
// derivation.
func NewIdentityContext(ctx context.Context, salt, password string) (*Identity, error) {
	timer := metrics.NewTimer("crypto.derive")
	start := time.Now()
	seed, err := cipher.DeriveSeedContext(ctx, salt, password)
	timer.UpdateSince(start)
	if err != nil {
		return nil, err
	}
	return newIdentity(seed)
}

// NewIdentityFromSeed builds an identity from a 32 byte seed. The seed is
// copied; the caller may wipe its own buffer.
func NewIdentityFromSeed(seed []byte) (*Identity, error) {
	s, err := cipher.NewSeed(seed)
	if err != nil {
		return nil, err
	}
	return newIdentity(s)
}

// NewIdentityFromSecretKey rebuilds an identity from its base58 expanded
// secret key.
func NewIdentityFromSecretKey(secretKey string) (*Identity, error) {
	data, err := byteutils.Base58Decode(secretKey)
	if err != nil {
		return nil, err
	}
	defer byteutils.Zero(data)
	priv, err := NewPrivateKey(data)
	if err != nil {
		return nil, err
	}
	defer priv.Clear()
	seed, err := priv.Seed()
	if err != nil {
		return nil, err
	}
	defer byteutils.Zero(seed)
	return NewIdentityFromSeed(seed)
}

// newIdentity takes ownership of seed and clears it on failure.
func newIdentity(seed *cipher.Seed) (*Identity, error) {
	raw := seed.Bytes()
	defer byteutils.Zero(raw)

	key, err := NewPrivateKeyFromSeed(raw)
	if err != nil {
		seed.Clear()
		return nil, errors.Wrap(err, "expand seed")
	}
	pub, err := key.PublicKey().Encoded()
	if err != nil {
		seed.Clear()
		key.Clear()
		return nil, errors.Wrap(keystore.ErrKeyGeneration, err.Error())
	}
	box, err := cipher.NewCipher(keystore.XSALSA20POLY1305, seed)
	if err != nil {
		seed.Clear()
		key.Clear()
		return nil, err
	}
	return &Identity{
		seed:   seed,
		key:    key,
		box:    box,
		pubKey: pub,
	}, nil
}

// PublicKey returns the base58 public key.
func (id *Identity) PublicKey() string {
	return byteutils.Base58Encode(id.pubKey)
}

// PublicKeyBytes returns a copy of the 32 byte public key.
func (id *Identity) PublicKeyBytes() []byte {
	return append([]byte(nil), id.pubKey...)
}

// SecretKey returns the base58 expanded secret key. It must not leave the
// owner's trust boundary.
func (id *Identity) SecretKey() (string, error) {
	id.mu.RLock()
	defer id.mu.RUnlock()
	if id.key == nil {
		return "", ErrIdentityClosed
	}
	data, err := id.key.Encoded()
	if err != nil {
		return "", err
	}
	defer byteutils.Zero(data)
	return byteutils.Base58Encode(data), nil
}

// Sign returns the 64 byte detached signature of message.
func (id *Identity) Sign(message []byte) ([]byte, error) {
	id.mu.RLock()
	defer id.mu.RUnlock()
	if id.key == nil {
		return nil, ErrIdentityClosed
	}
	return id.key.Sign(message)
}

// SignText signs the UTF-8 bytes of message and returns base64.
func (id *Identity) SignText(message string) (string, error) {
	sig, err := id.Sign([]byte(message))
	if err != nil {
		return "", err
	}
	return byteutils.Base64Encode(sig), nil
}

// Encrypt seals message with the seed. The caller supplies a fresh 24 byte
// nonce per message.
func (id *Identity) Encrypt(nonce, message []byte) ([]byte, error) {
	id.mu.RLock()
	defer id.mu.RUnlock()
	if id.box == nil {
		return nil, ErrIdentityClosed
	}
	return id.box.Encrypt(nonce, message)
}

// Decrypt opens a ciphertext produced by Encrypt with the same nonce.
func (id *Identity) Decrypt(nonce, ciphertext []byte) ([]byte, error) {
	id.mu.RLock()
	defer id.mu.RUnlock()
	if id.box == nil {
		return nil, ErrIdentityClosed
	}
	return id.box.Decrypt(nonce, ciphertext)
}

// Close wipes the seed and the secret key. It is idempotent.
func (id *Identity) Close() {
	id.mu.Lock()
	defer id.mu.Unlock()
	if id.seed != nil {
		id.seed.Clear()
		id.seed = nil
	}
	if id.key != nil {
		id.key.Clear()
		id.key = nil
	}
	id.box = nil
}

// String never prints key material.
func (id *Identity) String() string {
	return "Identity(" + id.PublicKey() + ")"
}

// Verify checks a detached signature against a raw public key.
func Verify(message, signature, publicKey []byte) (bool, error) {
	return ed25519.Verify(publicKey, message, signature)
}

// VerifyText checks a base64 signature of document against a base58
// public key. Malformed text is an error; a signature that does not match
// is (false, nil).
func VerifyText(document []byte, signatureText, publicKeyText string) (bool, error) {
	sig, err := byteutils.Base64Decode(signatureText)
	if err != nil {
		return false, errors.Wrap(err, "signature")
	}
	pub, err := byteutils.Base58Decode(publicKeyText)
	if err != nil {
		return false, errors.Wrap(err, "public key")
	}
	return Verify(document, sig, pub)
}

// NewPrivateKey decodes an expanded secret key.
func NewPrivateKey(data []byte) (keystore.PrivateKey, error) {
	priv := new(ed25519.PrivateKey)
	if err := priv.Decode(data); err != nil {
		return nil, err
	}
	return priv, nil
}

func NewPrivateKeyFromSeed(seed []byte) (*ed25519.PrivateKey, error) {
	return ed25519.NewPrivateKeyFromSeed(seed)
}

// NewSignature returns a ed25519 signature
func NewSignature() (keystore.Signature, error) {
	return new(ed25519.Signature), nil
}
