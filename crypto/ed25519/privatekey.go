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

package ed25519

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/ed25519"
	"gt.pro/gtio/go-ucoin/crypto/keystore"
	"gt.pro/gtio/go-ucoin/util/byteutils"
)

var (
	ErrInvalidPrivateKey = errors.New("secret key does not embed its public key")
)

// PrivateKey is the expanded 64 byte secret key: seed followed by the
// public key.
type PrivateKey struct {
	seckey []byte
}

func (k *PrivateKey) Algorithm() keystore.Algorithm {
	return keystore.ED25519
}

// Encoded returns a copy of the expanded secret key.
func (k *PrivateKey) Encoded() ([]byte, error) {
	if len(k.seckey) != ed25519.PrivateKeySize {
		return nil, keystore.ErrInvalidSecretKeyLength
	}
	out := make([]byte, len(k.seckey))
	copy(out, k.seckey)
	return out, nil
}

// Decode loads an expanded secret key, checking that its public half is
// the one its seed half expands to.
func (k *PrivateKey) Decode(data []byte) error {
	if len(data) != ed25519.PrivateKeySize {
		return errors.Wrapf(keystore.ErrInvalidSecretKeyLength, "got %d bytes", len(data))
	}
	expanded := ed25519.NewKeyFromSeed(data[:ed25519.SeedSize])
	defer byteutils.Zero(expanded)
	if !byteutils.Equal(expanded, data) {
		return ErrInvalidPrivateKey
	}
	k.Clear()
	k.seckey = make([]byte, ed25519.PrivateKeySize)
	copy(k.seckey, data)
	return nil
}

// NewPrivateKeyFromSeed expands a 32 byte seed. The same seed always yields
// the same key.
func NewPrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, errors.Wrapf(keystore.ErrInvalidSeedLength, "got %d bytes", len(seed))
	}
	seckey := ed25519.NewKeyFromSeed(seed)
	if len(seckey) != keystore.SecretKeyLength {
		return nil, keystore.ErrKeyGeneration
	}
	return &PrivateKey{
		seckey,
	}, nil
}

// Clear clear key content
func (k *PrivateKey) Clear() {
	byteutils.Zero(k.seckey)
	k.seckey = nil
}

// PublicKey returns publickey, nil once the key is cleared.
func (k *PrivateKey) PublicKey() keystore.PublicKey {
	pub, err := GetPublicKey(k.seckey)
	if err != nil {
		return nil
	}
	return &PublicKey{pub}
}

func (k *PrivateKey) Sign(message []byte) ([]byte, error) {
	return Sign(k.seckey, message)
}

// Seed returns seed
func (k *PrivateKey) Seed() ([]byte, error) {
	return GetSeed(k.seckey)
}

// String never prints key material.
func (k *PrivateKey) String() string {
	return "PrivateKey(**redacted**)"
}
