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

package cipher

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/nacl/secretbox"
	"gt.pro/gtio/go-ucoin/crypto/keystore"
	"gt.pro/gtio/go-ucoin/util/byteutils"
)

// The reference construction pads the plaintext with 32 zero bytes and
// strips 16 zero bytes off the raw box. secretbox.Seal already emits that
// net layout, tag first, so the ciphertext is interoperable as is.

// Encrypt seals message under seed and nonce. The result is
// len(message)+Overhead bytes. Never reuse a nonce with the same seed.
func Encrypt(seed, nonce, message []byte) ([]byte, error) {
	s, err := NewSeed(seed)
	if err != nil {
		return nil, err
	}
	defer s.Clear()
	return NewSecretBox(s).Encrypt(nonce, message)
}

// Decrypt opens a ciphertext produced by Encrypt.
func Decrypt(seed, nonce, ciphertext []byte) ([]byte, error) {
	s, err := NewSeed(seed)
	if err != nil {
		return nil, err
	}
	defer s.Clear()
	return NewSecretBox(s).Decrypt(nonce, ciphertext)
}

// SecretBox is the XSalsa20-Poly1305 box keyed directly by a seed.
// It holds no state besides the seed and is safe for concurrent use.
type SecretBox struct {
	seed *Seed
}

// NewSecretBox borrows seed; the caller keeps ownership.
func NewSecretBox(seed *Seed) *SecretBox {
	return &SecretBox{seed}
}

func (b *SecretBox) Algorithm() keystore.Algorithm {
	return keystore.XSALSA20POLY1305
}

func (b *SecretBox) Encrypt(nonce, message []byte) ([]byte, error) {
	n, err := nonceArray(nonce)
	if err != nil {
		return nil, err
	}
	key, err := b.seed.array()
	if err != nil {
		return nil, err
	}
	defer zero(key[:])

	out := secretbox.Seal(nil, message, n, key)
	if len(out) != len(message)+keystore.Overhead {
		return nil, errors.Wrapf(keystore.ErrEncryption, "sealed %d bytes for a %d byte message", len(out), len(message))
	}
	return out, nil
}

// Decrypt returns the plaintext only when the tag verifies. Short or
// tampered input yields ErrAuthenticationFailure and nothing else.
func (b *SecretBox) Decrypt(nonce, ciphertext []byte) ([]byte, error) {
	n, err := nonceArray(nonce)
	if err != nil {
		return nil, err
	}
	key, err := b.seed.array()
	if err != nil {
		return nil, err
	}
	defer zero(key[:])

	out, ok := secretbox.Open(nil, ciphertext, n, key)
	if !ok {
		return nil, keystore.ErrAuthenticationFailure
	}
	if out == nil {
		out = []byte{}
	}
	return out, nil
}

func nonceArray(nonce []byte) (*[keystore.NonceLength]byte, error) {
	if len(nonce) != keystore.NonceLength {
		return nil, errors.Wrapf(keystore.ErrInvalidNonceLength, "got %d bytes", len(nonce))
	}
	n := new([keystore.NonceLength]byte)
	copy(n[:], nonce)
	return n, nil
}

func zero(b []byte) {
	byteutils.Zero(b)
}
