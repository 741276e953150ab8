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
	"gt.pro/gtio/go-ucoin/crypto/keystore"
)

var (
	// ErrAlgorithmInvalid cipher not supported
	ErrAlgorithmInvalid = errors.New("cipher not support the algorithm")
)

// Encrypter is a symmetric cipher keyed at construction
type Encrypter interface {
	Algorithm() keystore.Algorithm
	Encrypt(nonce []byte, message []byte) ([]byte, error)
	Decrypt(nonce []byte, ciphertext []byte) ([]byte, error)
}

type Cipher struct {
	cipher Encrypter
}

// NewCipher returns the symmetric cipher alg keyed by seed.
func NewCipher(alg keystore.Algorithm, seed *Seed) (*Cipher, error) {
	c := new(Cipher)
	switch alg {
	case keystore.XSALSA20POLY1305:
		c.cipher = NewSecretBox(seed)
	default:
		return nil, errors.Wrapf(ErrAlgorithmInvalid, "%s", alg)
	}
	return c, nil
}

func (c *Cipher) Algorithm() keystore.Algorithm {
	return c.cipher.Algorithm()
}

func (c *Cipher) Encrypt(nonce []byte, message []byte) ([]byte, error) {
	return c.cipher.Encrypt(nonce, message)
}

func (c *Cipher) Decrypt(nonce []byte, ciphertext []byte) ([]byte, error) {
	return c.cipher.Decrypt(nonce, ciphertext)
}
