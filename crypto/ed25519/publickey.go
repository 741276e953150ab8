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

type PublicKey struct {
	pub []byte
}

// NewPublicKey copies a 32 byte public key.
func NewPublicKey(pub []byte) (*PublicKey, error) {
	pubKey := new(PublicKey)
	if err := pubKey.Decode(pub); err != nil {
		return nil, err
	}
	return pubKey, nil
}

// Algorithm algorithm name
func (k *PublicKey) Algorithm() keystore.Algorithm {
	return keystore.ED25519
}

// Encoded encoded to byte
func (k *PublicKey) Encoded() ([]byte, error) {
	out := make([]byte, len(k.pub))
	copy(out, k.pub)
	return out, nil
}

// Decode decode data to key
func (k *PublicKey) Decode(data []byte) error {
	if len(data) != ed25519.PublicKeySize {
		return errors.Wrapf(keystore.ErrInvalidPublicKeyLength, "got %d bytes", len(data))
	}
	k.pub = make([]byte, ed25519.PublicKeySize)
	copy(k.pub, data)
	return nil
}

// Clear clear key content
func (k *PublicKey) Clear() {
	byteutils.Zero(k.pub)
}

// Verify the detached signature of message.
func (k *PublicKey) Verify(message []byte, signature []byte) (bool, error) {
	return Verify(k.pub, message, signature)
}

// String is the base58 form used on the wire.
func (k *PublicKey) String() string {
	return byteutils.Base58Encode(k.pub)
}
