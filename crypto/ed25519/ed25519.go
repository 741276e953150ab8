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
)

var ( // ErrGetPublicKeyFailed private key to public failed
	ErrGetPublicKeyFailed = errors.New("private key to public failed")
	ErrGetSeedFailed      = errors.New("private key to seed failed")
)

// GetPublicKey private key to public key
func GetPublicKey(prikey []byte) ([]byte, error) {
	if len(prikey) != ed25519.PrivateKeySize {
		return nil, ErrGetPublicKeyFailed
	}
	publicKey := make([]byte, ed25519.PublicKeySize)
	copy(publicKey, prikey[ed25519.SeedSize:])
	return publicKey, nil
}

func GetSeed(prikey []byte) ([]byte, error) {
	if len(prikey) != ed25519.PrivateKeySize {
		return nil, ErrGetSeedFailed
	}
	seed := make([]byte, ed25519.SeedSize)
	copy(seed, prikey[:ed25519.SeedSize])
	return seed, nil
}

// Verify verify with public key. A signature of the wrong length is an
// input error, a wrong signature of the right length is false.
func Verify(pubKey []byte, message, sig []byte) (bool, error) {
	if len(pubKey) != ed25519.PublicKeySize {
		return false, errors.Wrapf(keystore.ErrInvalidPublicKeyLength, "got %d bytes", len(pubKey))
	}
	if len(sig) != ed25519.SignatureSize {
		return false, errors.Wrapf(keystore.ErrSignatureLengthMismatch, "got %d bytes", len(sig))
	}
	return ed25519.Verify(pubKey, message, sig), nil
}

// Sign returns the 64 byte detached signature of message. It equals the
// leading bytes of the combined signed message of the reference library.
func Sign(priKey []byte, message []byte) ([]byte, error) {
	if len(priKey) != ed25519.PrivateKeySize {
		return nil, errors.Wrapf(keystore.ErrInvalidSecretKeyLength, "got %d bytes", len(priKey))
	}
	sig := ed25519.Sign(priKey, message)
	if len(sig) != keystore.SignatureLength {
		return nil, keystore.ErrSignatureLengthMismatch
	}
	return sig, nil
}
