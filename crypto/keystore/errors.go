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

package keystore

import "github.com/pkg/errors"

var (
	// ErrKeyDerivation the key derivation primitive failed
	ErrKeyDerivation = errors.New("key derivation failed")
	// ErrKeyGeneration the keypair expansion failed
	ErrKeyGeneration = errors.New("key pair generation failed")
	// ErrInvalidNonceLength nonce is not NonceLength bytes
	ErrInvalidNonceLength = errors.New("invalid nonce length")
	// ErrInvalidSeedLength seed is not SeedLength bytes
	ErrInvalidSeedLength = errors.New("invalid seed length")
	// ErrInvalidSecretKeyLength secret key is not SecretKeyLength bytes
	ErrInvalidSecretKeyLength = errors.New("invalid secret key length")
	// ErrInvalidPublicKeyLength public key is not PublicKeyLength bytes
	ErrInvalidPublicKeyLength = errors.New("invalid public key length")
	// ErrEncryption the box primitive failed
	ErrEncryption = errors.New("encryption failed")
	// ErrAuthenticationFailure the box did not open
	ErrAuthenticationFailure = errors.New("ciphertext failed verification")
	// ErrSignatureLengthMismatch signature is not SignatureLength bytes
	ErrSignatureLengthMismatch = errors.New("signature length mismatch")
	// ErrNonASCIIInput salt or password holds characters outside US-ASCII
	ErrNonASCIIInput = errors.New("salt and password must be US-ASCII")
)

// ErrorClass groups errors by who is expected to act on them.
type ErrorClass int

const (
	// ClassUnknown not an error of this package
	ClassUnknown ErrorClass = iota
	// ClassInput malformed input: lengths or encodings
	ClassInput
	// ClassCrypto well formed input that failed a cryptographic check
	ClassCrypto
	// ClassPrimitive the underlying primitive or environment failed
	ClassPrimitive
)

func (c ErrorClass) String() string {
	switch c {
	case ClassInput:
		return "input"
	case ClassCrypto:
		return "crypto"
	case ClassPrimitive:
		return "primitive"
	default:
		return "unknown"
	}
}

// Class returns the class of err, looking through wrapped context.
func Class(err error) ErrorClass {
	switch errors.Cause(err) {
	case ErrInvalidNonceLength, ErrInvalidSeedLength, ErrInvalidSecretKeyLength,
		ErrInvalidPublicKeyLength, ErrSignatureLengthMismatch, ErrNonASCIIInput:
		return ClassInput
	case ErrAuthenticationFailure:
		return ClassCrypto
	case ErrKeyDerivation, ErrKeyGeneration, ErrEncryption:
		return ClassPrimitive
	default:
		return ClassUnknown
	}
}
