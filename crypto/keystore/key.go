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

// Algorithm type alias
type Algorithm uint8

const (
	// ED25519 a type of signer
	ED25519 Algorithm = 1

	// SCRYPT a type of seed derivation
	SCRYPT Algorithm = 1 << 4

	// XSALSA20POLY1305 a type of symmetric box keyed by the seed
	XSALSA20POLY1305 Algorithm = 1 << 5
)

const (
	// SeedLength length of a seed in bytes
	SeedLength = 32
	// PublicKeyLength length of an ed25519 public key
	PublicKeyLength = 32
	// SecretKeyLength length of an expanded ed25519 secret key
	SecretKeyLength = 64
	// SignatureLength length of a detached signature
	SignatureLength = 64
	// NonceLength length of a secretbox nonce
	NonceLength = 24
	// Overhead bytes added to a message by the secretbox
	Overhead = 16
)

func (a Algorithm) String() string {
	switch a {
	case ED25519:
		return "ed25519"
	case SCRYPT:
		return "scrypt"
	case XSALSA20POLY1305:
		return "xsalsa20poly1305"
	default:
		return "unknown"
	}
}

// Key interface
type Key interface {

	// Algorithm returns the standard algorithm for this key. For
	// example, "ED25519" would indicate that this key is a ED25519 key.
	Algorithm() Algorithm

	// Encoded returns the key in its primary encoding format.
	Encoded() ([]byte, error)

	// Decode decode data to key
	Decode(data []byte) error

	// Clear clear key content
	Clear()
}

// PrivateKey privatekey interface
type PrivateKey interface {
	Key

	// Seed returns a copy of the 32 byte seed the key was expanded from
	Seed() ([]byte, error)

	// PublicKey returns publickey
	PublicKey() PublicKey

	// Sign returns the detached signature of message
	Sign(message []byte) ([]byte, error)
}

// PublicKey publickey interface
type PublicKey interface {
	Key

	//verify sign
	Verify(message []byte, signature []byte) (bool, error)
}
