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

package byteutils

import (
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"runtime"
	"strings"

	"github.com/btcsuite/btcutil/base58"
)

var (
	// ErrInvalidBase58 input holds characters outside the bitcoin alphabet
	ErrInvalidBase58 = errors.New("invalid base58 string")
	// ErrInvalidBase64 input is not standard padded base64
	ErrInvalidBase64 = errors.New("invalid base64 string")
)

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// Hash a digest, printed as upper case hex.
type Hash []byte

// HexHash is the hex string of a hash
type HexHash string

// Hex return hex encoded hash.
func (h Hash) Hex() HexHash {
	return HexHash(strings.ToUpper(Hex(h)))
}

// Base58 return base58 encodes string
func (h Hash) Base58() string {
	return base58.Encode(h)
}

func (h Hash) Bytes() []byte {
	return []byte(h)
}

func (h Hash) Equals(b Hash) bool {
	return Equal(h, b)
}

func (h Hash) String() string {
	return string(h.Hex())
}

// Hash decode the hex string, either case.
func (hh HexHash) Hash() (Hash, error) {
	v, err := FromHex(string(hh))
	if err != nil {
		return nil, err
	}
	return Hash(v), nil
}

// Base58Encode encodes keys for transport.
func Base58Encode(data []byte) string {
	return base58.Encode(data)
}

// Base58Decode is the inverse of Base58Encode. The library silently maps bad
// input to an empty slice, so the alphabet is checked first.
func Base58Decode(s string) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(base58Alphabet, s[i]) < 0 {
			return nil, ErrInvalidBase58
		}
	}
	return base58.Decode(s), nil
}

// Base64Encode encodes signatures with the standard padded alphabet.
func Base64Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Base64Decode decode base64
func Base64Decode(s string) ([]byte, error) {
	out, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, ErrInvalidBase64
	}
	return out, nil
}

// Hex return hex encoded string
func Hex(data []byte) string {
	return hex.EncodeToString(data)
}

// FromHex decode hex string
func FromHex(data string) ([]byte, error) {
	return hex.DecodeString(data)
}

// Equal checks whether byte slice a and b are equal, in time independent of
// their content.
func Equal(a []byte, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Zero overwrites b with zeros.
//
//go:noinline
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}
