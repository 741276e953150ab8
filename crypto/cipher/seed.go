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
	"gt.pro/gtio/go-ucoin/util/byteutils"
)

// Seed is the 32 byte secret an identity and its box are keyed by.
// The holder owns the buffer and must call Clear when done.
type Seed struct {
	b []byte
}

// NewSeed copies data into a new Seed.
func NewSeed(data []byte) (*Seed, error) {
	if len(data) != keystore.SeedLength {
		return nil, errors.Wrapf(keystore.ErrInvalidSeedLength, "got %d bytes", len(data))
	}
	b := make([]byte, keystore.SeedLength)
	copy(b, data)
	return &Seed{b}, nil
}

// Bytes returns a copy of the seed. Callers should zero it after use.
func (s *Seed) Bytes() []byte {
	out := make([]byte, len(s.b))
	copy(out, s.b)
	return out
}

// Len is SeedLength until Clear is called, then zero.
func (s *Seed) Len() int {
	return len(s.b)
}

// Equal compares seeds in constant time.
func (s *Seed) Equal(o *Seed) bool {
	if s == nil || o == nil {
		return s == o
	}
	return byteutils.Equal(s.b, o.b)
}

// Clear zeroes the seed and releases it.
func (s *Seed) Clear() {
	byteutils.Zero(s.b)
	s.b = nil
}

// String never prints key material.
func (s *Seed) String() string {
	return "Seed(**redacted**)"
}

func (s *Seed) array() (*[keystore.SeedLength]byte, error) {
	if len(s.b) != keystore.SeedLength {
		return nil, keystore.ErrInvalidSeedLength
	}
	k := new([keystore.SeedLength]byte)
	copy(k[:], s.b)
	return k, nil
}
