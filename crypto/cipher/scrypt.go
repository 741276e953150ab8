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
	"context"

	"github.com/pkg/errors"
	"golang.org/x/crypto/scrypt"
	"gt.pro/gtio/go-ucoin/crypto/keystore"
)

// Scrypt parameters. They are part of the wire format: every identity
// derived so far depends on them, so any change needs a new ScryptVersion.
const (
	ScryptKDF     = "scrypt"
	ScryptVersion = 1
	ScryptN       = 4096
	ScryptR       = 16
	ScryptP       = 1
	// ScryptDKLen get derived key length
	ScryptDKLen = keystore.SeedLength
)

// DeriveSeed runs scrypt over the raw password and salt bytes.
func DeriveSeed(password, salt []byte) (*Seed, error) {
	dk, err := scrypt.Key(password, salt, ScryptN, ScryptR, ScryptP, ScryptDKLen)
	if err != nil {
		return nil, errors.Wrapf(keystore.ErrKeyDerivation, "%s: %v", ScryptKDF, err)
	}
	return &Seed{dk}, nil
}

// DeriveSeedFromText encodes salt and password one byte per character and
// derives the seed. Only US-ASCII is accepted: other clients of the network
// disagree on how to encode anything wider, which would silently yield a
// different identity.
func DeriveSeedFromText(salt, password string) (*Seed, error) {
	s, err := asciiBytes(salt)
	if err != nil {
		return nil, errors.Wrap(err, "salt")
	}
	p, err := asciiBytes(password)
	if err != nil {
		return nil, errors.Wrap(err, "password")
	}
	defer zero(p)
	return DeriveSeed(p, s)
}

// DeriveSeedContext is DeriveSeedFromText with cancellation checked before
// and after the derivation. A seed computed after ctx is done is zeroed.
func DeriveSeedContext(ctx context.Context, salt, password string) (*Seed, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	seed, err := DeriveSeedFromText(salt, password)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		seed.Clear()
		return nil, err
	}
	return seed, nil
}

func asciiBytes(s string) ([]byte, error) {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			zero(b)
			return nil, keystore.ErrNonASCIIInput
		}
		b[i] = s[i]
	}
	return b, nil
}
