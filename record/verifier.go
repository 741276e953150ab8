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

package record

import (
	"encoding/json"
	"strings"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"gt.pro/gtio/go-ucoin/crypto"
	"gt.pro/gtio/go-ucoin/crypto/ed25519"
	"gt.pro/gtio/go-ucoin/crypto/hash"
	"gt.pro/gtio/go-ucoin/util/byteutils"
)

const DefaultPubkeyCacheSize = 1024

// Verifier checks record hashes and signatures. Decoded issuer keys are
// kept in a LRU cache.
type Verifier struct {
	keys *lru.Cache
}

func NewVerifier(cacheSize int) (*Verifier, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultPubkeyCacheSize
	}
	keys, err := lru.New(cacheSize)
	if err != nil {
		return nil, err
	}
	return &Verifier{keys: keys}, nil
}

// Verify returns nil when r carries a valid document, hash and signature.
func (v *Verifier) Verify(r *Record) error {
	doc := []byte(r.Document)
	if !json.Valid(doc) {
		return ErrInvalidDocument
	}
	if string(hash.Sha256(doc).Hex()) != strings.ToUpper(r.Hash) {
		return ErrInvalidHash
	}
	pub, err := v.publicKey(r.Issuer)
	if err != nil {
		return err
	}
	sig, err := byteutils.Base64Decode(r.Signature)
	if err != nil {
		return errors.Wrap(ErrInvalidSignature, err.Error())
	}
	signature, err := crypto.NewSignature()
	if err != nil {
		return err
	}
	if err := signature.InitVerify(pub); err != nil {
		return errors.Wrap(ErrInvalidIssuer, err.Error())
	}
	ok, err := signature.Verify(doc, ed25519.NewMessage(nil, sig))
	if err != nil {
		return errors.Wrap(ErrInvalidSignature, err.Error())
	}
	if !ok {
		return ErrInvalidSignature
	}
	return nil
}

func (v *Verifier) publicKey(issuer string) (*ed25519.PublicKey, error) {
	if pub, ok := v.keys.Get(issuer); ok {
		return pub.(*ed25519.PublicKey), nil
	}
	data, err := byteutils.Base58Decode(issuer)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidIssuer, err.Error())
	}
	pub, err := ed25519.NewPublicKey(data)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidIssuer, err.Error())
	}
	v.keys.Add(issuer, pub)
	return pub, nil
}

// CachedKeys number of issuer keys in the cache
func (v *Verifier) CachedKeys() int {
	return v.keys.Len()
}
