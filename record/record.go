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
	"time"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"gt.pro/gtio/go-ucoin/crypto"
	"gt.pro/gtio/go-ucoin/crypto/hash"
	"gt.pro/gtio/go-ucoin/util/byteutils"
)

var (
	ErrInvalidDocument  = errors.New("document is not valid json")
	ErrInvalidHash      = errors.New("record hash does not match document")
	ErrInvalidSignature = errors.New("invalid record signature")
	ErrInvalidIssuer    = errors.New("invalid record issuer")
	ErrIssuerMismatch   = errors.New("record issuer does not match stored issuer")
	ErrRecordNotFound   = errors.New("record not found")
	ErrRecordExists     = errors.New("record already exists")
	ErrMissingID        = errors.New("record id is empty")
	ErrIDMismatch       = errors.New("record id does not match")
)

// Record is a JSON document signed by its issuer.
type Record struct {
	ID        string `json:"id"`
	Issuer    string `json:"issuer"`
	Time      int64  `json:"time"`
	Hash      string `json:"hash"`
	Document  string `json:"document"`
	Signature string `json:"signature"`
}

// NewRecord signs document with id under a fresh record id.
func NewRecord(id *crypto.Identity, document []byte) (*Record, error) {
	r := &Record{
		ID:   uuid.NewV4().String(),
		Time: time.Now().Unix(),
	}
	if err := r.Sign(id, document); err != nil {
		return nil, err
	}
	return r, nil
}

// Sign sets the document, its hash and signature, and the issuer. Id and
// time are left untouched.
func (r *Record) Sign(id *crypto.Identity, document []byte) error {
	if !json.Valid(document) {
		return ErrInvalidDocument
	}
	sig, err := id.Sign(document)
	if err != nil {
		return errors.Wrap(err, "sign record")
	}
	r.Issuer = id.PublicKey()
	r.Document = string(document)
	r.Hash = string(hash.Sha256(document).Hex())
	r.Signature = byteutils.Base64Encode(sig)
	return nil
}

func (r *Record) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}

func FromJSON(data []byte) (*Record, error) {
	r := new(Record)
	if err := json.Unmarshal(data, r); err != nil {
		return nil, errors.Wrap(err, "decode record")
	}
	return r, nil
}
