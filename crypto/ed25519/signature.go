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
	"gt.pro/gtio/go-ucoin/crypto/keystore"
)

type Message struct {
	signer []byte
	data   []byte
}

func (m *Message) GetData() []byte {
	return m.data
}

func (m *Message) GetSigner() []byte {
	return m.signer
}

// NewMessage pairs a signature with the public key that made it.
func NewMessage(signer, data []byte) *Message {
	return &Message{signer, data}
}

// Signature signature ed25519
type Signature struct {
	privateKey *PrivateKey
	publicKey  *PublicKey
}

// Algorithm ed25519 algorithm
func (s *Signature) Algorithm() keystore.Algorithm {
	return keystore.ED25519
}

// InitSign ed25519 init sign
func (s *Signature) InitSign(priv keystore.PrivateKey) error {
	p, ok := priv.(*PrivateKey)
	if !ok {
		return errors.New("not an ed25519 private key")
	}
	s.privateKey = p
	return nil
}

// Sign ed25519 sign
func (s *Signature) Sign(data []byte) (out keystore.SignResult, err error) {
	if s.privateKey == nil {
		return nil, errors.New("please get private key first")
	}
	signature, err := s.privateKey.Sign(data)
	if err != nil {
		return nil, err
	}
	pub := s.privateKey.PublicKey()
	if pub == nil {
		return nil, ErrGetPublicKeyFailed
	}
	signer, err := pub.Encoded()
	if err != nil {
		return nil, err
	}
	return &Message{
		signer,
		signature,
	}, nil
}

// InitVerify ed25519 verify init
func (s *Signature) InitVerify(pub keystore.PublicKey) error {
	p, ok := pub.(*PublicKey)
	if !ok {
		return errors.New("not an ed25519 public key")
	}
	s.publicKey = p
	return nil
}

// Verify ed25519 verify
func (s *Signature) Verify(data []byte, signature keystore.SignResult) (bool, error) {
	if signature == nil {
		return false, errors.New("signature is nil")
	}
	pub := s.publicKey
	if signature.GetSigner() != nil {
		var err error
		if pub, err = NewPublicKey(signature.GetSigner()); err != nil {
			return false, err
		}
	}
	if pub == nil {
		return false, errors.New("please give public key first")
	}
	return pub.Verify(data, signature.GetData())
}
