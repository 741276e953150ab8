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

type SignResult interface {
	// GetSigner return signer public key
	GetSigner() []byte

	// Signature result
	GetData() []byte
}

// Signature interface of different signature algorithm
type Signature interface {

	// Algorithm returns the standard algorithm for this key.
	Algorithm() Algorithm

	// InitSign this object for signing. If this method is called
	// again with a different argument, it negates the effect
	// of this call.
	InitSign(privateKey PrivateKey) error

	// Sign returns the signature together with the signer public key.
	Sign(data []byte) (out SignResult, err error)

	// InitVerify initializes this object for verification. If this method is called
	// again with a different argument, it negates the effect
	// of this call.
	InitVerify(publicKey PublicKey) error

	// Verify the passed-in signature. A signer carried by the SignResult
	// takes precedence over the key given to InitVerify.
	Verify(data []byte, signature SignResult) (bool, error)
}
