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

package ucoin

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"gt.pro/gtio/go-ucoin/crypto"
	"gt.pro/gtio/go-ucoin/crypto/keystore"
	"gt.pro/gtio/go-ucoin/record"
	"gt.pro/gtio/go-ucoin/util/byteutils"
	"gt.pro/gtio/go-ucoin/util/config"
	"gt.pro/gtio/go-ucoin/util/logging"
)

var (
	ErrInvalidSignature = errors.New("signature is not valid")
	ErrMissingArgument  = errors.New("missing argument")
)

var (
	// ConfigFlag config file path
	ConfigFlag = cli.StringFlag{
		Name:  "config, c",
		Usage: "load configuration from `FILE`",
	}

	SaltFlag = cli.StringFlag{
		Name:  "salt, s",
		Usage: "identity salt (prompted when absent)",
	}

	PasswordFlag = cli.StringFlag{
		Name:  "password, p",
		Usage: "identity password (prompted when absent)",
	}

	SecretKeyFlag = cli.StringFlag{
		Name:  "seckey",
		Usage: "base58 secret key, used instead of salt and password",
	}

	NonceFlag = cli.StringFlag{
		Name:  "nonce, n",
		Usage: "base58 24 byte nonce",
	}

	identityFlags = []cli.Flag{SaltFlag, PasswordFlag, SecretKeyFlag}
)

type command struct {
	config *config.Config
	prompt Prompter
	out    io.Writer
}

// NewApp returns the ucoin command line. Output goes to out; prompt is
// used for a missing salt or password.
func NewApp(out io.Writer, prompt Prompter) *cli.App {
	cmd := &command{prompt: prompt, out: out}

	app := cli.NewApp()
	app.Name = "ucoin"
	app.Usage = "deterministic ucoin identities: keys, signatures and sealed boxes"
	app.Version = "1.0.0"
	app.Writer = out
	app.Flags = []cli.Flag{ConfigFlag}
	app.Before = cmd.before
	app.Commands = []cli.Command{
		{
			Name:   "keys",
			Usage:  "print the public and secret key of an identity",
			Flags:  identityFlags,
			Action: cmd.keys,
		},
		{
			Name:      "sign",
			Usage:     "sign a message",
			ArgsUsage: "<message>",
			Flags:     identityFlags,
			Action:    cmd.sign,
		},
		{
			Name:      "verify",
			Usage:     "verify a base64 signature against a base58 public key",
			ArgsUsage: "<message> <signature> <pubkey>",
			Action:    cmd.verify,
		},
		{
			Name:      "encrypt",
			Usage:     "seal a message with the identity seed",
			ArgsUsage: "<message>",
			Flags:     append([]cli.Flag{NonceFlag}, identityFlags...),
			Action:    cmd.encrypt,
		},
		{
			Name:      "decrypt",
			Usage:     "open a base58 ciphertext with the identity seed",
			ArgsUsage: "<ciphertext>",
			Flags:     append([]cli.Flag{NonceFlag}, identityFlags...),
			Action:    cmd.decrypt,
		},
		{
			Name:  "record",
			Usage: "manage signed records",
			Subcommands: []cli.Command{
				{
					Name:      "put",
					Usage:     "sign and store a json document",
					ArgsUsage: "<json>",
					Flags:     identityFlags,
					Action:    cmd.recordPut,
				},
				{
					Name:      "update",
					Usage:     "sign and replace the document of a stored record",
					ArgsUsage: "<id> <json>",
					Flags:     identityFlags,
					Action:    cmd.recordUpdate,
				},
				{
					Name:      "get",
					Usage:     "print a stored record",
					ArgsUsage: "<id>",
					Action:    cmd.recordGet,
				},
				{
					Name:   "list",
					Usage:  "print every stored record",
					Action: cmd.recordList,
				},
			},
		},
	}
	return app
}

func (cmd *command) before(c *cli.Context) error {
	conf, err := config.InitConfig(c.GlobalString("config"))
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	logging.InitFromConfig(conf)
	cmd.config = conf
	return nil
}

func (cmd *command) identity(c *cli.Context) (*crypto.Identity, error) {
	if sec := c.String("seckey"); sec != "" {
		return crypto.NewIdentityFromSecretKey(sec)
	}

	var err error
	salt := c.String("salt")
	if salt == "" {
		if salt, err = cmd.prompt("Salt: ", false); err != nil {
			return nil, err
		}
	}
	password := c.String("password")
	if password == "" {
		if password, err = cmd.prompt("Password: ", true); err != nil {
			return nil, err
		}
	}
	return crypto.NewIdentity(salt, password)
}

func (cmd *command) node() (*Ucoin, error) {
	node, err := New(cmd.config)
	if err != nil {
		return nil, err
	}
	if err := node.Setup(); err != nil {
		return nil, err
	}
	return node, nil
}

func args(c *cli.Context, n int) ([]string, error) {
	if c.NArg() < n {
		return nil, errors.Wrapf(ErrMissingArgument, "%s %s", c.Command.Name, c.Command.ArgsUsage)
	}
	return c.Args()[:n], nil
}

func nonce(c *cli.Context) ([]byte, error) {
	text := c.String("nonce")
	if text == "" {
		return nil, errors.Wrap(ErrMissingArgument, "--nonce")
	}
	return byteutils.Base58Decode(text)
}

func (cmd *command) keys(c *cli.Context) error {
	id, err := cmd.identity(c)
	if err != nil {
		return err
	}
	defer id.Close()

	sec, err := id.SecretKey()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.out, "Public key: %s\n", id.PublicKey())
	fmt.Fprintf(cmd.out, "Secret key: %s\n", sec)
	return nil
}

func (cmd *command) sign(c *cli.Context) error {
	a, err := args(c, 1)
	if err != nil {
		return err
	}
	id, err := cmd.identity(c)
	if err != nil {
		return err
	}
	defer id.Close()

	sig, err := id.SignText(a[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.out, sig)
	return nil
}

func (cmd *command) verify(c *cli.Context) error {
	a, err := args(c, 3)
	if err != nil {
		return err
	}
	ok, err := crypto.VerifyText([]byte(a[0]), a[1], a[2])
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidSignature
	}
	fmt.Fprintln(cmd.out, "Signature is valid.")
	return nil
}

// encrypt draws a random nonce when --nonce is absent.
func (cmd *command) encrypt(c *cli.Context) error {
	a, err := args(c, 1)
	if err != nil {
		return err
	}
	var n []byte
	if c.String("nonce") == "" {
		n = make([]byte, keystore.NonceLength)
		if _, err := io.ReadFull(rand.Reader, n); err != nil {
			return err
		}
	} else if n, err = nonce(c); err != nil {
		return err
	}

	id, err := cmd.identity(c)
	if err != nil {
		return err
	}
	defer id.Close()

	out, err := id.Encrypt(n, []byte(a[0]))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.out, "Nonce: %s\n", byteutils.Base58Encode(n))
	fmt.Fprintf(cmd.out, "Ciphertext: %s\n", byteutils.Base58Encode(out))
	return nil
}

func (cmd *command) decrypt(c *cli.Context) error {
	a, err := args(c, 1)
	if err != nil {
		return err
	}
	n, err := nonce(c)
	if err != nil {
		return err
	}
	ciphertext, err := byteutils.Base58Decode(a[0])
	if err != nil {
		return err
	}

	id, err := cmd.identity(c)
	if err != nil {
		return err
	}
	defer id.Close()

	msg, err := id.Decrypt(n, ciphertext)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.out, string(msg))
	return nil
}

func (cmd *command) recordPut(c *cli.Context) error {
	a, err := args(c, 1)
	if err != nil {
		return err
	}
	id, err := cmd.identity(c)
	if err != nil {
		return err
	}
	defer id.Close()

	r, err := record.NewRecord(id, []byte(a[0]))
	if err != nil {
		return err
	}
	return cmd.withRecords(func(s *record.Service) error {
		if err := s.Put(r); err != nil {
			return err
		}
		return cmd.printRecord(r)
	})
}

func (cmd *command) recordUpdate(c *cli.Context) error {
	a, err := args(c, 2)
	if err != nil {
		return err
	}
	id, err := cmd.identity(c)
	if err != nil {
		return err
	}
	defer id.Close()

	return cmd.withRecords(func(s *record.Service) error {
		old, err := s.Get(a[0])
		if err != nil {
			return err
		}
		r := &record.Record{ID: old.ID, Time: old.Time}
		if err := r.Sign(id, []byte(a[1])); err != nil {
			return err
		}
		if err := s.Update(a[0], r); err != nil {
			return err
		}
		return cmd.printRecord(r)
	})
}

func (cmd *command) recordGet(c *cli.Context) error {
	a, err := args(c, 1)
	if err != nil {
		return err
	}
	return cmd.withRecords(func(s *record.Service) error {
		r, err := s.Get(a[0])
		if err != nil {
			return err
		}
		return cmd.printRecord(r)
	})
}

func (cmd *command) recordList(c *cli.Context) error {
	return cmd.withRecords(func(s *record.Service) error {
		records, err := s.List()
		if err != nil {
			return err
		}
		for _, r := range records {
			if err := cmd.printRecord(r); err != nil {
				return err
			}
		}
		return nil
	})
}

func (cmd *command) withRecords(fn func(s *record.Service) error) error {
	node, err := cmd.node()
	if err != nil {
		return err
	}
	defer node.Stop()

	s, err := node.Records()
	if err != nil {
		return err
	}
	return fn(s)
}

func (cmd *command) printRecord(r *record.Record) error {
	data, err := r.ToJSON()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.out, string(data))
	return nil
}
