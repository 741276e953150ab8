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
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
	"gt.pro/gtio/go-ucoin/metrics"
	"gt.pro/gtio/go-ucoin/record"
	"gt.pro/gtio/go-ucoin/storage/cdb"
	"gt.pro/gtio/go-ucoin/util/config"
	"gt.pro/gtio/go-ucoin/util/logging"
)

var (
	ErrNilConfig    = errors.New("config is nil")
	ErrAlreadySetup = errors.New("ucoin is already setup")
	ErrNotSetup     = errors.New("ucoin is not setup")
)

// Ucoin holds the storage and the record service of a local node.
type Ucoin struct {
	config  *config.Config
	db      cdb.Storage
	records *record.Service
	mu      sync.Mutex
	running bool
}

// New returns a node for conf. Call Setup before using its services.
func New(conf *config.Config) (*Ucoin, error) {
	if conf == nil {
		logging.CLog().Error("Failed to load config file")
		return nil, ErrNilConfig
	}
	return &Ucoin{config: conf}, nil
}

// Setup opens the database and starts the record service.
func (u *Ucoin) Setup() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.running {
		return ErrAlreadySetup
	}
	logging.VLog().Info("Setuping Ucoin...")

	metrics.Setup(u.config)

	db, err := cdb.NewDB(u.config)
	if err != nil {
		logging.CLog().WithFields(logrus.Fields{
			"err": err,
		}).Error("Failed to open disk storage.")
		return err
	}

	records, err := record.NewService(u.config, db)
	if err != nil {
		logging.CLog().WithFields(logrus.Fields{
			"err": err,
		}).Error("Failed to setup record service.")
		db.Close()
		return err
	}

	u.db = db
	u.records = records
	u.running = true

	logging.VLog().Info("Setuped Ucoin.")
	return nil
}

// Stop closes the database. It is safe to call more than once.
func (u *Ucoin) Stop() {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.running {
		return
	}
	logging.VLog().Info("Stopping Ucoin...")

	if metrics.Enabled() {
		fields := logrus.Fields{}
		for name, v := range metrics.Snapshot() {
			fields[name] = v
		}
		logging.VLog().WithFields(fields).Info("Metrics.")
	}

	if u.db != nil {
		if err := u.db.Close(); err != nil {
			logging.CLog().WithFields(logrus.Fields{
				"err": err,
			}).Error("Failed to close storage.")
		}
		u.db = nil
	}
	u.records = nil
	u.running = false

	logging.VLog().Info("Stopped Ucoin.")
}

// return config
func (u *Ucoin) Config() *config.Config {
	return u.config
}

// return storage
func (u *Ucoin) Storage() cdb.Storage {
	return u.db
}

// Records returns the record service, or ErrNotSetup before Setup.
func (u *Ucoin) Records() (*record.Service, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if !u.running {
		return nil, ErrNotSetup
	}
	return u.records, nil
}
