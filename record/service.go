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
	"sync"

	"github.com/pkg/errors"
	metrics "github.com/rcrowley/go-metrics"
	"github.com/sirupsen/logrus"
	umetrics "gt.pro/gtio/go-ucoin/metrics"
	"gt.pro/gtio/go-ucoin/storage/cdb"
	"gt.pro/gtio/go-ucoin/util/config"
	"gt.pro/gtio/go-ucoin/util/logging"
)

const (
	recordSection = "record"
)

var keyPrefix = []byte("record/")

type RecordConfig struct {
	PubkeyCacheSize int `yaml:"pubkey_cache_size"`
}

func GetRecordConfig(conf *config.Config) *RecordConfig {
	recordConf := new(RecordConfig)
	conf.GetObject(recordSection, recordConf)
	if recordConf.PubkeyCacheSize <= 0 {
		recordConf.PubkeyCacheSize = DefaultPubkeyCacheSize
	}
	return recordConf
}

func SetRecordConfig(conf *config.Config, recordConf *RecordConfig) {
	conf.Set(recordSection, recordConf)
}

// Service stores records that pass verification. Only the issuer of a
// stored record may update it.
type Service struct {
	mu       sync.Mutex
	db       cdb.Storage
	verifier *Verifier

	putCounter      metrics.Counter
	updateCounter   metrics.Counter
	rejectedCounter metrics.Counter
	verifyMeter     metrics.Meter
}

func NewService(conf *config.Config, db cdb.Storage) (*Service, error) {
	verifier, err := NewVerifier(GetRecordConfig(conf).PubkeyCacheSize)
	if err != nil {
		return nil, err
	}
	return &Service{
		db:              db,
		verifier:        verifier,
		putCounter:      umetrics.NewCounter("record.put"),
		updateCounter:   umetrics.NewCounter("record.update"),
		rejectedCounter: umetrics.NewCounter("record.rejected"),
		verifyMeter:     umetrics.NewMeter("record.verify"),
	}, nil
}

// Put stores a new record.
func (s *Service) Put(r *Record) error {
	if r.ID == "" {
		return ErrMissingID
	}
	if err := s.verify(r); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ok, err := s.db.Has(recordKey(r.ID))
	if err != nil {
		return err
	}
	if ok {
		return ErrRecordExists
	}
	if err := s.store(r); err != nil {
		return err
	}
	s.putCounter.Inc(1)
	logging.VLog().WithFields(logrus.Fields{
		"id":     r.ID,
		"issuer": r.Issuer,
	}).Debug("Stored record.")
	return nil
}

// Update replaces the record stored under id. The new record must verify
// and come from the same issuer.
func (s *Service) Update(id string, r *Record) error {
	if id == "" {
		return ErrMissingID
	}
	if r.ID == "" {
		r.ID = id
	}
	if r.ID != id {
		return errors.Wrapf(ErrIDMismatch, "%s != %s", r.ID, id)
	}
	if err := s.verify(r); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	old, err := s.get(id)
	if err != nil {
		return err
	}
	if old.Issuer != r.Issuer {
		s.rejectedCounter.Inc(1)
		logging.VLog().WithFields(logrus.Fields{
			"id":     id,
			"issuer": r.Issuer,
			"owner":  old.Issuer,
		}).Warn("Rejected record update from another issuer.")
		return ErrIssuerMismatch
	}
	if err := s.store(r); err != nil {
		return err
	}
	s.updateCounter.Inc(1)
	return nil
}

func (s *Service) Get(id string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(id)
}

// List returns every stored record ordered by id.
func (s *Service) List() ([]*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := s.db.NewIteratorWithPrefix(keyPrefix)
	defer it.Release()

	var records []*Record
	for it.Next() {
		r, err := FromJSON(it.Value())
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err := it.Error(); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Service) verify(r *Record) error {
	s.verifyMeter.Mark(1)
	if err := s.verifier.Verify(r); err != nil {
		s.rejectedCounter.Inc(1)
		logging.VLog().WithFields(logrus.Fields{
			"id":     r.ID,
			"issuer": r.Issuer,
			"err":    err,
		}).Debug("Rejected record.")
		return err
	}
	return nil
}

func (s *Service) get(id string) (*Record, error) {
	data, err := s.db.Get(recordKey(id))
	if err == cdb.ErrKeyNotFound {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return FromJSON(data)
}

func (s *Service) store(r *Record) error {
	data, err := r.ToJSON()
	if err != nil {
		return err
	}
	if err := s.db.Put(recordKey(r.ID), data); err != nil {
		return err
	}
	return s.db.Flush()
}

func recordKey(id string) []byte {
	return append(append([]byte(nil), keyPrefix...), id...)
}
