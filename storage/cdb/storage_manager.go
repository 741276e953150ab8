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

package cdb

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gt.pro/gtio/go-ucoin/conf"
	"gt.pro/gtio/go-ucoin/util/config"
	"gt.pro/gtio/go-ucoin/util/logging"
)

const (
	TypeLevelDB = "levelDB"
	TypeMemory  = "memory"
	database    = "database"
)

type DbConfig struct {
	DbType      string `yaml:"db_type"`
	EnableBatch bool   `yaml:"enable_batch"`
	DbDir       string `yaml:"db_dir"`
}

func GetDbConfig(config *config.Config) *DbConfig {
	dbConf := NewDefaultDbConfig()
	config.GetObject(database, dbConf)
	if dbConf.DbType == "" {
		dbConf.DbType = TypeLevelDB
	}
	if dbConf.DbDir == "" {
		dbConf.DbDir = conf.GetNodeConfig(config).RecordsDir()
	}
	return dbConf
}

func SetDbConfig(conf *config.Config, dbConfig *DbConfig) {
	conf.Set(database, dbConfig)
}

func NewDefaultDbConfig() *DbConfig {
	return &DbConfig{
		TypeLevelDB,
		false,
		"",
	}
}

func NewDB(config *config.Config) (Storage, error) {
	dbcfg := GetDbConfig(config)
	switch dbcfg.DbType {
	case TypeLevelDB:
		db, err := NewLevelDB(dbcfg, 16, 500)
		if err != nil {
			logging.CLog().WithFields(logrus.Fields{
				"dir": dbcfg.DbDir,
				"err": err,
			}).Error("Failed to new a levelDB instance.")
			return nil, err
		}
		return db, nil
	case TypeMemory:
		return NewMemoryStorage()
	default:
		return nil, fmt.Errorf("Does not support the %s database.", dbcfg.DbType)
	}
}
