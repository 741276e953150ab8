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

package config

import (
	"errors"
	"io/ioutil"
	"os"
	"reflect"
	"strings"
	"sync"

	"gopkg.in/yaml.v2"
	"gt.pro/gtio/go-ucoin/util"
)

const (
	DefaultConfigPath = "conf/ucoin.yaml"
)

var (
	ErrEmptyPath   = errors.New("filename is empty path")
	ErrEmptyConfig = errors.New("config file is empty")
)

// Config is a YAML document addressed by "section/key" paths.
type Config struct {
	data     []byte
	cache    map[string]interface{}
	filePath string
	mu       sync.Mutex
}

type conf struct {
	Node struct {
		Datadir string `yaml:"datadir"`
	}
	Log struct {
		LogLevel        string `yaml:"log_level"`
		LogFile         string `yaml:"log_file"`
		LogRotationTime int    `yaml:"log_rotationTime"`
		LogAge          int    `yaml:"log_age"`
	}
	Database struct {
		DbType      string `yaml:"db_type"`
		EnableBatch bool   `yaml:"enable_batch"`
		DbDir       string `yaml:"db_dir"`
	}
	Stats struct {
		EnableMetrics bool `yaml:"enable_metrics"`
	}
	Record struct {
		PubkeyCacheSize int `yaml:"pubkey_cache_size"`
	}
}

func defaultData() ([]byte, error) {
	c := make(map[string]interface{})
	cfg := conf{}

	cfg.Node.Datadir = "data"

	cfg.Log.LogLevel = "info"
	cfg.Log.LogFile = "logs"
	cfg.Log.LogRotationTime = 3600
	cfg.Log.LogAge = 86400

	cfg.Database.DbType = "levelDB"
	cfg.Database.DbDir = "data/records"

	cfg.Stats.EnableMetrics = false

	cfg.Record.PubkeyCacheSize = 1024

	c["node"] = cfg.Node
	c["log"] = cfg.Log
	c["database"] = cfg.Database
	c["stats"] = cfg.Stats
	c["record"] = cfg.Record

	return yaml.Marshal(&c)
}

// InitConfig loads fileName, writing a default config there first if it
// does not exist.
func InitConfig(fileName string) (*Config, error) {
	if fileName == "" {
		fileName = DefaultConfigPath
	}
	if _, err := os.Stat(fileName); err != nil {
		return NewDefaultFileConfig(fileName)
	}
	return NewFileConfig(fileName)
}

func NewDefaultFileConfig(fileName string) (*Config, error) {
	data, err := defaultData()
	if err != nil {
		return nil, err
	}
	if err := util.FileWrite(fileName, data, 0600); err != nil {
		return nil, err
	}
	return newConfig(fileName, data), nil
}

func NewFileConfig(fileName string) (*Config, error) {
	if fileName == "" {
		return nil, ErrEmptyPath
	}
	in, err := ioutil.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	if len(in) == 0 {
		return nil, ErrEmptyConfig
	}
	return newConfig(fileName, in), nil
}

// NewMemConfig returns the default config without touching the disk.
func NewMemConfig() (*Config, error) {
	data, err := defaultData()
	if err != nil {
		return nil, err
	}
	return newConfig("", data), nil
}

func newConfig(fileName string, data []byte) *Config {
	return &Config{
		filePath: fileName,
		data:     data,
		cache:    make(map[string]interface{}),
	}
}

// FilePath is empty for memory configs.
func (c *Config) FilePath() string {
	return c.filePath
}

func (c *Config) GetString(key string) string {
	v := c.Get(key)
	if v != nil && reflect.TypeOf(v).Kind() == reflect.String {
		return v.(string)
	}
	return ""
}

func (c *Config) GetInt(key string) int {
	v := c.Get(key)
	if v != nil && reflect.TypeOf(v).Kind() == reflect.Int {
		return v.(int)
	}
	return 0
}

func (c *Config) GetBool(key string) bool {
	v := c.Get(key)
	if b, ok := v.(bool); ok {
		return b
	}
	return false
}

func (c *Config) Get(key string) interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.cache[key]; ok {
		return v
	}
	v := lookup(c.data, key)
	if v != nil {
		c.cache[key] = v
	}
	return v
}

// GetObject unmarshals the value at key into destObj. It returns nil when
// the key is absent.
func (c *Config) GetObject(key string, destObj interface{}) interface{} {
	c.mu.Lock()
	v := lookup(c.data, key)
	c.mu.Unlock()
	if v == nil {
		return nil
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		return nil
	}
	if err := yaml.Unmarshal(out, destObj); err != nil {
		return nil
	}
	return destObj
}

func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := strings.Split(key, "/")
	m := make(map[interface{}]interface{})
	if err := yaml.Unmarshal(c.data, m); err != nil {
		return
	}
	tempMap := m
	for i := 0; i < len(keys); i++ {
		if i == len(keys)-1 {
			tempMap[keys[i]] = value
		} else {
			next, ok := tempMap[keys[i]].(map[interface{}]interface{})
			if !ok {
				next = make(map[interface{}]interface{})
				tempMap[keys[i]] = next
			}
			tempMap = next
		}
	}
	tempData, err := yaml.Marshal(m)
	if err == nil {
		c.data = tempData
		c.cache = make(map[string]interface{})
	}
}

func lookup(data []byte, key string) interface{} {
	keys := strings.Split(key, "/")
	m := make(map[interface{}]interface{})
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil
	}
	for i := 0; i < len(keys); i++ {
		v, ok := m[keys[i]]
		if !ok || v == nil {
			return nil
		}
		if i == len(keys)-1 {
			return v
		}
		next, ok := v.(map[interface{}]interface{})
		if !ok {
			return nil
		}
		m = next
	}
	return nil
}
