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

package conf

import (
	"path/filepath"

	"gt.pro/gtio/go-ucoin/util/config"
)

const (
	DefaultDataDIR = "data"

	Node = "node"
)

type NodeConfig struct {
	Datadir string `yaml:"datadir"`
}

func GetNodeConfig(conf *config.Config) *NodeConfig {
	nodeConfig := new(NodeConfig)
	conf.GetObject(Node, nodeConfig)
	if nodeConfig.Datadir == "" {
		nodeConfig.Datadir = DefaultDataDIR
	}
	return nodeConfig
}

func SetNodeConfig(conf *config.Config, nodeCfg *NodeConfig) {
	conf.Set(Node, nodeCfg)
}

// RecordsDir is where signed records are stored by default.
func (c *NodeConfig) RecordsDir() string {
	return filepath.Join(c.Datadir, "records")
}
