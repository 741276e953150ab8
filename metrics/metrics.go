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

package metrics

import (
	"sync"

	"github.com/rcrowley/go-metrics"
	"gt.pro/gtio/go-ucoin/util/config"
	"gt.pro/gtio/go-ucoin/util/logging"
)

const (
	stats = "stats"
)

type StatsConfig struct {
	EnableMetrics bool `yaml:"enable_metrics"`
}

func GetStatsConfig(conf *config.Config) *StatsConfig {
	statscfg := new(StatsConfig)
	conf.GetObject(stats, statscfg)
	return statscfg
}

func SetStatsConfig(conf *config.Config, statsCfg *StatsConfig) {
	conf.Set(stats, statsCfg)
}

var (
	mu     sync.RWMutex
	enable = false
)

// EnableMetrics enable the metrics service. Metrics created before the
// call stay no-ops.
func EnableMetrics() {
	mu.Lock()
	enable = true
	mu.Unlock()
	logging.VLog().Info("Enabled Metrics.")
}

// Enabled reports whether new metrics are registered.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enable
}

// Setup enables metrics when the stats section asks for it.
func Setup(conf *config.Config) {
	if GetStatsConfig(conf).EnableMetrics {
		EnableMetrics()
	}
}

// Snapshot returns the current value of every registered counter, for
// printing at exit.
func Snapshot() map[string]int64 {
	out := make(map[string]int64)
	metrics.DefaultRegistry.Each(func(name string, i interface{}) {
		switch m := i.(type) {
		case metrics.Counter:
			out[name] = m.Count()
		case metrics.Meter:
			out[name] = m.Count()
		case metrics.Timer:
			out[name] = m.Count()
		}
	})
	return out
}

// NewCounter create a new metrics Counter
func NewCounter(name string) metrics.Counter {
	if !Enabled() {
		return new(metrics.NilCounter)
	}
	return metrics.GetOrRegisterCounter(name, metrics.DefaultRegistry)
}

// NewMeter create a new metrics Meter
func NewMeter(name string) metrics.Meter {
	if !Enabled() {
		return new(metrics.NilMeter)
	}
	return metrics.GetOrRegisterMeter(name, metrics.DefaultRegistry)
}

// NewTimer create a new metrics Timer
func NewTimer(name string) metrics.Timer {
	if !Enabled() {
		return new(metrics.NilTimer)
	}
	return metrics.GetOrRegisterTimer(name, metrics.DefaultRegistry)
}
