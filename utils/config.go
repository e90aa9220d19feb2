package utils

import (
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/alpacahq/bizday/utils/log"
)

var InstanceConfig = DefaultConfig()

// PrewarmSetting names the years whose holiday sets are built at startup.
type PrewarmSetting struct {
	From    int
	To      int
	Workers int
}

// Enabled reports whether a prewarm window is configured.
func (p PrewarmSetting) Enabled() bool {
	return p.From > 0 && p.To >= p.From
}

type BizdayConfig struct {
	LogLevel log.Level
	Timezone *time.Location
	Prewarm  PrewarmSetting
}

// DefaultConfig is used when no configuration file is given.
func DefaultConfig() *BizdayConfig {
	return &BizdayConfig{
		LogLevel: log.INFO,
		Timezone: time.Local,
		Prewarm:  PrewarmSetting{Workers: defaultPrewarmWorkers},
	}
}

const (
	defaultPrewarmWorkers = 4
	minSupportedYear      = 1
	maxSupportedYear      = 9999
)

// ParseConfig reads a YAML configuration, applying defaults for every
// missing field.
func ParseConfig(data []byte) (*BizdayConfig, error) {
	m := DefaultConfig()
	if err := m.Parse(data); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *BizdayConfig) Parse(data []byte) error {
	var (
		err error
		aux struct {
			LogLevel string `yaml:"log_level"`
			Timezone string `yaml:"timezone"`
			Prewarm  struct {
				From    int `yaml:"from"`
				To      int `yaml:"to"`
				Workers int `yaml:"workers"`
			} `yaml:"prewarm"`
		}
	)

	if err = yaml.Unmarshal(data, &aux); err != nil {
		return errors.Wrap(err, "failed to unmarshal configuration")
	}

	if aux.LogLevel != "" {
		m.LogLevel = log.ParseLevel(aux.LogLevel)
		log.SetLevel(m.LogLevel)
	}

	if aux.Timezone != "" {
		m.Timezone, err = time.LoadLocation(aux.Timezone)
		if err != nil {
			return errors.Wrapf(err, "invalid timezone %q", aux.Timezone)
		}
	}

	p := aux.Prewarm
	if p.From != 0 || p.To != 0 {
		if p.From < minSupportedYear || p.To > maxSupportedYear || p.To < p.From {
			return errors.Errorf("invalid prewarm window %d-%d", p.From, p.To)
		}
		m.Prewarm.From, m.Prewarm.To = p.From, p.To
	}
	if p.Workers > 0 {
		m.Prewarm.Workers = p.Workers
	} else if p.Workers < 0 {
		log.Error("Invalid value: %v for prewarm.workers. Using %d...", p.Workers, defaultPrewarmWorkers)
	}

	return nil
}
