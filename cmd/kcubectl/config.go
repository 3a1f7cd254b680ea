package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the kcubectl configuration file contents.
type Config struct {
	Device DeviceConfig `yaml:"device"`
	Timing TimingConfig `yaml:"timing"`
}

type DeviceConfig struct {
	VendorID  uint16 `yaml:"vendor_id"`
	ProductID uint16 `yaml:"product_id"`
	Serial    string `yaml:"serial"`
	BaudRate  int    `yaml:"baud_rate"`
}

type TimingConfig struct {
	PreFlushMs  int `yaml:"pre_flush_ms"`
	PostFlushMs int `yaml:"post_flush_ms"`
	EnableMs    int `yaml:"enable_ms"`
}

// DefaultConfig returns a config with the stock KPZ101 identifiers.
func DefaultConfig() *Config {
	return &Config{
		Device: DeviceConfig{
			VendorID:  0x0403,
			ProductID: 0xFAF0,
			BaudRate:  115200,
		},
		Timing: TimingConfig{
			PreFlushMs:  50,
			PostFlushMs: 50,
			EnableMs:    500,
		},
	}
}

// LoadConfig reads path if it exists, falling back to defaults otherwise.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *TimingConfig) preFlush() time.Duration {
	return time.Duration(c.PreFlushMs) * time.Millisecond
}

func (c *TimingConfig) postFlush() time.Duration {
	return time.Duration(c.PostFlushMs) * time.Millisecond
}

func (c *TimingConfig) enable() time.Duration {
	return time.Duration(c.EnableMs) * time.Millisecond
}
