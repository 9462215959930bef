package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"knobd/internal/pins"
)

const (
	defaultConfigFile   = "config.yaml"
	defaultSettleMillis = 1
	defaultChip         = "gpiochip0"
	defaultLedCount     = 8
	defaultBrightness   = 90
	defaultPressColor   = 0x00ff00
	defaultRotateColor  = 0x0000ff
)

type Config struct {
	Encoder struct {
		Clk int `yaml:"clk"`
		Dt  int `yaml:"dt"`
		Sw  int `yaml:"sw"`
	} `yaml:"encoder"`
	Backend      string `yaml:"backend"`
	Chip         string `yaml:"chip"`
	SettleMillis int    `yaml:"settleMillis"`
	Led          struct {
		Enabled     bool   `yaml:"enabled"`
		Count       int    `yaml:"count"`
		Brightness  int    `yaml:"brightness"`
		PressColor  uint32 `yaml:"pressColor"`
		RotateColor uint32 `yaml:"rotateColor"`
	} `yaml:"led"`
}

func (c Config) Pins() pins.Pins {
	return pins.Pins{Clk: c.Encoder.Clk, Dt: c.Encoder.Dt, Sw: c.Encoder.Sw}
}

func (c Config) SettleInterval() time.Duration {
	return time.Duration(c.SettleMillis) * time.Millisecond
}

func parseConfig(content []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.Unmarshal(content, c); err != nil {
		return nil, err
	}

	if c.Encoder.Clk == 0 && c.Encoder.Dt == 0 && c.Encoder.Sw == 0 {
		return nil, fmt.Errorf("encoder pins are missing")
	}
	if err := c.Pins().Validate(); err != nil {
		return nil, err
	}

	switch c.Backend {
	case "":
		c.Backend = "periph"
	case "periph", "cdev", "sim":
	default:
		return nil, fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.Chip == "" {
		c.Chip = defaultChip
	}
	if c.SettleMillis <= 0 {
		c.SettleMillis = defaultSettleMillis
	}
	if c.Led.Enabled {
		if c.Led.Count <= 0 {
			c.Led.Count = defaultLedCount
		}
		if c.Led.Brightness <= 0 {
			c.Led.Brightness = defaultBrightness
		}
		if c.Led.PressColor == 0 {
			c.Led.PressColor = defaultPressColor
		}
		if c.Led.RotateColor == 0 {
			c.Led.RotateColor = defaultRotateColor
		}
	}

	return c, nil
}

func readConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return parseConfig(content)
}
