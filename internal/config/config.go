package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// LogFile configures the optional rotating log file of the server.
type LogFile struct {
	Filename   string `json:"filename"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

type Config struct {
	Mode string  `json:"mode"`
	Addr string  `json:"addr"`
	Log  LogFile `json:"log"`
}

func Default() *Config {
	return &Config{
		Mode: "development",
		Addr: ":8080",
		Log: LogFile{
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":     c.Mode,
		"addr":     c.Addr,
		"log_file": c.Log.Filename,
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

func Read(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := json.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("unable to parse config %s: %w", path, err)
	}
	return c, nil
}
