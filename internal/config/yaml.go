package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// LoadYAMLConfig load config from filename in YAML format
func LoadYAMLConfig(filename string, cfg interface{}) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("ReadFile: %w", err)
	}
	return yaml.Unmarshal(data, cfg)
}

// InitConfig loads configPath over the defaults. When optional is set
// and the file does not exist, the defaults are used as is.
func InitConfig(configPath string, optional bool) (*Config, error) {
	conf := DefaultConfig()

	if configPath != "" {
		err := LoadYAMLConfig(configPath, conf)
		switch {
		case err == nil:
		case optional && errors.Is(err, fs.ErrNotExist):
			logrus.Debugf("config file %s not found, using defaults", configPath)
		default:
			return nil, err
		}
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}
