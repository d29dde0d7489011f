package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultLimit bounds response sizes when no limit is configured.
const DefaultLimit = 5000

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from
// config.yml in the working directory.
func LoadAppConfig() error {
	paths := []string{"config.yml", "./config/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	return applyConfig(data)
}

// LoadAppConfigFile loads and validates the application configuration
// from an explicit path.
func LoadAppConfigFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return applyConfig(data)
}

func applyConfig(data []byte) error {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	Config = cfg
	if Config.Serializer.Limit == 0 {
		Config.Serializer.Limit = DefaultLimit
	}
	if Config.Serializer.Mode == "" {
		Config.Serializer.Mode = "generic"
	}
	if Config.Site.Charset == "" {
		Config.Site.Charset = "UTF-8"
	}
	return nil
}
