package config

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"arealookup/pkg/config"
)

// LoadConfig init Config
func LoadConfig(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.WithStack(err)
	}
	return config.LoadConfig(
		config.WithConfigFile(absPath),
	)
}

func init() {
	viper.SetDefault("service.name", "arealookup")
	viper.SetDefault("http.addr", ":8080")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.console", true)
	viper.SetDefault("limit.burst", 100)
}
