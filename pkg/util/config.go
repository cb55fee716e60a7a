package util

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ReadConfig. read ./data/config.{yaml,json,toml,env} if present. env variables always override it.
func ReadConfig() error {
	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
