// Config loading for the chess CLI.
package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/viper"
)

const (
	configFileName = "chess"
	configFileType = "yaml"

	cfgKeyListenAddr = "listen_addr"
	cfgKeyWorkers    = "workers"

	defaultListenAddr = ":8080"
)

// loadConfig reads the config file using Viper. When no --config flag is
// given it looks for chess.yaml in the working directory; a missing file
// is not an error and the defaults apply.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyListenAddr, defaultListenAddr)
	v.SetDefault(cfgKeyWorkers, runtime.NumCPU())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && path == "" {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}
