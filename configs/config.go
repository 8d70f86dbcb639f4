package configs

import (
	"errors"
	"os"
	"strings"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

type DB struct {
	Path               string `default:"neat.db"`
	BusyTimeoutMS      int    `default:"5000"`
	MaxOpenConnections int    `default:"1"`
}

type Images struct {
	MaxWidth   int `default:"800"`
	MaxHeight  int `default:"800"`
	Quality    int `default:"70"`
	MaxTotalMB int `default:"50"`
}

type Config struct {
	DB     DB
	Images Images
}

const envPrefix = "NEAT" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	return &config, nil
}
