package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/caarlos0/env"
	"github.com/scheerer/traffic-light/internal/logging"
)

var (
	logger = logging.New("main")
	config = Config{}
)

type Config struct {
	InitialColor    string `env:"INITIAL_COLOR" envDefault:"green"`
	Layout          string `env:"LAYOUT" envDefault:"vertical"`
	ColorConfigFile string `env:"COLOR_CONFIG_FILE"`
	MountID         string `env:"MOUNT_ID" envDefault:"traffic-light"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	defer logger.Sync()

	err := env.Parse(&config)
	if err != nil {
		logger.With(zap.Error(err)).Fatal("Failed to parse environment variables")
	}

	if err := newRootCmd(&config).Execute(); err != nil {
		os.Exit(1)
	}
}
