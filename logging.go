package pool_seeding

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

type LogConfig struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

func DefaultLogConfig() *LogConfig {
	return &LogConfig{Level: "info"}
}

// NewLogger builds a stderr logger from config.
func NewLogger(config *LogConfig) (*logrus.Logger, error) {
	if config == nil {
		config = DefaultLogConfig()
	}
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	level := config.Level
	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	logger.SetLevel(parsed)

	if config.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger, nil
}
