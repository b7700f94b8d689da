package main

import (
	"fmt"

	"healthlock/pkg/types"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

func loadConfig(prefix string) (*types.Config, error) {
	c := new(types.Config)
	if err := envconfig.Process(prefix, c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return nil, fmt.Errorf("set a valid LOG_LEVEL: %w", err)
	}

	if c.MaxSessions <= 0 {
		return nil, fmt.Errorf("set MAX_SESSIONS to a positive number")
	}

	if c.ServerPort == 0 {
		c.ServerPort = 8080
	}

	if c.ReadTimeoutSec == 0 {
		c.ReadTimeoutSec = 10
	}

	if c.WriteTimeoutSec == 0 {
		c.WriteTimeoutSec = 15
	}

	if c.SessionMaxAgeSec <= 0 {
		c.SessionMaxAgeSec = 86400
	}

	if c.QRImageSize <= 0 {
		c.QRImageSize = 300
	}

	return c, nil
}

func newLogger(c *types.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
