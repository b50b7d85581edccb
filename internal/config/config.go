package config

import (
	"github.com/go-sod/gesture/internal/classify"
	"github.com/go-sod/gesture/internal/database"
	"github.com/go-sod/gesture/internal/logging"
	"github.com/go-sod/gesture/internal/predictor"
	"github.com/go-sod/gesture/internal/predictor/knn"
	"github.com/go-sod/gesture/internal/reference"
	"github.com/go-sod/gesture/internal/setup"
)

var (
	_ setup.ClassifierConfigProvider = (*Config)(nil)
	_ setup.DatabaseConfigProvider   = (*Config)(nil)
	_ setup.ReferenceConfigProvider  = (*Config)(nil)
	_ setup.LoggingConfigProvider    = (*Config)(nil)
)

type Config struct {
	SrvAddr   string `envconfig:"GESTURE_ADDR" default:":8787"`
	GRPCAddr  string `envconfig:"GESTURE_GRPC_ADDR"`
	Logging   logging.Config
	Classify  classify.Config
	Database  database.Config
	Reference reference.Config
	Predictor predictor.Config
	KNN       knn.Config
}

func (c *Config) LoggingConfig() *logging.Config {
	return &c.Logging
}

func (c *Config) DatabaseConfig() *database.Config {
	return &c.Database
}

func (c *Config) ReferenceConfig() *reference.Config {
	return &c.Reference
}

func (c *Config) PredictType() predictor.AlgType {
	return c.Predictor.Type
}

func (c *Config) ClassifierConfig() *knn.Config {
	return &c.KNN
}
