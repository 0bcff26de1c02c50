package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/Tehl/bank-api/internal/connections/bizfibank"
	"github.com/Tehl/bank-api/internal/connections/fairwaybank"
	"github.com/Tehl/bank-api/internal/http"
	"github.com/Tehl/bank-api/internal/sqlite"
)

// Storage driver selection. The memory driver is the default and is
// intentionally non-durable.
const (
	StorageDriverMemory = "memory"
	StorageDriverSQLite = "sqlite"
)

type Config struct {
	LogLevel      int    `envconfig:"LOG_LEVEL" default:"-4"`
	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"memory"`
	HTTP          http.Config
	Database      sqlite.Config
	BizfiBank     bizfibank.Config
	FairWayBank   fairwaybank.Config
}

func Load() (Config, error) {
	var config Config
	err := envconfig.Process("", &config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process config: %w", err)
	}

	if config.StorageDriver != StorageDriverMemory && config.StorageDriver != StorageDriverSQLite {
		return Config{}, fmt.Errorf("unknown storage driver %q", config.StorageDriver)
	}

	return config, nil
}
