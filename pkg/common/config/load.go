package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fystack/caaj-indexer/pkg/common/constant"
	"github.com/fystack/caaj-indexer/pkg/common/enum"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

var validate = validator.New()

const (
	defaultConcurrency     = 4
	defaultInitialInterval = 500 * time.Millisecond
	defaultMaxElapsedTime  = 30 * time.Second
	defaultFetchTimeout    = 15 * time.Second
)

// Default returns a configuration usable without a config file.
func Default() *Config {
	cfg := &Config{
		Environment: constant.EnvDevelopment,
		Chain:       constant.ChainOsmosis,
		TokenTable: TokenTableCfg{
			URL: constant.DefaultTokenTableURL,
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// apply defaults
	cfg.ApplyDefaults()

	// validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = constant.EnvDevelopment
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.Chain = strings.ToLower(strings.TrimSpace(c.Chain))
	if c.Processor.Concurrency == 0 {
		c.Processor.Concurrency = defaultConcurrency
	}
	if c.TokenTable.Retry.InitialInterval == 0 {
		c.TokenTable.Retry.InitialInterval = defaultInitialInterval
	}
	if c.TokenTable.Retry.MaxElapsedTime == 0 {
		c.TokenTable.Retry.MaxElapsedTime = defaultMaxElapsedTime
	}
	if c.TokenTable.Retry.Timeout == 0 {
		c.TokenTable.Retry.Timeout = defaultFetchTimeout
	}
	if c.KVStore.Enabled && c.KVStore.Type == "" {
		c.KVStore.Type = enum.KVStoreTypeBadger
	}
	if c.Output.Format == "" {
		c.Output.Format = enum.OutputFormatCSV
	}
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("struct validation failed: %w", err)
	}
	if c.TokenTable.Path == "" && c.TokenTable.URL == "" {
		return errors.New("token_table: path or url is required")
	}
	if c.KVStore.Enabled && c.KVStore.Badger.Directory == "" {
		return errors.New("kvstore: badger.directory is required when kvstore is enabled")
	}
	if c.NATS.Enabled {
		if c.NATS.URL == "" {
			return errors.New("nats: url is required when nats is enabled")
		}
		if c.NATS.Stream == "" || c.NATS.SubjectPrefix == "" {
			return errors.New("nats: stream and subject_prefix are required when nats is enabled")
		}
	}
	return nil
}
