package config

import (
	"time"

	"github.com/fystack/caaj-indexer/pkg/common/enum"
)

type Config struct {
	Environment string        `yaml:"environment" validate:"required,oneof=production development"`
	LogLevel    string        `yaml:"log_level"   validate:"omitempty,oneof=debug info warn error"`
	Chain       string        `yaml:"chain"       validate:"required"`
	TokenTable  TokenTableCfg `yaml:"token_table" validate:"required"`
	Processor   ProcessorCfg  `yaml:"processor"`
	KVStore     KVStoreCfg    `yaml:"kvstore"`
	NATS        NatsConfig    `yaml:"nats"`
	Output      OutputCfg     `yaml:"output"`
}

type TokenTableCfg struct {
	// Path wins over URL when both are set.
	Path  string   `yaml:"path"`
	URL   string   `yaml:"url"   validate:"omitempty,url"`
	Retry RetryCfg `yaml:"retry"`
}

type RetryCfg struct {
	InitialInterval time.Duration `yaml:"initial_interval" validate:"gt=0"`
	MaxElapsedTime  time.Duration `yaml:"max_elapsed_time" validate:"gte=0"`
	Timeout         time.Duration `yaml:"timeout"          validate:"gt=0"`
}

type ProcessorCfg struct {
	Concurrency int `yaml:"concurrency" validate:"min=1,max=256"`
}

type KVStoreCfg struct {
	Enabled bool             `yaml:"enabled"`
	Type    enum.KVStoreType `yaml:"type"    validate:"omitempty,oneof=badger"`
	Codec   string           `yaml:"codec"   validate:"omitempty,oneof=json gob"`
	Badger  BadgerKVCfg      `yaml:"badger"`
}

type BadgerKVCfg struct {
	Directory string `yaml:"directory"`
	Prefix    string `yaml:"prefix"`
}

type NatsConfig struct {
	Enabled       bool          `yaml:"enabled"`
	URL           string        `yaml:"url"            validate:"omitempty,url"`
	SubjectPrefix string        `yaml:"subject_prefix"`
	Stream        string        `yaml:"stream"`
	Username      string        `yaml:"username"`
	Password      string        `yaml:"password"`
	TLS           NatsTLSConfig `yaml:"tls"`

	// Initial dial retries; reconnects after that are unbounded.
	ConnectAttempts  int           `yaml:"connect_attempts"   validate:"gte=0"`
	ConnectRetryWait time.Duration `yaml:"connect_retry_wait" validate:"gte=0"`
}

type NatsTLSConfig struct {
	ClientCert string `yaml:"client_cert"`
	ClientKey  string `yaml:"client_key"`
	CACert     string `yaml:"ca_cert"`
}

type OutputCfg struct {
	Format enum.OutputFormat `yaml:"format" validate:"omitempty,oneof=csv json"`
}
