// Package config provides config structure for the nemtx tools.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/nemtech/nem2-sdk-go/pkg/collection/strings"
	"github.com/nemtech/nem2-sdk-go/pkg/transaction"
)

var (
	logLevels                = []string{"trace", "debug", "info", "warn", "error", "fatal"}
	defaultMaxConcurrency    = 8
	defaultReadTimeoutSecond = 60
	defaultListenerURL       = "http://localhost:3000"
	defaultMetricsAddr       = "127.0.0.1:9100"
)

type Config struct {
	System   *SystemConfig   `json:"system" yaml:"system"`
	Network  *NetworkConfig  `json:"network" yaml:"network"`
	Resolver *ResolverConfig `json:"resolver" yaml:"resolver"`
	Listener *ListenerConfig `json:"listener" yaml:"listener"`
	Metrics  *MetricsConfig  `json:"metrics" yaml:"metrics"`
}

// Load reads the config at filePath. Files ending with .yaml or .yml are parsed as YAML, others as JSON.
func Load(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	config := &Config{}
	switch filepath.Ext(filePath) {
	case ".yaml", ".yml":
		err = yaml.UnmarshalStrict(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", filePath, err)
	}
	return config, nil
}

func (c *Config) InsertDefault() error {
	if c.System == nil {
		c.System = &SystemConfig{}
	}
	if err := c.System.InsertDefault(); err != nil {
		return err
	}
	if c.Network == nil {
		c.Network = &NetworkConfig{}
	}
	if err := c.Network.InsertDefault(); err != nil {
		return err
	}
	if c.Resolver == nil {
		c.Resolver = &ResolverConfig{}
	}
	c.Resolver.InsertDefault()
	if c.Listener == nil {
		c.Listener = &ListenerConfig{}
	}
	c.Listener.InsertDefault()
	if c.Metrics == nil {
		c.Metrics = &MetricsConfig{}
	}
	c.Metrics.InsertDefault()
	return nil
}

// Merge overrides c with the values set in config.
func (c *Config) Merge(config *Config) {
	if config == nil {
		return
	}
	if config.System != nil {
		if c.System == nil {
			c.System = config.System
		} else {
			c.System.Merge(config.System)
		}
	}
	if config.Network != nil {
		if c.Network == nil {
			c.Network = config.Network
		} else {
			c.Network.Merge(config.Network)
		}
	}
	if config.Resolver != nil {
		if c.Resolver == nil {
			c.Resolver = config.Resolver
		} else {
			c.Resolver.Merge(config.Resolver)
		}
	}
	if config.Listener != nil {
		if c.Listener == nil {
			c.Listener = config.Listener
		} else {
			c.Listener.Merge(config.Listener)
		}
	}
	if config.Metrics != nil {
		if c.Metrics == nil {
			c.Metrics = config.Metrics
		} else {
			c.Metrics.Merge(config.Metrics)
		}
	}
}

// Validate expects InsertDefault to be called beforehand.
func (c *Config) Validate() error {
	if err := c.System.Validate(); err != nil {
		return err
	}
	if err := c.Network.Validate(); err != nil {
		return err
	}
	if err := c.Resolver.Validate(); err != nil {
		return err
	}
	return c.Listener.Validate()
}

type SystemConfig struct {
	DataPath string `json:"dataPath" yaml:"dataPath"`
	LogLevel string `json:"logLevel" yaml:"logLevel"`
}

func (c *SystemConfig) InsertDefault() error {
	if c.DataPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		c.DataPath = path.Join(home, ".nemtx", "data")
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	return nil
}

func (c *SystemConfig) Merge(config *SystemConfig) {
	if config.DataPath != "" {
		c.DataPath = config.DataPath
	}
	if config.LogLevel != "" {
		c.LogLevel = config.LogLevel
	}
}

func (c SystemConfig) Validate() error {
	if !strings.Contain(logLevels, c.LogLevel) {
		return fmt.Errorf("log level %s is not allowed", c.LogLevel)
	}
	if c.DataPath == "" {
		return errors.New("dataPath cannot be empty")
	}
	return nil
}

type NetworkConfig struct {
	Type            string `json:"type" yaml:"type"`
	GenerationHash  string `json:"generationHash" yaml:"generationHash"`
	EpochAdjustment int64  `json:"epochAdjustment" yaml:"epochAdjustment"`
}

func (c *NetworkConfig) InsertDefault() error {
	if c.Type == "" {
		c.Type = transaction.MijinTest.String()
	}
	if c.EpochAdjustment == 0 {
		c.EpochAdjustment = transaction.DefaultEpochAdjustment
	}
	return nil
}

func (c *NetworkConfig) Merge(config *NetworkConfig) {
	if config.Type != "" {
		c.Type = config.Type
	}
	if config.GenerationHash != "" {
		c.GenerationHash = config.GenerationHash
	}
	if config.EpochAdjustment != 0 {
		c.EpochAdjustment = config.EpochAdjustment
	}
}

func (c NetworkConfig) Validate() error {
	if _, err := c.NetworkType(); err != nil {
		return err
	}
	if c.GenerationHash == "" {
		return nil
	}
	if _, err := c.GenerationHashValue(); err != nil {
		return err
	}
	return nil
}

func (c NetworkConfig) NetworkType() (transaction.NetworkType, error) {
	return transaction.ParseNetworkType(c.Type)
}

// GenerationHashValue returns the parsed generation hash. Signing requires it to be set.
func (c NetworkConfig) GenerationHashValue() (transaction.Hash, error) {
	if c.GenerationHash == "" {
		return transaction.Hash{}, errors.New("generationHash is not configured")
	}
	return transaction.ParseHash(c.GenerationHash)
}

type ResolverConfig struct {
	MaxConcurrency int  `json:"maxConcurrency" yaml:"maxConcurrency"`
	StrictAliases  bool `json:"strictAliases" yaml:"strictAliases"`
}

func (c *ResolverConfig) InsertDefault() {
	if c.MaxConcurrency == 0 {
		c.MaxConcurrency = defaultMaxConcurrency
	}
}

func (c *ResolverConfig) Merge(config *ResolverConfig) {
	if config.MaxConcurrency != 0 {
		c.MaxConcurrency = config.MaxConcurrency
	}
	if config.StrictAliases {
		c.StrictAliases = true
	}
}

func (c ResolverConfig) Validate() error {
	if c.MaxConcurrency < 1 {
		return fmt.Errorf("invalid maxConcurrency %d for resolver is specified", c.MaxConcurrency)
	}
	return nil
}

type ListenerConfig struct {
	URL         string `json:"url" yaml:"url"`
	ReadTimeout int    `json:"readTimeout" yaml:"readTimeout"`
}

func (c *ListenerConfig) InsertDefault() {
	if c.URL == "" {
		c.URL = defaultListenerURL
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = defaultReadTimeoutSecond
	}
}

func (c *ListenerConfig) Merge(config *ListenerConfig) {
	if config.URL != "" {
		c.URL = config.URL
	}
	if config.ReadTimeout != 0 {
		c.ReadTimeout = config.ReadTimeout
	}
}

func (c ListenerConfig) Validate() error {
	if c.URL == "" {
		return errors.New("listener url cannot be empty")
	}
	if c.ReadTimeout < 1 {
		return fmt.Errorf("invalid readTimeout %d for listener is specified", c.ReadTimeout)
	}
	return nil
}

func (c ListenerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(c.ReadTimeout) * time.Second
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Addr    string `json:"addr" yaml:"addr"`
}

func (c *MetricsConfig) InsertDefault() {
	if c.Addr == "" {
		c.Addr = defaultMetricsAddr
	}
}

func (c *MetricsConfig) Merge(config *MetricsConfig) {
	if config.Enabled {
		c.Enabled = true
	}
	if config.Addr != "" {
		c.Addr = config.Addr
	}
}
