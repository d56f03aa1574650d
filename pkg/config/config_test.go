package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nemtech/nem2-sdk-go/pkg/transaction"
)

const generationHash = "57F7DA205008026C776CB6AED843393F04CD458E0AA2D9F1D5F31A402072B2D6"

func writeFile(t *testing.T, name, content string) string {
	filePath := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(filePath, []byte(content), 0o600))
	return filePath
}

func TestLoadJSON(t *testing.T) {
	filePath := writeFile(t, "config.json", `{
		"system": {"dataPath": "/tmp/nemtx", "logLevel": "debug"},
		"network": {"type": "MIJIN_TEST", "generationHash": "`+generationHash+`"},
		"resolver": {"maxConcurrency": 4, "strictAliases": true}
	}`)
	config, err := Load(filePath)
	assert.NoError(t, err)
	assert.NoError(t, config.InsertDefault())
	assert.NoError(t, config.Validate())

	assert.Equal(t, "/tmp/nemtx", config.System.DataPath)
	assert.Equal(t, "debug", config.System.LogLevel)
	network, err := config.Network.NetworkType()
	assert.NoError(t, err)
	assert.Equal(t, transaction.MijinTest, network)
	hash, err := config.Network.GenerationHashValue()
	assert.NoError(t, err)
	assert.Equal(t, generationHash, hash.String())
	assert.Equal(t, transaction.DefaultEpochAdjustment, config.Network.EpochAdjustment)
	assert.Equal(t, 4, config.Resolver.MaxConcurrency)
	assert.True(t, config.Resolver.StrictAliases)
	assert.Equal(t, defaultListenerURL, config.Listener.URL)
	assert.Equal(t, 60*time.Second, config.Listener.ReadTimeoutDuration())
	assert.False(t, config.Metrics.Enabled)
}

func TestLoadYAML(t *testing.T) {
	filePath := writeFile(t, "config.yaml", `
system:
  dataPath: /var/lib/nemtx
network:
  type: test-net
  epochAdjustment: 1573430400
listener:
  url: https://gateway.example
  readTimeout: 5
metrics:
  enabled: true
`)
	config, err := Load(filePath)
	assert.NoError(t, err)
	assert.NoError(t, config.InsertDefault())
	assert.NoError(t, config.Validate())

	assert.Equal(t, "/var/lib/nemtx", config.System.DataPath)
	assert.Equal(t, "info", config.System.LogLevel)
	assert.Equal(t, int64(1573430400), config.Network.EpochAdjustment)
	assert.Equal(t, "https://gateway.example", config.Listener.URL)
	assert.Equal(t, 5*time.Second, config.Listener.ReadTimeoutDuration())
	assert.True(t, config.Metrics.Enabled)
	assert.Equal(t, defaultMetricsAddr, config.Metrics.Addr)

	_, err = config.Network.GenerationHashValue()
	assert.Error(t, err)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.json", `{"system":`))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")

	_, err = Load(writeFile(t, "unknown.yml", "unknownSection: 1\n"))
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	config := &Config{}
	assert.NoError(t, config.InsertDefault())
	config.Merge(&Config{
		System:   &SystemConfig{LogLevel: "error"},
		Network:  &NetworkConfig{GenerationHash: generationHash},
		Resolver: &ResolverConfig{MaxConcurrency: 2},
		Listener: &ListenerConfig{URL: "ws://node:3000"},
		Metrics:  &MetricsConfig{Enabled: true},
	})
	config.Merge(nil)

	assert.Equal(t, "error", config.System.LogLevel)
	assert.NotEmpty(t, config.System.DataPath)
	assert.Equal(t, generationHash, config.Network.GenerationHash)
	assert.Equal(t, transaction.MijinTest.String(), config.Network.Type)
	assert.Equal(t, 2, config.Resolver.MaxConcurrency)
	assert.Equal(t, "ws://node:3000", config.Listener.URL)
	assert.True(t, config.Metrics.Enabled)
	assert.NoError(t, config.Validate())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		modify func(c *Config)
		errStr string
	}{
		{modify: func(c *Config) { c.System.LogLevel = "verbose" }, errStr: "log level verbose is not allowed"},
		{modify: func(c *Config) { c.System.DataPath = "" }, errStr: "dataPath cannot be empty"},
		{modify: func(c *Config) { c.Network.Type = "moon" }, errStr: "unknown network type"},
		{modify: func(c *Config) { c.Network.GenerationHash = "ABCD" }, errStr: "expected 32 bytes"},
		{modify: func(c *Config) { c.Resolver.MaxConcurrency = -1 }, errStr: "invalid maxConcurrency"},
		{modify: func(c *Config) { c.Listener.URL = "" }, errStr: "listener url cannot be empty"},
		{modify: func(c *Config) { c.Listener.ReadTimeout = -1 }, errStr: "invalid readTimeout"},
	}
	for _, testCase := range cases {
		config := &Config{}
		assert.NoError(t, config.InsertDefault())
		testCase.modify(config)
		err := config.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), testCase.errStr)
	}
}
