// nemtx is a CLI which builds, signs, decodes and resolves transactions.
package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/nemtech/nem2-sdk-go/pkg/config"
	"github.com/nemtech/nem2-sdk-go/pkg/log"
)

var globalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to config in JSON or YAML",
	},
	&cli.StringFlag{
		Name:  "data-path",
		Usage: "Directory of the local store",
	},
	&cli.StringFlag{
		Name:  "network",
		Usage: "Network type such as MIJIN_TEST",
	},
	&cli.StringFlag{
		Name:  "generation-hash",
		Usage: "Generation hash of the network",
	},
	&cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level",
	},
}

// loadConfig reads the config file if given and applies the global flags on top.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := &config.Config{}
	if configPath := c.String("config"); configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.Merge(&config.Config{
		System: &config.SystemConfig{
			DataPath: c.String("data-path"),
			LogLevel: c.String("log-level"),
		},
		Network: &config.NetworkConfig{
			Type:           c.String("network"),
			GenerationHash: c.String("generation-hash"),
		},
	})
	if err := cfg.InsertDefault(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (log.Logger, error) {
	return log.NewLogger(cfg.System.LogLevel)
}

func main() {
	logger, err := log.NewDefaultProductionLogger()
	if err != nil {
		panic(err)
	}
	app := cli.App{
		Usage: "Transaction tool for NEM catapult networks",
		Flags: globalFlags,
		Commands: []*cli.Command{
			getAccountCommand(),
			getTransferCommand(),
			getDecodeCommand(),
			getImportCommand(),
			getResolveCommand(),
			getWatchCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		logger.Errorf("Fail running application with %s", err)
		os.Exit(1)
	}
}
