package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
	"go.uber.org/ratelimit"

	"github.com/nemtech/nem2-sdk-go/pkg/config"
	"github.com/nemtech/nem2-sdk-go/pkg/log"
	"github.com/nemtech/nem2-sdk-go/pkg/metrics"
	"github.com/nemtech/nem2-sdk-go/pkg/resolver"
	"github.com/nemtech/nem2-sdk-go/pkg/store"
	"github.com/nemtech/nem2-sdk-go/pkg/transaction"
)

func openStore(cfg *config.Config, logger log.Logger) (*store.Store, error) {
	var storeMetrics *metrics.Store
	if cfg.Metrics.Enabled {
		storeMetrics = metrics.NewStore()
	}
	logger.Infof("Opening store at %s", cfg.System.DataPath)
	return store.Open(cfg.System.DataPath, logger, storeMetrics)
}

func newResolverService(cfg *config.Config, s *store.Store, logger log.Logger) *resolver.Service {
	opts := []resolver.Option{
		resolver.WithMaxConcurrency(cfg.Resolver.MaxConcurrency),
		resolver.WithStrictAliases(cfg.Resolver.StrictAliases),
	}
	if cfg.Metrics.Enabled {
		opts = append(opts, resolver.WithMetrics(metrics.NewResolver(cfg.Network.Type)))
	}
	return resolver.New(s, s, logger, opts...)
}

// serveMetrics exposes the prometheus registry until ctx is done.
func serveMetrics(ctx context.Context, cfg *config.Config, logger log.Logger) {
	if !cfg.Metrics.Enabled {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{
		Addr:              cfg.Metrics.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 1 * time.Second,
	}
	go func() {
		<-ctx.Done()
		server.Close()
	}()
	go func() {
		logger.Infof("Serving metrics at %s", cfg.Metrics.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("Fail to serve metrics with %s", err)
		}
	}()
}

func parseHashes(args []string) ([]transaction.Hash, error) {
	hashes := make([]transaction.Hash, len(args))
	for i, arg := range args {
		hash, err := transaction.ParseHash(arg)
		if err != nil {
			return nil, err
		}
		hashes[i] = hash
	}
	return hashes, nil
}

func getImportCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Import confirmed transactions and block statements into the local store",
		ArgsUsage: "<fixtures json>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "rate",
				Usage: "Maximum writes per second. 0 is unlimited",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return errors.New("must specify fixtures to import")
			}
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			network, err := cfg.Network.NetworkType()
			if err != nil {
				return err
			}
			var generationHash *transaction.Hash
			if cfg.Network.GenerationHash != "" {
				hash, err := cfg.Network.GenerationHashValue()
				if err != nil {
					return err
				}
				generationHash = &hash
			}
			f, err := loadFixtures(c.Args().First())
			if err != nil {
				return err
			}
			s, err := openStore(cfg, logger)
			if err != nil {
				return err
			}
			defer s.Close()
			limiter := ratelimit.NewUnlimited()
			if rate := c.Int("rate"); rate > 0 {
				limiter = ratelimit.New(rate)
			}
			if err := importFixtures(c.Context, s, f, network, generationHash, limiter); err != nil {
				return err
			}
			fmt.Printf("Imported %d transactions and %d statements\n", len(f.Transactions), len(f.Statements))
			return nil
		},
	}
}

func getResolveCommand() *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Usage:     "Resolve aliases of stored transactions",
		ArgsUsage: "<hash>...",
		Action: func(c *cli.Context) error {
			if c.Args().Len() == 0 {
				return errors.New("must specify at least one transaction hash")
			}
			hashes, err := parseHashes(c.Args().Slice())
			if err != nil {
				return err
			}
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			s, err := openStore(cfg, logger)
			if err != nil {
				return err
			}
			defer s.Close()
			txs, err := newResolverService(cfg, s, logger).ResolveAliases(c.Context, hashes)
			if err != nil {
				return err
			}
			return printJSON(txs)
		},
	}
}
