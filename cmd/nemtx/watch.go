package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/nemtech/nem2-sdk-go/pkg/listener"
	"github.com/nemtech/nem2-sdk-go/pkg/metrics"
	"github.com/nemtech/nem2-sdk-go/pkg/transaction"
)

func getWatchCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Watch confirmed transactions of addresses and print them with aliases resolved",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "address",
				Aliases:  []string{"a"},
				Usage:    "Address to watch",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			addresses := []transaction.Address{}
			for _, str := range c.StringSlice("address") {
				address, err := transaction.ParseAddress(str)
				if err != nil {
					return err
				}
				addresses = append(addresses, address)
			}
			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			s, err := openStore(cfg, logger)
			if err != nil {
				return err
			}
			defer s.Close()
			service := newResolverService(cfg, s, logger)
			serveMetrics(ctx, cfg, logger)

			opts := []listener.Option{listener.WithReadTimeout(cfg.Listener.ReadTimeoutDuration())}
			if cfg.Metrics.Enabled {
				opts = append(opts, listener.WithMetrics(metrics.NewListener()))
			}
			l := listener.New(cfg.Listener.URL, logger, opts...)
			if err := l.Open(ctx); err != nil {
				return err
			}
			defer l.Close()
			for _, address := range addresses {
				if err := l.Subscribe(address); err != nil {
					return err
				}
			}
			for confirmation := range l.Confirmations() {
				logger.Debugf("Received confirmation of %s at height %d", confirmation.Hash, confirmation.Height)
				txs, err := service.ResolveAliases(ctx, []transaction.Hash{confirmation.Hash})
				if err != nil {
					logger.Warningf("Fail to resolve transaction %s with %s", confirmation.Hash, err)
					continue
				}
				if err := printJSON(txs[0]); err != nil {
					return err
				}
			}
			if err := l.Err(); err != nil && !errors.Is(ctx.Err(), context.Canceled) {
				return err
			}
			logger.Info("Closing watcher")
			return nil
		},
	}
}
