package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/nemtech/nem2-sdk-go/pkg/crypto"
	"github.com/nemtech/nem2-sdk-go/pkg/signer"
	"github.com/nemtech/nem2-sdk-go/pkg/transaction"
)

const aliasPrefix = "@"

// parseRecipient accepts an address or @namespace.
func parseRecipient(str string, network transaction.NetworkType) (transaction.UnresolvedAddress, error) {
	if strings.HasPrefix(str, aliasPrefix) {
		namespace, err := transaction.NewNamespaceID(strings.TrimPrefix(str, aliasPrefix))
		if err != nil {
			return transaction.UnresolvedAddress{}, err
		}
		return transaction.AliasAddress(namespace, network), nil
	}
	address, err := transaction.ParseAddress(str)
	if err != nil {
		return transaction.UnresolvedAddress{}, err
	}
	if address.Network() != network {
		return transaction.UnresolvedAddress{}, fmt.Errorf("address %s belongs to %s but %s is configured", address, address.Network(), network)
	}
	return transaction.AddressOf(address), nil
}

// parseMosaic accepts <hex id>:<amount> or @namespace:<amount>.
func parseMosaic(str string) (transaction.Mosaic, error) {
	parts := strings.Split(str, ":")
	if len(parts) != 2 {
		return transaction.Mosaic{}, fmt.Errorf("invalid mosaic %q. format must be <id>:<amount>", str)
	}
	amount, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return transaction.Mosaic{}, fmt.Errorf("invalid amount of mosaic %q: %w", str, err)
	}
	if strings.HasPrefix(parts[0], aliasPrefix) {
		namespace, err := transaction.NewNamespaceID(strings.TrimPrefix(parts[0], aliasPrefix))
		if err != nil {
			return transaction.Mosaic{}, err
		}
		return transaction.Mosaic{ID: transaction.AliasMosaicID(namespace), Amount: amount}, nil
	}
	id, err := strconv.ParseUint(parts[0], 16, 64)
	if err != nil {
		return transaction.Mosaic{}, fmt.Errorf("invalid id of mosaic %q: %w", str, err)
	}
	if transaction.UnresolvedMosaicID(id).IsAlias() {
		return transaction.Mosaic{}, fmt.Errorf("mosaic id %s has the alias bit set. use @namespace instead", parts[0])
	}
	return transaction.Mosaic{ID: transaction.UnresolvedMosaicID(id), Amount: amount}, nil
}

func signingKeyPair(c *cli.Context) (*crypto.KeyPair, error) {
	if privateKey := c.String("private-key"); privateKey != "" {
		return crypto.NewKeyPairFromHex(privateKey)
	}
	if mnemonic := c.String("mnemonic"); mnemonic != "" {
		return crypto.DeriveKeyPair(mnemonic, c.String("password"), crypto.DefaultKeyPath(c.Int("index")))
	}
	return nil, errors.New("private-key or mnemonic must be specified")
}

func getTransferCommand() *cli.Command {
	return &cli.Command{
		Name:  "transfer",
		Usage: "Build and sign transfer transaction",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "recipient",
				Aliases:  []string{"r"},
				Usage:    "Recipient address or @namespace",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:    "mosaic",
				Aliases: []string{"m"},
				Usage:   "Mosaic as <hex id>:<amount> or @namespace:<amount>",
			},
			&cli.StringFlag{
				Name:  "message",
				Usage: "Plain message",
			},
			&cli.Uint64Flag{
				Name:  "max-fee",
				Usage: "Maximum fee in absolute units",
			},
			&cli.DurationFlag{
				Name:  "ttl",
				Usage: "Time until deadline",
				Value: 2 * time.Hour,
			},
			&cli.StringFlag{
				Name:  "private-key",
				Usage: "Private key of the signer in hex",
			},
			&cli.StringFlag{
				Name:  "mnemonic",
				Usage: "Mnemonic of the signer",
			},
			&cli.StringFlag{
				Name:  "password",
				Usage: "Password of the mnemonic seed",
			},
			&cli.IntFlag{
				Name:  "index",
				Usage: "Account index of the derivation path",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			network, err := cfg.Network.NetworkType()
			if err != nil {
				return err
			}
			generationHash, err := cfg.Network.GenerationHashValue()
			if err != nil {
				return err
			}
			keyPair, err := signingKeyPair(c)
			if err != nil {
				return err
			}
			recipient, err := parseRecipient(c.String("recipient"), network)
			if err != nil {
				return err
			}
			mosaics := []transaction.Mosaic{}
			for _, str := range c.StringSlice("mosaic") {
				mosaic, err := parseMosaic(str)
				if err != nil {
					return err
				}
				mosaics = append(mosaics, mosaic)
			}
			deadline := transaction.NewDeadline(time.Now(), c.Duration("ttl"), cfg.Network.EpochAdjustment)
			tx := transaction.NewTransfer(network, deadline, c.Uint64("max-fee"), recipient, mosaics, transaction.NewPlainMessage(c.String("message")))
			signed, err := signer.Sign(tx, keyPair, generationHash)
			if err != nil {
				return err
			}
			return printJSON(signed)
		},
	}
}
