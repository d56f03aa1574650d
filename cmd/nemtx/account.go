package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/nemtech/nem2-sdk-go/pkg/crypto"
	"github.com/nemtech/nem2-sdk-go/pkg/transaction"
)

type account struct {
	Mnemonic   string                `json:"mnemonic,omitempty"`
	Path       string                `json:"path,omitempty"`
	PrivateKey string                `json:"privateKey"`
	PublicKey  transaction.PublicKey `json:"publicKey"`
	Address    transaction.Address   `json:"address"`
}

func (a account) String() string {
	return fmt.Sprintf("mnemonic: %s\npath: %s\nprivateKey: %s\npublicKey: %s\naddress: %s", a.Mnemonic, a.Path, a.PrivateKey, a.PublicKey, a.Address.Pretty())
}

func newAccount(mnemonic, password string, index int, network transaction.NetworkType) (*account, error) {
	path := crypto.DefaultKeyPath(index)
	keyPair, err := crypto.DeriveKeyPair(mnemonic, password, path)
	if err != nil {
		return nil, err
	}
	publicKey := transaction.PublicKey(keyPair.PublicKey())
	return &account{
		Mnemonic:   mnemonic,
		Path:       path,
		PrivateKey: fmt.Sprintf("%X", keyPair.PrivateKey()),
		PublicKey:  publicKey,
		Address:    transaction.NewAddress(publicKey, network),
	}, nil
}

func printJSON(value interface{}) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func getAccountCommand() *cli.Command {
	return &cli.Command{
		Name:  "account",
		Usage: "Account related commands",
		Subcommands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "generate new account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "mnemonic",
						Usage: "Mnemonic to derive keys from. New one is generated when empty",
					},
					&cli.StringFlag{
						Name:  "password",
						Usage: "Password of the mnemonic seed",
					},
					&cli.IntFlag{
						Name:        "index",
						Usage:       "Account index of the derivation path",
						DefaultText: "0",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print in JSON format",
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
					mnemonic := c.String("mnemonic")
					if mnemonic == "" {
						mnemonic, err = crypto.GenerateMnemonic()
						if err != nil {
							return err
						}
					}
					acc, err := newAccount(mnemonic, c.String("password"), c.Int("index"), network)
					if err != nil {
						return err
					}
					if !c.Bool("json") {
						fmt.Println(acc)
						return nil
					}
					return printJSON(acc)
				},
			},
			{
				Name:  "verify",
				Usage: "verify address",
				Action: func(c *cli.Context) error {
					if c.Args().Len() != 1 {
						return errors.New("must specify address to verify")
					}
					address, err := transaction.ParseAddress(c.Args().First())
					if err != nil {
						return err
					}
					fmt.Printf("%s is a valid %s address\n", address.Pretty(), address.Network())
					return nil
				},
			},
		},
	}
}
