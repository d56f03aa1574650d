package main

import (
	"errors"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/nemtech/nem2-sdk-go/pkg/codec"
	"github.com/nemtech/nem2-sdk-go/pkg/signer"
	"github.com/nemtech/nem2-sdk-go/pkg/transaction"
)

type decodedTransaction struct {
	Hash        *transaction.Hash        `json:"hash,omitempty"`
	Verified    *bool                    `json:"verified,omitempty"`
	Transaction *transaction.Transaction `json:"transaction"`
}

// decodePayload decodes a standalone payload. The hash and signature check need the generation hash.
func decodePayload(payloadHex string, generationHash *transaction.Hash) (*decodedTransaction, error) {
	payload, err := codec.HexToBytes(strings.TrimSpace(payloadHex))
	if err != nil {
		return nil, err
	}
	tx, err := transaction.Decode(payload)
	if err != nil {
		return nil, err
	}
	result := &decodedTransaction{Transaction: tx}
	if generationHash == nil || !tx.IsSigned() {
		return result, nil
	}
	hash, err := signer.HashPayload(payload, *generationHash)
	if err != nil {
		return nil, err
	}
	verified := signer.VerifyPayload(payload, *generationHash) == nil
	result.Hash = &hash
	result.Verified = &verified
	return result, nil
}

func getDecodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "Decode signed transaction payload to JSON",
		ArgsUsage: "<payload hex>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return errors.New("must specify payload to decode")
			}
			cfg, err := loadConfig(c)
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
			decoded, err := decodePayload(c.Args().First(), generationHash)
			if err != nil {
				return err
			}
			return printJSON(decoded)
		},
	}
}
