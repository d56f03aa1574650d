package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/ratelimit"

	"github.com/nemtech/nem2-sdk-go/pkg/codec"
	"github.com/nemtech/nem2-sdk-go/pkg/receipt"
	"github.com/nemtech/nem2-sdk-go/pkg/signer"
	"github.com/nemtech/nem2-sdk-go/pkg/store"
	"github.com/nemtech/nem2-sdk-go/pkg/transaction"
)

type transactionFixture struct {
	Payload codec.Hex         `json:"payload"`
	Hash    *transaction.Hash `json:"hash"`
	Height  uint64            `json:"height,string"`
	Index   uint32            `json:"index"`
}

type addressResolutionFixture struct {
	Namespace transaction.NamespaceID          `json:"namespace"`
	Entries   []receipt.AddressResolutionEntry `json:"resolutionEntries"`
}

type statementFixture struct {
	Height             uint64                              `json:"height,string"`
	AddressResolutions []addressResolutionFixture          `json:"addressResolutionStatements"`
	MosaicResolutions  []receipt.MosaicResolutionStatement `json:"mosaicResolutionStatements"`
}

// fixtures is the document accepted by the import command.
type fixtures struct {
	Transactions []transactionFixture `json:"transactions"`
	Statements   []statementFixture   `json:"statements"`
}

func loadFixtures(filePath string) (*fixtures, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	result := &fixtures{}
	if err := json.Unmarshal(data, result); err != nil {
		return nil, fmt.Errorf("parsing fixtures %s: %w", filePath, err)
	}
	return result, nil
}

func (f statementFixture) toStatement(network transaction.NetworkType) *receipt.Statement {
	statement := &receipt.Statement{Height: f.Height}
	for _, resolution := range f.AddressResolutions {
		statement.AddressResolutions = append(statement.AddressResolutions, receipt.AddressResolutionStatement{
			Height:     f.Height,
			Unresolved: transaction.AliasAddress(resolution.Namespace, network),
			Entries:    resolution.Entries,
		})
	}
	for _, resolution := range f.MosaicResolutions {
		resolution.Height = f.Height
		statement.MosaicResolutions = append(statement.MosaicResolutions, resolution)
	}
	return statement
}

// importFixtures writes the fixtures into s. Transactions without hash need the generation hash.
func importFixtures(ctx context.Context, s *store.Store, f *fixtures, network transaction.NetworkType, generationHash *transaction.Hash, limiter ratelimit.Limiter) error {
	for i, fixture := range f.Transactions {
		limiter.Take()
		hash := fixture.Hash
		if hash == nil {
			if generationHash == nil {
				return errors.New("generationHash is required to import transactions without hash")
			}
			computed, err := signer.HashPayload(fixture.Payload, *generationHash)
			if err != nil {
				return fmt.Errorf("transaction %d: %w", i, err)
			}
			hash = &computed
		}
		if err := s.PutTransaction(ctx, *hash, fixture.Height, fixture.Index, fixture.Payload); err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
	}
	for _, fixture := range f.Statements {
		limiter.Take()
		if err := s.PutStatement(ctx, fixture.toStatement(network)); err != nil {
			return fmt.Errorf("statement of block %d: %w", fixture.Height, err)
		}
	}
	return nil
}
