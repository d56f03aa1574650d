// Package resolver replaces aliases in confirmed transactions with the values they
// pointed to at the time of confirmation, using the resolution statements of each block.
package resolver

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/oklog/ulid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/nemtech/nem2-sdk-go/pkg/log"
	"github.com/nemtech/nem2-sdk-go/pkg/metrics"
	"github.com/nemtech/nem2-sdk-go/pkg/receipt"
	"github.com/nemtech/nem2-sdk-go/pkg/transaction"
)

const defaultMaxConcurrency = 8

// Option configures the Service.
type Option func(*Service)

// WithMaxConcurrency limits the number of statements fetched in parallel.
func WithMaxConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxConcurrency = n
		}
	}
}

// WithStrictAliases fails resolution when an alias has no resolution entry.
func WithStrictAliases(strict bool) Option {
	return func(s *Service) {
		s.strict = strict
	}
}

// WithMetrics records resolution metrics.
func WithMetrics(m *metrics.Resolver) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// Service resolves aliases of confirmed transactions.
type Service struct {
	transactions   TransactionSource
	statements     StatementSource
	logger         log.Logger
	maxConcurrency int
	strict         bool
	metrics        *metrics.Resolver
	fetches        singleflight.Group
}

// New returns a resolution service reading from the given sources.
func New(transactions TransactionSource, statements StatementSource, logger log.Logger, opts ...Option) *Service {
	s := &Service{
		transactions:   transactions,
		statements:     statements,
		logger:         logger,
		maxConcurrency: defaultMaxConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ResolveAliases fetches the transactions of hashes and returns them, in the same order,
// with every alias replaced by the value recorded in the statement of its block.
// Transactions without aliases are returned as fetched. Inputs are never modified.
func (s *Service) ResolveAliases(ctx context.Context, hashes []transaction.Hash) (result []*transaction.Transaction, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveBatch(err, len(hashes), started)
	}()
	if len(hashes) == 0 {
		return []*transaction.Transaction{}, nil
	}
	batchLogger := s.logger.With("batch", newBatchID())

	transactions, err := s.transactions.TransactionsByHash(ctx, hashes)
	if err != nil {
		return nil, err
	}
	if len(transactions) != len(hashes) {
		return nil, fmt.Errorf("requested %d transactions but received %d", len(hashes), len(transactions))
	}
	return s.Resolve(ctx, transactions, batchLogger)
}

// Resolve resolves already fetched transactions. The result keeps the order of transactions.
// The whole batch fails if any transaction lacks its block position. Statements are only
// fetched for blocks of transactions that use aliases.
func (s *Service) Resolve(ctx context.Context, transactions []*transaction.Transaction, logger log.Logger) ([]*transaction.Transaction, error) {
	heights := []uint64{}
	seen := map[uint64]bool{}
	needsResolution := make([]bool, len(transactions))
	for i, tx := range transactions {
		if tx.Info == nil || tx.Info.Height == 0 || tx.Info.Index == nil {
			return nil, &MissingTransactionIndexError{Type: tx.Type()}
		}
		if !transaction.HasAliases(tx) {
			continue
		}
		needsResolution[i] = true
		if !seen[tx.Info.Height] {
			seen[tx.Info.Height] = true
			heights = append(heights, tx.Info.Height)
		}
	}
	if len(heights) == 0 {
		logger.Debugf("No aliases found in %d transactions", len(transactions))
		return append([]*transaction.Transaction{}, transactions...), nil
	}

	statements, err := s.fetchStatements(ctx, heights)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Fetched statements of %d blocks for %d transactions", len(heights), len(transactions))

	resolved := make([]*transaction.Transaction, len(transactions))
	for i, tx := range transactions {
		if !needsResolution[i] {
			resolved[i] = tx
			continue
		}
		res, err := s.resolveTransaction(tx, statements[tx.Info.Height], logger)
		if err != nil {
			return nil, err
		}
		resolved[i] = res
	}
	return resolved, nil
}

func (s *Service) resolveTransaction(tx *transaction.Transaction, statement *receipt.Statement, logger log.Logger) (*transaction.Transaction, error) {
	primary := *tx.Info.Index + 1
	if tx.IsAggregate() {
		return tx.ResolveInnerAliases(func(index int) transaction.AliasResolver {
			return s.newStatementResolver(statement, receipt.Source{PrimaryID: primary, SecondaryID: uint32(index) + 1}, logger)
		})
	}
	return tx.ResolveAliases(s.newStatementResolver(statement, receipt.Source{PrimaryID: primary}, logger))
}

func (s *Service) newStatementResolver(statement *receipt.Statement, source receipt.Source, logger log.Logger) *statementResolver {
	return &statementResolver{
		statement: statement,
		source:    source,
		strict:    s.strict,
		logger:    logger,
		metrics:   s.metrics,
	}
}

// fetchStatements fetches statements of heights concurrently.
// Concurrent batches share in flight fetches of the same height.
func (s *Service) fetchStatements(ctx context.Context, heights []uint64) (map[uint64]*receipt.Statement, error) {
	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(s.maxConcurrency)
	statements := make([]*receipt.Statement, len(heights))
	for i, height := range heights {
		i, height := i, height // https://golang.org/doc/faq#closures_and_goroutines
		eg.Go(func() error {
			statement, err := s.fetchStatement(ectx, height)
			if err != nil {
				return err
			}
			statements[i] = statement
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	result := make(map[uint64]*receipt.Statement, len(heights))
	for i, height := range heights {
		result[height] = statements[i]
	}
	return result, nil
}

// fetchStatement waits for the shared fetch of height until ctx is done.
// The shared fetch runs detached from the contexts of its callers.
func (s *Service) fetchStatement(ctx context.Context, height uint64) (*receipt.Statement, error) {
	ch := s.fetches.DoChan(strconv.FormatUint(height, 10), func() (interface{}, error) {
		started := time.Now()
		statement, err := s.statements.BlockStatement(context.Background(), height)
		s.metrics.ObserveStatementFetch(err, started)
		return statement, err
	})
	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("fetching statement of block %d: %w", height, ctx.Err())
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, fmt.Errorf("fetching statement of block %d: %w", height, res.Err)
	}
	statement, _ := res.Val.(*receipt.Statement)
	if statement == nil {
		statement = &receipt.Statement{Height: height}
	}
	return statement, nil
}

var entropy = struct {
	sync.Mutex
	source io.Reader
}{
	source: ulid.Monotonic(rand.Reader, 0),
}

func newBatchID() string {
	entropy.Lock()
	defer entropy.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy.source).String()
}
