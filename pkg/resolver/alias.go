package resolver

import (
	"fmt"

	"github.com/nemtech/nem2-sdk-go/pkg/log"
	"github.com/nemtech/nem2-sdk-go/pkg/metrics"
	"github.com/nemtech/nem2-sdk-go/pkg/receipt"
	"github.com/nemtech/nem2-sdk-go/pkg/transaction"
)

// statementResolver resolves aliases of a single transaction at source.
type statementResolver struct {
	statement *receipt.Statement
	source    receipt.Source
	strict    bool
	logger    log.Logger
	metrics   *metrics.Resolver
}

func (r *statementResolver) ResolveAddress(address transaction.UnresolvedAddress) (transaction.UnresolvedAddress, error) {
	namespace, ok := address.Alias()
	if !ok {
		return address, nil
	}
	resolved, found := r.statement.ResolveAddress(address, r.source)
	r.metrics.ObserveAlias("address", found)
	if found {
		return transaction.AddressOf(resolved), nil
	}
	return address, r.unresolved("address", namespace)
}

func (r *statementResolver) ResolveMosaicID(id transaction.UnresolvedMosaicID) (transaction.UnresolvedMosaicID, error) {
	namespace, ok := id.Alias()
	if !ok {
		return id, nil
	}
	resolved, found := r.statement.ResolveMosaicID(id, r.source)
	r.metrics.ObserveAlias("mosaic", found)
	if found {
		return transaction.MosaicIDOf(resolved), nil
	}
	return id, r.unresolved("mosaic", namespace)
}

func (r *statementResolver) unresolved(kind string, namespace transaction.NamespaceID) error {
	if r.strict {
		return fmt.Errorf("%w: %s alias %s at height %d source %s", ErrUnresolvedAlias, kind, namespace, r.statement.Height, r.source)
	}
	r.logger.Warningf("No resolution entry for %s alias %s at height %d source %s", kind, namespace, r.statement.Height, r.source)
	return nil
}
