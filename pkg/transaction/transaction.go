// Package transaction implements the transaction model and its binary codec.
package transaction

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/nemtech/nem2-sdk-go/pkg/codec"
)

// DefaultVersion is the schema version used by all builders.
const DefaultVersion uint8 = 1

// Transaction is the common envelope of every transaction variant.
// Signature, Signer and Info are absent until signed, signed and confirmed respectively.
// Inner transactions of an aggregate share MaxFee and Deadline with their parent.
type Transaction struct {
	Network   NetworkType
	Version   uint8
	MaxFee    uint64
	Deadline  Deadline
	Signature *Signature
	Signer    *PublicKey
	Info      *TransactionInfo
	Body      Body
}

// Body is the variant specific part of a transaction.
// The set of implementations is closed to this package.
type Body interface {
	Type() Type
	// ResolveAliases returns a copy of the body with every alias field resolved by r.
	ResolveAliases(r AliasResolver) (Body, error)
	encode(w *codec.Writer) error
	decode(r *codec.Reader) error
}

// AliasResolver replaces aliases with the concrete values they pointed to.
// Concrete inputs must be returned unchanged.
type AliasResolver interface {
	ResolveAddress(address UnresolvedAddress) (UnresolvedAddress, error)
	ResolveMosaicID(id UnresolvedMosaicID) (UnresolvedMosaicID, error)
}

// Type returns type code of the body.
func (t *Transaction) Type() Type {
	return t.Body.Type()
}

// IsAggregate returns true if the body is an aggregate.
func (t *Transaction) IsAggregate() bool {
	_, ok := t.Body.(*AggregateBody)
	return ok
}

// IsSigned returns true if the signature is present.
func (t *Transaction) IsSigned() bool {
	return t.Signature != nil
}

// IsConfirmed returns true if the transaction was included in a block.
func (t *Transaction) IsConfirmed() bool {
	return t.Info != nil && t.Info.Height > 0
}

// ResolveAliases returns a new transaction with the body resolved by r. The receiver is not modified.
func (t *Transaction) ResolveAliases(r AliasResolver) (*Transaction, error) {
	body, err := t.Body.ResolveAliases(r)
	if err != nil {
		return nil, err
	}
	resolved := t.withBody(body)
	return resolved, nil
}

// ResolveInnerAliases returns a new aggregate with inner transaction i resolved by resolverFor(i).
func (t *Transaction) ResolveInnerAliases(resolverFor func(index int) AliasResolver) (*Transaction, error) {
	aggregate, ok := t.Body.(*AggregateBody)
	if !ok {
		return nil, fmt.Errorf("%s is not an aggregate transaction", t.Type())
	}
	body, err := aggregate.ResolveInner(resolverFor)
	if err != nil {
		return nil, err
	}
	return t.withBody(body), nil
}

func (t *Transaction) withBody(body Body) *Transaction {
	cp := *t
	cp.Body = body
	if t.Signature != nil {
		sig := *t.Signature
		cp.Signature = &sig
	}
	if t.Signer != nil {
		signer := *t.Signer
		cp.Signer = &signer
	}
	cp.Info = t.Info.Copy()
	return &cp
}

// HasAliases returns true if any field of the transaction, including inner transactions, is an alias.
func HasAliases(tx *Transaction) bool {
	probe := &aliasProbe{}
	if _, err := tx.Body.ResolveAliases(probe); err != nil {
		return false
	}
	return probe.found
}

type aliasProbe struct {
	found bool
}

func (p *aliasProbe) ResolveAddress(address UnresolvedAddress) (UnresolvedAddress, error) {
	p.found = p.found || address.IsAlias()
	return address, nil
}

func (p *aliasProbe) ResolveMosaicID(id UnresolvedMosaicID) (UnresolvedMosaicID, error) {
	p.found = p.found || id.IsAlias()
	return id, nil
}

func (t Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      Type             `json:"type"`
		Network   NetworkType      `json:"network"`
		Version   uint8            `json:"version"`
		MaxFee    string           `json:"maxFee"`
		Deadline  string           `json:"deadline"`
		Signature *Signature       `json:"signature,omitempty"`
		Signer    *PublicKey       `json:"signerPublicKey,omitempty"`
		Info      *TransactionInfo `json:"meta,omitempty"`
		Body      Body             `json:"body"`
	}{
		Type:      t.Type(),
		Network:   t.Network,
		Version:   t.Version,
		MaxFee:    strconv.FormatUint(t.MaxFee, 10),
		Deadline:  strconv.FormatUint(uint64(t.Deadline), 10),
		Signature: t.Signature,
		Signer:    t.Signer,
		Info:      t.Info,
		Body:      t.Body,
	})
}
