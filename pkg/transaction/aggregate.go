package transaction

import (
	"encoding/binary"
	"encoding/json"

	"github.com/nemtech/nem2-sdk-go/pkg/codec"
	"github.com/nemtech/nem2-sdk-go/pkg/collection/bytes"
)

// AggregateBody bundles inner transactions executed atomically.
// Inner transactions are stored contiguously and never carry a signature.
type AggregateBody struct {
	Bonded       bool
	Transactions []Transaction
	Cosignatures []Cosignature
}

// NewAggregateComplete returns an aggregate complete transaction. Inner transactions inherit maxFee and deadline.
func NewAggregateComplete(network NetworkType, deadline Deadline, maxFee uint64, inner []Transaction) *Transaction {
	return newAggregate(false, network, deadline, maxFee, inner)
}

// NewAggregateBonded returns an aggregate bonded transaction. Inner transactions inherit maxFee and deadline.
func NewAggregateBonded(network NetworkType, deadline Deadline, maxFee uint64, inner []Transaction) *Transaction {
	return newAggregate(true, network, deadline, maxFee, inner)
}

func newAggregate(bonded bool, network NetworkType, deadline Deadline, maxFee uint64, inner []Transaction) *Transaction {
	var transactions []Transaction
	if len(inner) > 0 {
		transactions = make([]Transaction, len(inner))
	}
	for i, tx := range inner {
		transactions[i] = *tx.withBody(tx.Body)
		transactions[i].MaxFee = maxFee
		transactions[i].Deadline = deadline
		transactions[i].Signature = nil
	}
	return &Transaction{
		Network:  network,
		Version:  DefaultVersion,
		MaxFee:   maxFee,
		Deadline: deadline,
		Body: &AggregateBody{
			Bonded:       bonded,
			Transactions: transactions,
		},
	}
}

func (b *AggregateBody) Type() Type {
	if b.Bonded {
		return TypeAggregateBonded
	}
	return TypeAggregateComplete
}

// ResolveAliases resolves every inner transaction with the same resolver.
func (b *AggregateBody) ResolveAliases(r AliasResolver) (Body, error) {
	return b.ResolveInner(func(int) AliasResolver { return r })
}

// ResolveInner resolves the inner transaction at index i with resolverFor(i).
func (b *AggregateBody) ResolveInner(resolverFor func(index int) AliasResolver) (*AggregateBody, error) {
	resolved := &AggregateBody{
		Bonded: b.Bonded,
	}
	if b.Transactions != nil {
		resolved.Transactions = make([]Transaction, len(b.Transactions))
		for i := range b.Transactions {
			inner, err := b.Transactions[i].ResolveAliases(resolverFor(i))
			if err != nil {
				return nil, err
			}
			resolved.Transactions[i] = *inner
		}
	}
	if b.Cosignatures != nil {
		resolved.Cosignatures = make([]Cosignature, len(b.Cosignatures))
		copy(resolved.Cosignatures, b.Cosignatures)
	}
	return resolved, nil
}

func (b *AggregateBody) encode(w *codec.Writer) error {
	inner := codec.NewWriter()
	for i := range b.Transactions {
		encoded, err := encodeEmbedded(&b.Transactions[i])
		if err != nil {
			return err
		}
		inner.WriteBytes(encoded)
		inner.WriteZeros(bytes.PaddingSize(len(encoded), aggregateAlignment))
	}
	w.WriteUInt32(uint32(inner.Len()))
	w.WriteBytes(inner.Result())
	for _, cosignature := range b.Cosignatures {
		w.WriteBytes(cosignature.Signer[:])
		w.WriteBytes(cosignature.Signature[:])
	}
	return nil
}

// decode consumes the rest of r. The inner block is split using the declared size of each
// embedded transaction, the remainder holds cosignatures.
func (b *AggregateBody) decode(r *codec.Reader) error {
	payloadSize, err := r.ReadUInt32()
	if err != nil {
		return err
	}
	block, err := r.Sub(int(payloadSize))
	if err != nil {
		return newMalformed(err, "aggregate payload size %d exceeds body", payloadSize)
	}
	for block.Remaining() > 0 {
		sizeBytes, err := block.Peek(4)
		if err != nil {
			return newMalformed(err, "reading embedded transaction %d size", len(b.Transactions))
		}
		size := int(binary.LittleEndian.Uint32(sizeBytes))
		if size < EmbeddedHeaderSize {
			return newMalformed(nil, "embedded transaction %d declares size %d", len(b.Transactions), size)
		}
		data, err := block.ReadBytes(size)
		if err != nil {
			return newMalformed(err, "embedded transaction %d declares size %d", len(b.Transactions), size)
		}
		inner, err := DecodeEmbedded(data)
		if err != nil {
			return err
		}
		b.Transactions = append(b.Transactions, *inner)
		padding, err := block.ReadBytes(bytes.PaddingSize(size, aggregateAlignment))
		if err != nil {
			return newMalformed(err, "embedded transaction %d is not padded", len(b.Transactions)-1)
		}
		for _, p := range padding {
			if p != 0 {
				return newMalformed(nil, "embedded transaction %d has non zero padding", len(b.Transactions)-1)
			}
		}
	}
	if r.Remaining()%cosignatureSize != 0 {
		return newMalformed(nil, "%d trailing bytes do not form cosignatures", r.Remaining())
	}
	count := r.Remaining() / cosignatureSize
	if count == 0 {
		return nil
	}
	b.Cosignatures = make([]Cosignature, count)
	for i := range b.Cosignatures {
		if b.Cosignatures[i].Signer, err = readPublicKey(r); err != nil {
			return err
		}
		if err := r.ReadFixed(b.Cosignatures[i].Signature[:]); err != nil {
			return err
		}
	}
	return nil
}

func (b *AggregateBody) MarshalJSON() ([]byte, error) {
	transactions := b.Transactions
	if transactions == nil {
		transactions = []Transaction{}
	}
	cosignatures := b.Cosignatures
	if cosignatures == nil {
		cosignatures = []Cosignature{}
	}
	return json.Marshal(struct {
		Transactions []Transaction `json:"transactions"`
		Cosignatures []Cosignature `json:"cosignatures"`
	}{
		Transactions: transactions,
		Cosignatures: cosignatures,
	})
}
