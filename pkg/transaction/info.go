package transaction

import "time"

// TransactionInfo is the confirmation metadata of a transaction.
type TransactionInfo struct {
	Height uint64 `json:"height,string"`
	// Index is the position of the transaction, or of its parent aggregate, in the block.
	Index *uint32 `json:"index,omitempty"`
	// AggregateIndex is the zero based position within the parent aggregate.
	AggregateIndex      *uint32 `json:"aggregateIndex,omitempty"`
	Hash                *Hash   `json:"hash,omitempty"`
	MerkleComponentHash *Hash   `json:"merkleComponentHash,omitempty"`
	AggregateHash       *Hash   `json:"aggregateHash,omitempty"`
}

// Uint32 returns pointer to val.
func Uint32(val uint32) *uint32 {
	return &val
}

// IsInner returns true if the info belongs to a transaction inside an aggregate.
func (i *TransactionInfo) IsInner() bool {
	return i.AggregateIndex != nil
}

// Copy returns a deep copy of the info.
func (i *TransactionInfo) Copy() *TransactionInfo {
	if i == nil {
		return nil
	}
	cp := *i
	if i.Index != nil {
		cp.Index = Uint32(*i.Index)
	}
	if i.AggregateIndex != nil {
		cp.AggregateIndex = Uint32(*i.AggregateIndex)
	}
	cp.Hash = copyHash(i.Hash)
	cp.MerkleComponentHash = copyHash(i.MerkleComponentHash)
	cp.AggregateHash = copyHash(i.AggregateHash)
	return &cp
}

func copyHash(h *Hash) *Hash {
	if h == nil {
		return nil
	}
	cp := *h
	return &cp
}

// Cosignature is an approval of an aggregate by a cosignatory.
type Cosignature struct {
	Signer    PublicKey `json:"signerPublicKey"`
	Signature Signature `json:"signature"`
}

const cosignatureSize = 32 + 64

// Deadline is the number of milliseconds since the network epoch after which
// a transaction is rejected.
type Deadline uint64

// DefaultEpochAdjustment is the network epoch in seconds since unix epoch.
const DefaultEpochAdjustment int64 = 1459468800

// NewDeadline returns the deadline ttl after now, relative to epochAdjustment.
func NewDeadline(now time.Time, ttl time.Duration, epochAdjustment int64) Deadline {
	epoch := time.Unix(epochAdjustment, 0)
	return Deadline(now.Add(ttl).Sub(epoch).Milliseconds())
}

// Time returns the deadline as wall clock time.
func (d Deadline) Time(epochAdjustment int64) time.Time {
	return time.Unix(epochAdjustment, 0).Add(time.Duration(d) * time.Millisecond)
}
