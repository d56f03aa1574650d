package transaction

import (
	"golang.org/x/exp/slices"
)

// New returns an unsigned transaction carrying body.
func New(network NetworkType, deadline Deadline, maxFee uint64, body Body) *Transaction {
	return &Transaction{
		Network:  network,
		Version:  DefaultVersion,
		MaxFee:   maxFee,
		Deadline: deadline,
		Body:     body,
	}
}

// NewTransfer returns a transfer with mosaics ordered by id as required by the network.
func NewTransfer(network NetworkType, deadline Deadline, maxFee uint64, recipient UnresolvedAddress, mosaics []Mosaic, message Message) *Transaction {
	var sorted []Mosaic
	if len(mosaics) > 0 {
		sorted = make([]Mosaic, len(mosaics))
		copy(sorted, mosaics)
		slices.SortStableFunc(sorted, func(a, b Mosaic) bool { return a.ID < b.ID })
	}
	return New(network, deadline, maxFee, &TransferBody{
		Recipient: recipient,
		Mosaics:   sorted,
		Message:   &message,
	})
}

// Embed returns tx as an inner transaction signed by signer.
func Embed(tx *Transaction, signer PublicKey) Transaction {
	inner := *tx.withBody(tx.Body)
	inner.Signer = &signer
	inner.Signature = nil
	inner.Info = nil
	return inner
}
