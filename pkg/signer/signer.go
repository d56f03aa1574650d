// Package signer signs encoded transactions and computes their hashes.
package signer

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/nemtech/nem2-sdk-go/pkg/codec"
	"github.com/nemtech/nem2-sdk-go/pkg/collection/bytes"
	"github.com/nemtech/nem2-sdk-go/pkg/crypto"
	"github.com/nemtech/nem2-sdk-go/pkg/transaction"
)

var (
	// ErrNotAnnounced is returned when cosigning a transaction without a known hash.
	ErrNotAnnounced = errors.New("transaction to cosign must be announced first")
	// ErrNotAggregate is returned when cosignatures are requested for a non aggregate transaction.
	ErrNotAggregate = errors.New("cosignatures can only be attached to aggregate transactions")
	// ErrInvalidPayload is returned when the payload is too short to be signed.
	ErrInvalidPayload = errors.New("invalid transaction payload")
)

// SignedTransaction is an encoded transaction ready to be announced.
type SignedTransaction struct {
	Payload codec.Hex               `json:"payload"`
	Hash    transaction.Hash        `json:"hash"`
	Signer  transaction.PublicKey   `json:"signerPublicKey"`
	Type    transaction.Type        `json:"type"`
	Network transaction.NetworkType `json:"networkType"`
}

// CosignatureSignedTransaction is the approval of an announced aggregate.
type CosignatureSignedTransaction struct {
	ParentHash transaction.Hash      `json:"parentHash"`
	Signature  transaction.Signature `json:"signature"`
	Signer     transaction.PublicKey `json:"signerPublicKey"`
}

// Sign encodes tx with the signer of keyPair, signs it and computes the transaction hash.
// The input transaction is not modified.
func Sign(tx *transaction.Transaction, keyPair *crypto.KeyPair, generationHash transaction.Hash) (*SignedTransaction, error) {
	signer := transaction.PublicKey(keyPair.PublicKey())
	unsigned := *tx
	unsigned.Signer = &signer
	unsigned.Signature = nil
	payload, err := transaction.Encode(&unsigned, transaction.Standalone)
	if err != nil {
		return nil, err
	}
	signingData, err := SigningData(payload, generationHash)
	if err != nil {
		return nil, err
	}
	signature := keyPair.Sign(signingData)
	copy(payload[transaction.SignatureOffset:], signature[:])
	hash, err := HashPayload(payload, generationHash)
	if err != nil {
		return nil, err
	}
	return &SignedTransaction{
		Payload: payload,
		Hash:    hash,
		Signer:  signer,
		Type:    tx.Type(),
		Network: tx.Network,
	}, nil
}

// SignCosignature signs the hash of an announced transaction.
func SignCosignature(tx *transaction.Transaction, keyPair *crypto.KeyPair) (*CosignatureSignedTransaction, error) {
	if tx.Info == nil || tx.Info.Hash == nil {
		return nil, ErrNotAnnounced
	}
	return CosignHash(*tx.Info.Hash, keyPair), nil
}

// CosignHash signs parentHash directly.
func CosignHash(parentHash transaction.Hash, keyPair *crypto.KeyPair) *CosignatureSignedTransaction {
	return &CosignatureSignedTransaction{
		ParentHash: parentHash,
		Signature:  keyPair.Sign(parentHash[:]),
		Signer:     keyPair.PublicKey(),
	}
}

// SignWithCosignatories signs an aggregate and attaches the cosignature of every cosignatory.
func SignWithCosignatories(tx *transaction.Transaction, keyPair *crypto.KeyPair, generationHash transaction.Hash, cosignatories ...*crypto.KeyPair) (*SignedTransaction, error) {
	if !tx.IsAggregate() {
		return nil, ErrNotAggregate
	}
	signed, err := Sign(tx, keyPair, generationHash)
	if err != nil {
		return nil, err
	}
	cosignatures := make([]transaction.Cosignature, len(cosignatories))
	for i, cosignatory := range cosignatories {
		cosigned := CosignHash(signed.Hash, cosignatory)
		cosignatures[i] = transaction.Cosignature{
			Signer:    cosigned.Signer,
			Signature: cosigned.Signature,
		}
	}
	signed.Payload = appendCosignatures(signed.Payload, cosignatures)
	return signed, nil
}

// SignWithSignatures signs an aggregate and attaches cosignatures collected offline.
// Every cosignature must be a valid signature of the resulting hash.
func SignWithSignatures(tx *transaction.Transaction, keyPair *crypto.KeyPair, generationHash transaction.Hash, cosignatures []transaction.Cosignature) (*SignedTransaction, error) {
	if !tx.IsAggregate() {
		return nil, ErrNotAggregate
	}
	signed, err := Sign(tx, keyPair, generationHash)
	if err != nil {
		return nil, err
	}
	for _, cosignature := range cosignatures {
		if err := VerifyCosignature(signed.Hash, cosignature); err != nil {
			return nil, err
		}
	}
	signed.Payload = appendCosignatures(signed.Payload, cosignatures)
	return signed, nil
}

// VerifyCosignature checks cosignature against the parent hash.
func VerifyCosignature(parentHash transaction.Hash, cosignature transaction.Cosignature) error {
	if err := crypto.VerifySignature(cosignature.Signer[:], cosignature.Signature[:], parentHash[:]); err != nil {
		return fmt.Errorf("cosignature of %s is invalid: %w", cosignature.Signer, err)
	}
	return nil
}

func appendCosignatures(payload []byte, cosignatures []transaction.Cosignature) []byte {
	writer := codec.NewWriterSize(len(payload) + len(cosignatures)*96)
	writer.WriteBytes(payload)
	for _, cosignature := range cosignatures {
		writer.WriteBytes(cosignature.Signer[:])
		writer.WriteBytes(cosignature.Signature[:])
	}
	writer.PutUInt32At(0, uint32(writer.Len()))
	return writer.Result()
}

// SigningData returns the bytes covered by the signature: the generation hash followed by
// the payload from the version field on. Cosignatures of aggregates are excluded.
func SigningData(payload []byte, generationHash transaction.Hash) ([]byte, error) {
	if len(payload) < transaction.StandaloneHeaderSize {
		return nil, fmt.Errorf("%w: payload has %d bytes", ErrInvalidPayload, len(payload))
	}
	end := len(payload)
	txType, err := transaction.PeekType(payload)
	if err != nil {
		return nil, err
	}
	if txType.IsAggregate() {
		if len(payload) < transaction.StandaloneHeaderSize+4 {
			return nil, fmt.Errorf("%w: aggregate payload has %d bytes", ErrInvalidPayload, len(payload))
		}
		payloadSize := int(binary.LittleEndian.Uint32(payload[transaction.StandaloneHeaderSize:]))
		end = transaction.StandaloneHeaderSize + 4 + payloadSize
		if end > len(payload) {
			return nil, fmt.Errorf("%w: aggregate payload size %d exceeds payload", ErrInvalidPayload, payloadSize)
		}
	}
	return bytes.Join(generationHash[:], payload[transaction.SigningDataOffset:end]), nil
}

// HashPayload computes the transaction hash of a signed payload.
func HashPayload(payload []byte, generationHash transaction.Hash) (transaction.Hash, error) {
	signingData, err := SigningData(payload, generationHash)
	if err != nil {
		return transaction.Hash{}, err
	}
	hash := transaction.Hash{}
	copy(hash[:], crypto.Hash(
		payload[transaction.SignatureOffset:transaction.SignatureOffset+32],
		payload[transaction.SignerOffset:transaction.SignerOffset+crypto.PublicKeyLength],
		signingData,
	))
	return hash, nil
}

// VerifyPayload checks the signature of a signed payload.
func VerifyPayload(payload []byte, generationHash transaction.Hash) error {
	signingData, err := SigningData(payload, generationHash)
	if err != nil {
		return err
	}
	signature := payload[transaction.SignatureOffset : transaction.SignatureOffset+crypto.SignatureLength]
	signer := payload[transaction.SignerOffset : transaction.SignerOffset+crypto.PublicKeyLength]
	return crypto.VerifySignature(signer, signature, signingData)
}
