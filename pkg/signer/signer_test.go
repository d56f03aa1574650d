package signer

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nemtech/nem2-sdk-go/pkg/crypto"
	"github.com/nemtech/nem2-sdk-go/pkg/transaction"
)

var generationHash = transaction.Hash{
	0x57, 0xF7, 0xDA, 0x20, 0x50, 0x08, 0x02, 0x6C, 0x77, 0x6C, 0xB6, 0xAE, 0xD8, 0x43, 0x39, 0x3F,
	0x04, 0xCD, 0x45, 0x8E, 0x0A, 0xA2, 0xD9, 0xF1, 0xD5, 0xF3, 0x1A, 0x40, 0x20, 0x72, 0xB2, 0xD6,
}

func mustKeyPair(t *testing.T, privateKey string) *crypto.KeyPair {
	keyPair, err := crypto.NewKeyPairFromHex(privateKey)
	assert.NoError(t, err)
	return keyPair
}

func sampleTransfer() *transaction.Transaction {
	recipient := transaction.NewAddress(transaction.PublicKey{1, 2, 3}, transaction.MijinTest)
	return transaction.NewTransfer(
		transaction.MijinTest,
		transaction.Deadline(1000),
		100,
		transaction.AddressOf(recipient),
		[]transaction.Mosaic{{ID: 0x0DC67FBE1CAD29E3, Amount: 10}},
		transaction.NewPlainMessage("test-message"),
	)
}

func TestSign(t *testing.T) {
	keyPair := mustKeyPair(t, "787225aaff3d2c71f4ffa32d4f19ec4922f3cd869747f267378f81f8e3fcb12d")
	tx := sampleTransfer()

	signed, err := Sign(tx, keyPair, generationHash)
	assert.NoError(t, err)
	assert.Equal(t, transaction.PublicKey(keyPair.PublicKey()), signed.Signer)
	assert.Equal(t, transaction.TypeTransfer, signed.Type)
	assert.Equal(t, transaction.MijinTest, signed.Network)
	assert.Nil(t, tx.Signer)
	assert.Nil(t, tx.Signature)

	assert.NoError(t, VerifyPayload(signed.Payload, generationHash))

	decoded, err := transaction.Decode(signed.Payload)
	assert.NoError(t, err)
	assert.Equal(t, signed.Signer, *decoded.Signer)
	assert.Equal(t, tx.Body, decoded.Body)

	again, err := Sign(tx, keyPair, generationHash)
	assert.NoError(t, err)
	assert.Equal(t, signed.Payload, again.Payload)
	assert.Equal(t, signed.Hash, again.Hash)

	hash, err := HashPayload(signed.Payload, generationHash)
	assert.NoError(t, err)
	assert.Equal(t, signed.Hash, hash)

	expected := crypto.Hash(
		signed.Payload[12:44],
		signed.Payload[76:108],
		generationHash[:],
		signed.Payload[112:],
	)
	assert.Equal(t, expected, hash[:])
}

func TestSignChangesWithInputs(t *testing.T) {
	first := mustKeyPair(t, "787225aaff3d2c71f4ffa32d4f19ec4922f3cd869747f267378f81f8e3fcb12d")
	second := mustKeyPair(t, "2a2b1f5d366a5dd5dc56c3c757cf4fe6c66e2787087692cf329d7a49a594658b")
	tx := sampleTransfer()

	signed, err := Sign(tx, first, generationHash)
	assert.NoError(t, err)

	otherSigner, err := Sign(tx, second, generationHash)
	assert.NoError(t, err)
	assert.NotEqual(t, signed.Hash, otherSigner.Hash)

	otherNetwork, err := Sign(tx, first, transaction.Hash{1})
	assert.NoError(t, err)
	assert.NotEqual(t, signed.Hash, otherNetwork.Hash)
	assert.Error(t, VerifyPayload(signed.Payload, transaction.Hash{1}))

	tampered := append([]byte{}, signed.Payload...)
	tampered[len(tampered)-1] ^= 0x01
	assert.Error(t, VerifyPayload(tampered, generationHash))
}

func TestSignCosignature(t *testing.T) {
	keyPair := mustKeyPair(t, "2a2b1f5d366a5dd5dc56c3c757cf4fe6c66e2787087692cf329d7a49a594658b")
	tx := sampleTransfer()

	_, err := SignCosignature(tx, keyPair)
	assert.ErrorIs(t, err, ErrNotAnnounced)
	assert.EqualError(t, err, "transaction to cosign must be announced first")

	tx.Info = &transaction.TransactionInfo{Height: 1}
	_, err = SignCosignature(tx, keyPair)
	assert.ErrorIs(t, err, ErrNotAnnounced)

	hash := transaction.Hash{9, 9, 9}
	tx.Info.Hash = &hash
	cosigned, err := SignCosignature(tx, keyPair)
	assert.NoError(t, err)
	assert.Equal(t, hash, cosigned.ParentHash)
	assert.Equal(t, transaction.PublicKey(keyPair.PublicKey()), cosigned.Signer)
	assert.NoError(t, crypto.VerifySignature(cosigned.Signer[:], cosigned.Signature[:], hash[:]))
}

func TestSignWithCosignatories(t *testing.T) {
	initiator := mustKeyPair(t, "787225aaff3d2c71f4ffa32d4f19ec4922f3cd869747f267378f81f8e3fcb12d")
	cosignatory := mustKeyPair(t, "2a2b1f5d366a5dd5dc56c3c757cf4fe6c66e2787087692cf329d7a49a594658b")
	inner := transaction.Embed(sampleTransfer(), cosignatory.PublicKey())
	aggregate := transaction.NewAggregateComplete(transaction.MijinTest, 1000, 100, []transaction.Transaction{inner})

	_, err := SignWithCosignatories(sampleTransfer(), initiator, generationHash, cosignatory)
	assert.ErrorIs(t, err, ErrNotAggregate)

	plain, err := Sign(aggregate, initiator, generationHash)
	assert.NoError(t, err)

	signed, err := SignWithCosignatories(aggregate, initiator, generationHash, cosignatory)
	assert.NoError(t, err)
	assert.Equal(t, plain.Hash, signed.Hash)
	assert.Len(t, signed.Payload, len(plain.Payload)+96)
	assert.Equal(t, uint32(len(signed.Payload)), binary.LittleEndian.Uint32(signed.Payload))
	assert.NoError(t, VerifyPayload(signed.Payload, generationHash))

	hash, err := HashPayload(signed.Payload, generationHash)
	assert.NoError(t, err)
	assert.Equal(t, signed.Hash, hash)

	decoded, err := transaction.Decode(signed.Payload)
	assert.NoError(t, err)
	cosignatures := decoded.Body.(*transaction.AggregateBody).Cosignatures
	assert.Len(t, cosignatures, 1)
	assert.NoError(t, VerifyCosignature(signed.Hash, cosignatures[0]))

	offline, err := SignWithSignatures(aggregate, initiator, generationHash, cosignatures)
	assert.NoError(t, err)
	assert.Equal(t, signed.Payload, offline.Payload)

	cosignatures[0].Signature[0] ^= 0xFF
	_, err = SignWithSignatures(aggregate, initiator, generationHash, cosignatures)
	assert.Contains(t, err.Error(), "is invalid")
}

func TestSigningDataErrors(t *testing.T) {
	_, err := SigningData(make([]byte, 20), generationHash)
	assert.ErrorIs(t, err, ErrInvalidPayload)

	_, err = HashPayload(nil, generationHash)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}
