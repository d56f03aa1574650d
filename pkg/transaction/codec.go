package transaction

import (
	"encoding/binary"
	"errors"

	"github.com/nemtech/nem2-sdk-go/pkg/codec"
	"github.com/nemtech/nem2-sdk-go/pkg/collection/bytes"
)

// Form selects the header layout of an encoded transaction.
type Form uint8

const (
	// Standalone is the layout of an announced top level transaction.
	Standalone Form = iota
	// Embedded is the layout of a transaction inside an aggregate.
	Embedded
)

const (
	// SignatureOffset is the position of the signature in a standalone payload.
	SignatureOffset = 4 + 8
	// SignerOffset is the position of the signer in a standalone payload.
	SignerOffset = SignatureOffset + 64
	// SigningDataOffset is where the signed part of a standalone payload starts.
	SigningDataOffset = SignerOffset + 32 + 4
	// StandaloneHeaderSize is the size of the standalone header preceding the body.
	StandaloneHeaderSize = SigningDataOffset + 2 + 2 + 8 + 8
	// EmbeddedHeaderSize is the size of the embedded header preceding the body.
	EmbeddedHeaderSize = 4 + 32 + 4 + 2 + 2

	typeOffset         = SigningDataOffset + 2
	aggregateAlignment = 8
)

// bodyFactories is the dispatch table from type code to an empty body of that variant.
var bodyFactories = map[Type]func() Body{
	TypeTransfer:                    func() Body { return &TransferBody{} },
	TypeRegisterNamespace:           func() Body { return &NamespaceRegistrationBody{} },
	TypeAddressAlias:                func() Body { return &AddressAliasBody{} },
	TypeMosaicAlias:                 func() Body { return &MosaicAliasBody{} },
	TypeMosaicDefinition:            func() Body { return &MosaicDefinitionBody{} },
	TypeMosaicSupplyChange:          func() Body { return &MosaicSupplyChangeBody{} },
	TypeModifyMultisigAccount:       func() Body { return &MultisigAccountModificationBody{} },
	TypeAggregateComplete:           func() Body { return &AggregateBody{} },
	TypeAggregateBonded:             func() Body { return &AggregateBody{Bonded: true} },
	TypeHashLock:                    func() Body { return &HashLockBody{} },
	TypeSecretLock:                  func() Body { return &SecretLockBody{} },
	TypeSecretProof:                 func() Body { return &SecretProofBody{} },
	TypeAccountLink:                 func() Body { return &AccountKeyLinkBody{} },
	TypeAccountAddressRestriction:   func() Body { return &AccountAddressRestrictionBody{} },
	TypeAccountMosaicRestriction:    func() Body { return &AccountMosaicRestrictionBody{} },
	TypeAccountOperationRestriction: func() Body { return &AccountOperationRestrictionBody{} },
	TypeMosaicAddressRestriction:    func() Body { return &MosaicAddressRestrictionBody{} },
	TypeMosaicGlobalRestriction:     func() Body { return &MosaicGlobalRestrictionBody{} },
	TypeAccountMetadata:             func() Body { return &AccountMetadataBody{} },
	TypeMosaicMetadata:              func() Body { return &MosaicMetadataBody{} },
	TypeNamespaceMetadata:           func() Body { return &NamespaceMetadataBody{} },
}

// SupportedTypes returns every type code the codec can encode and decode.
func SupportedTypes() []Type {
	types := make([]Type, 0, len(bodyFactories))
	for t := range bodyFactories {
		types = append(types, t)
	}
	return types
}

func newBody(t Type) (Body, error) {
	factory, ok := bodyFactories[t]
	if !ok {
		return nil, &UnsupportedTransactionTypeError{Type: t}
	}
	return factory(), nil
}

// Encode returns the binary form of tx. Missing signature and signer are written as zeros.
func Encode(tx *Transaction, form Form) ([]byte, error) {
	if tx.Body == nil {
		return nil, newMalformed(nil, "transaction has no body")
	}
	if _, ok := bodyFactories[tx.Body.Type()]; !ok {
		return nil, &UnsupportedTransactionTypeError{Type: tx.Body.Type()}
	}
	switch form {
	case Standalone:
		return encodeStandalone(tx)
	case Embedded:
		return encodeEmbedded(tx)
	default:
		return nil, errors.New("unknown transaction form")
	}
}

func encodeStandalone(tx *Transaction) ([]byte, error) {
	writer := codec.NewWriterSize(StandaloneHeaderSize)
	writer.WriteUInt32(0)
	writer.WriteZeros(8)
	if tx.Signature != nil {
		writer.WriteBytes(tx.Signature[:])
	} else {
		writer.WriteZeros(len(Signature{}))
	}
	writeSigner(writer, tx.Signer)
	writer.WriteZeros(4)
	writer.WriteUInt16(versionNetwork(tx))
	writer.WriteUInt16(uint16(tx.Body.Type()))
	writer.WriteUInt64(tx.MaxFee)
	writer.WriteUInt64(uint64(tx.Deadline))
	if err := tx.Body.encode(writer); err != nil {
		return nil, err
	}
	writer.PutUInt32At(0, uint32(writer.Len()))
	return writer.Result(), nil
}

func encodeEmbedded(tx *Transaction) ([]byte, error) {
	if tx.IsAggregate() {
		return nil, newMalformed(nil, "aggregate transaction cannot be embedded")
	}
	writer := codec.NewWriterSize(EmbeddedHeaderSize)
	writer.WriteUInt32(0)
	writeSigner(writer, tx.Signer)
	writer.WriteZeros(4)
	writer.WriteUInt16(versionNetwork(tx))
	writer.WriteUInt16(uint16(tx.Body.Type()))
	if err := tx.Body.encode(writer); err != nil {
		return nil, err
	}
	writer.PutUInt32At(0, uint32(writer.Len()))
	return writer.Result(), nil
}

func writeSigner(writer *codec.Writer, signer *PublicKey) {
	if signer != nil {
		writer.WriteBytes(signer[:])
		return
	}
	writer.WriteZeros(len(PublicKey{}))
}

func versionNetwork(tx *Transaction) uint16 {
	return uint16(tx.Network)<<8 | uint16(tx.Version)
}

// Decode parses a standalone payload. The declared size must match the length of data.
func Decode(data []byte) (*Transaction, error) {
	reader := codec.NewReader(data)
	size, err := reader.ReadUInt32()
	if err != nil {
		return nil, newMalformed(err, "reading size")
	}
	if int(size) != len(data) {
		return nil, newMalformed(nil, "declared size %d does not match %d bytes", size, len(data))
	}
	if err := reader.Skip(8); err != nil {
		return nil, newMalformed(err, "reading header")
	}
	tx := &Transaction{}
	signature := Signature{}
	if err := reader.ReadFixed(signature[:]); err != nil {
		return nil, newMalformed(err, "reading signature")
	}
	if !bytes.IsZero(signature[:]) {
		tx.Signature = &signature
	}
	if err := readSigner(reader, tx); err != nil {
		return nil, err
	}
	if err := reader.Skip(4); err != nil {
		return nil, newMalformed(err, "reading header")
	}
	body, err := readVersionAndType(reader, tx)
	if err != nil {
		return nil, err
	}
	if tx.MaxFee, err = reader.ReadUInt64(); err != nil {
		return nil, newMalformed(err, "reading max fee")
	}
	deadline, err := reader.ReadUInt64()
	if err != nil {
		return nil, newMalformed(err, "reading deadline")
	}
	tx.Deadline = Deadline(deadline)
	if err := decodeBody(reader, body); err != nil {
		return nil, err
	}
	tx.Body = body
	if aggregate, ok := body.(*AggregateBody); ok {
		for i := range aggregate.Transactions {
			aggregate.Transactions[i].MaxFee = tx.MaxFee
			aggregate.Transactions[i].Deadline = tx.Deadline
		}
	}
	return tx, nil
}

// DecodeEmbedded parses a single embedded payload. The declared size must match the length of data.
func DecodeEmbedded(data []byte) (*Transaction, error) {
	reader := codec.NewReader(data)
	size, err := reader.ReadUInt32()
	if err != nil {
		return nil, newMalformed(err, "reading size")
	}
	if int(size) != len(data) {
		return nil, newMalformed(nil, "declared embedded size %d does not match %d bytes", size, len(data))
	}
	tx := &Transaction{}
	if err := readSigner(reader, tx); err != nil {
		return nil, err
	}
	if err := reader.Skip(4); err != nil {
		return nil, newMalformed(err, "reading header")
	}
	body, err := readVersionAndType(reader, tx)
	if err != nil {
		return nil, err
	}
	if body.Type().IsAggregate() {
		return nil, newMalformed(nil, "aggregate transaction cannot be embedded")
	}
	if err := decodeBody(reader, body); err != nil {
		return nil, err
	}
	tx.Body = body
	return tx, nil
}

func readSigner(reader *codec.Reader, tx *Transaction) error {
	signer := PublicKey{}
	if err := reader.ReadFixed(signer[:]); err != nil {
		return newMalformed(err, "reading signer")
	}
	if !bytes.IsZero(signer[:]) {
		tx.Signer = &signer
	}
	return nil
}

func readVersionAndType(reader *codec.Reader, tx *Transaction) (Body, error) {
	versionNetwork, err := reader.ReadUInt16()
	if err != nil {
		return nil, newMalformed(err, "reading version")
	}
	tx.Version = uint8(versionNetwork)
	tx.Network = NetworkType(versionNetwork >> 8)
	typeCode, err := reader.ReadUInt16()
	if err != nil {
		return nil, newMalformed(err, "reading type")
	}
	return newBody(Type(typeCode))
}

func decodeBody(reader *codec.Reader, body Body) error {
	if err := body.decode(reader); err != nil {
		var malformed *MalformedTransactionError
		var unsupported *UnsupportedTransactionTypeError
		if errors.As(err, &malformed) || errors.As(err, &unsupported) {
			return err
		}
		return newMalformed(err, "reading %s body", body.Type())
	}
	if reader.Remaining() != 0 {
		return newMalformed(nil, "%d bytes left after %s body", reader.Remaining(), body.Type())
	}
	return nil
}

// PeekType returns the type code of a standalone payload without decoding it.
func PeekType(data []byte) (Type, error) {
	reader := codec.NewReader(data)
	typeBytes, err := reader.PeekAt(typeOffset, 2)
	if err != nil {
		return 0, newMalformed(err, "reading type")
	}
	return Type(binary.LittleEndian.Uint16(typeBytes)), nil
}
