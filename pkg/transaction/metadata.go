package transaction

import (
	"github.com/nemtech/nem2-sdk-go/pkg/codec"
)

// MetadataValue is the part shared by all metadata transactions.
// ValueSizeDelta is the change of the stored value size, Value the xor of old and new value.
type MetadataValue struct {
	TargetAddress     UnresolvedAddress `json:"targetAddress"`
	ScopedMetadataKey uint64            `json:"scopedMetadataKey,string"`
	ValueSizeDelta    int16             `json:"valueSizeDelta"`
	Value             codec.Hex         `json:"value"`
}

func (m MetadataValue) resolve(r AliasResolver) (MetadataValue, error) {
	target, err := r.ResolveAddress(m.TargetAddress)
	if err != nil {
		return MetadataValue{}, err
	}
	return MetadataValue{
		TargetAddress:     target,
		ScopedMetadataKey: m.ScopedMetadataKey,
		ValueSizeDelta:    m.ValueSizeDelta,
		Value:             copyBytes(m.Value),
	}, nil
}

func (m *MetadataValue) encodeHeader(w *codec.Writer) {
	w.WriteBytes(m.TargetAddress[:])
	w.WriteUInt64(m.ScopedMetadataKey)
}

func (m *MetadataValue) encodeValue(w *codec.Writer) error {
	w.WriteInt16(m.ValueSizeDelta)
	if err := writeUInt16Count(w, "metadata value", len(m.Value)); err != nil {
		return err
	}
	w.WriteBytes(m.Value)
	return nil
}

func (m *MetadataValue) decodeHeader(r *codec.Reader) error {
	var err error
	if m.TargetAddress, err = readUnresolvedAddress(r); err != nil {
		return err
	}
	m.ScopedMetadataKey, err = r.ReadUInt64()
	return err
}

func (m *MetadataValue) decodeValue(r *codec.Reader) error {
	var err error
	if m.ValueSizeDelta, err = r.ReadInt16(); err != nil {
		return err
	}
	valueSize, err := r.ReadUInt16()
	if err != nil {
		return err
	}
	m.Value, err = r.ReadBytes(int(valueSize))
	return err
}

// AccountMetadataBody attaches a value to an account.
type AccountMetadataBody struct {
	MetadataValue
}

func (b *AccountMetadataBody) Type() Type { return TypeAccountMetadata }

func (b *AccountMetadataBody) ResolveAliases(r AliasResolver) (Body, error) {
	value, err := b.MetadataValue.resolve(r)
	if err != nil {
		return nil, err
	}
	return &AccountMetadataBody{MetadataValue: value}, nil
}

func (b *AccountMetadataBody) encode(w *codec.Writer) error {
	b.encodeHeader(w)
	return b.encodeValue(w)
}

func (b *AccountMetadataBody) decode(r *codec.Reader) error {
	if err := b.decodeHeader(r); err != nil {
		return err
	}
	return b.decodeValue(r)
}

// MosaicMetadataBody attaches a value to a mosaic.
type MosaicMetadataBody struct {
	MetadataValue
	TargetMosaicID UnresolvedMosaicID `json:"targetMosaicId"`
}

func (b *MosaicMetadataBody) Type() Type { return TypeMosaicMetadata }

func (b *MosaicMetadataBody) ResolveAliases(r AliasResolver) (Body, error) {
	value, err := b.MetadataValue.resolve(r)
	if err != nil {
		return nil, err
	}
	target, err := r.ResolveMosaicID(b.TargetMosaicID)
	if err != nil {
		return nil, err
	}
	return &MosaicMetadataBody{MetadataValue: value, TargetMosaicID: target}, nil
}

func (b *MosaicMetadataBody) encode(w *codec.Writer) error {
	b.encodeHeader(w)
	w.WriteUInt64(uint64(b.TargetMosaicID))
	return b.encodeValue(w)
}

func (b *MosaicMetadataBody) decode(r *codec.Reader) error {
	if err := b.decodeHeader(r); err != nil {
		return err
	}
	target, err := r.ReadUInt64()
	if err != nil {
		return err
	}
	b.TargetMosaicID = UnresolvedMosaicID(target)
	return b.decodeValue(r)
}

// NamespaceMetadataBody attaches a value to a namespace.
type NamespaceMetadataBody struct {
	MetadataValue
	TargetNamespaceID NamespaceID `json:"targetNamespaceId"`
}

func (b *NamespaceMetadataBody) Type() Type { return TypeNamespaceMetadata }

func (b *NamespaceMetadataBody) ResolveAliases(r AliasResolver) (Body, error) {
	value, err := b.MetadataValue.resolve(r)
	if err != nil {
		return nil, err
	}
	return &NamespaceMetadataBody{MetadataValue: value, TargetNamespaceID: b.TargetNamespaceID}, nil
}

func (b *NamespaceMetadataBody) encode(w *codec.Writer) error {
	b.encodeHeader(w)
	w.WriteUInt64(uint64(b.TargetNamespaceID))
	return b.encodeValue(w)
}

func (b *NamespaceMetadataBody) decode(r *codec.Reader) error {
	if err := b.decodeHeader(r); err != nil {
		return err
	}
	target, err := r.ReadUInt64()
	if err != nil {
		return err
	}
	b.TargetNamespaceID = NamespaceID(target)
	return b.decodeValue(r)
}
