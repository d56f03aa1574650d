package transaction

import (
	"github.com/nemtech/nem2-sdk-go/pkg/codec"
)

// AliasAction links or unlinks an alias.
type AliasAction uint8

const (
	AliasUnlink AliasAction = 0
	AliasLink   AliasAction = 1
)

// AddressAliasBody links a namespace to an account address.
type AddressAliasBody struct {
	Action      AliasAction `json:"aliasAction"`
	NamespaceID NamespaceID `json:"namespaceId"`
	Address     Address     `json:"address"`
}

func (b *AddressAliasBody) Type() Type { return TypeAddressAlias }

func (b *AddressAliasBody) ResolveAliases(AliasResolver) (Body, error) {
	cp := *b
	return &cp, nil
}

func (b *AddressAliasBody) encode(w *codec.Writer) error {
	w.WriteUInt8(uint8(b.Action))
	w.WriteUInt64(uint64(b.NamespaceID))
	w.WriteBytes(b.Address[:])
	return nil
}

func (b *AddressAliasBody) decode(r *codec.Reader) error {
	action, err := r.ReadUInt8()
	if err != nil {
		return err
	}
	b.Action = AliasAction(action)
	namespaceID, err := r.ReadUInt64()
	if err != nil {
		return err
	}
	b.NamespaceID = NamespaceID(namespaceID)
	b.Address, err = readAddress(r)
	return err
}

// MosaicAliasBody links a namespace to a mosaic id.
type MosaicAliasBody struct {
	Action      AliasAction `json:"aliasAction"`
	NamespaceID NamespaceID `json:"namespaceId"`
	MosaicID    MosaicID    `json:"mosaicId"`
}

func (b *MosaicAliasBody) Type() Type { return TypeMosaicAlias }

func (b *MosaicAliasBody) ResolveAliases(AliasResolver) (Body, error) {
	cp := *b
	return &cp, nil
}

func (b *MosaicAliasBody) encode(w *codec.Writer) error {
	w.WriteUInt8(uint8(b.Action))
	w.WriteUInt64(uint64(b.NamespaceID))
	w.WriteUInt64(uint64(b.MosaicID))
	return nil
}

func (b *MosaicAliasBody) decode(r *codec.Reader) error {
	action, err := r.ReadUInt8()
	if err != nil {
		return err
	}
	b.Action = AliasAction(action)
	namespaceID, err := r.ReadUInt64()
	if err != nil {
		return err
	}
	b.NamespaceID = NamespaceID(namespaceID)
	mosaicID, err := r.ReadUInt64()
	if err != nil {
		return err
	}
	b.MosaicID = MosaicID(mosaicID)
	return nil
}
