package transaction

import (
	"github.com/nemtech/nem2-sdk-go/pkg/codec"
)

// MosaicRestrictionType is the comparison applied by a global mosaic restriction.
type MosaicRestrictionType uint8

const (
	MosaicRestrictionNone MosaicRestrictionType = iota
	MosaicRestrictionEQ
	MosaicRestrictionNE
	MosaicRestrictionLT
	MosaicRestrictionLE
	MosaicRestrictionGT
	MosaicRestrictionGE
)

// MosaicAddressRestrictionBody sets the restriction value of an address for a mosaic.
type MosaicAddressRestrictionBody struct {
	MosaicID       UnresolvedMosaicID `json:"mosaicId"`
	RestrictionKey uint64             `json:"restrictionKey,string"`
	PreviousValue  uint64             `json:"previousRestrictionValue,string"`
	NewValue       uint64             `json:"newRestrictionValue,string"`
	TargetAddress  UnresolvedAddress  `json:"targetAddress"`
}

func (b *MosaicAddressRestrictionBody) Type() Type { return TypeMosaicAddressRestriction }

func (b *MosaicAddressRestrictionBody) ResolveAliases(r AliasResolver) (Body, error) {
	id, err := r.ResolveMosaicID(b.MosaicID)
	if err != nil {
		return nil, err
	}
	target, err := r.ResolveAddress(b.TargetAddress)
	if err != nil {
		return nil, err
	}
	cp := *b
	cp.MosaicID = id
	cp.TargetAddress = target
	return &cp, nil
}

func (b *MosaicAddressRestrictionBody) encode(w *codec.Writer) error {
	w.WriteUInt64(uint64(b.MosaicID))
	w.WriteUInt64(b.RestrictionKey)
	w.WriteUInt64(b.PreviousValue)
	w.WriteUInt64(b.NewValue)
	w.WriteBytes(b.TargetAddress[:])
	return nil
}

func (b *MosaicAddressRestrictionBody) decode(r *codec.Reader) error {
	id, err := r.ReadUInt64()
	if err != nil {
		return err
	}
	b.MosaicID = UnresolvedMosaicID(id)
	if b.RestrictionKey, err = r.ReadUInt64(); err != nil {
		return err
	}
	if b.PreviousValue, err = r.ReadUInt64(); err != nil {
		return err
	}
	if b.NewValue, err = r.ReadUInt64(); err != nil {
		return err
	}
	b.TargetAddress, err = readUnresolvedAddress(r)
	return err
}

// MosaicGlobalRestrictionBody sets the network wide restriction of a mosaic.
// ReferenceMosaicID zero means the restriction applies to MosaicID itself.
type MosaicGlobalRestrictionBody struct {
	MosaicID          UnresolvedMosaicID    `json:"mosaicId"`
	ReferenceMosaicID UnresolvedMosaicID    `json:"referenceMosaicId"`
	RestrictionKey    uint64                `json:"restrictionKey,string"`
	PreviousValue     uint64                `json:"previousRestrictionValue,string"`
	NewValue          uint64                `json:"newRestrictionValue,string"`
	PreviousType      MosaicRestrictionType `json:"previousRestrictionType"`
	NewType           MosaicRestrictionType `json:"newRestrictionType"`
}

func (b *MosaicGlobalRestrictionBody) Type() Type { return TypeMosaicGlobalRestriction }

func (b *MosaicGlobalRestrictionBody) ResolveAliases(r AliasResolver) (Body, error) {
	id, err := r.ResolveMosaicID(b.MosaicID)
	if err != nil {
		return nil, err
	}
	reference, err := r.ResolveMosaicID(b.ReferenceMosaicID)
	if err != nil {
		return nil, err
	}
	cp := *b
	cp.MosaicID = id
	cp.ReferenceMosaicID = reference
	return &cp, nil
}

func (b *MosaicGlobalRestrictionBody) encode(w *codec.Writer) error {
	w.WriteUInt64(uint64(b.MosaicID))
	w.WriteUInt64(uint64(b.ReferenceMosaicID))
	w.WriteUInt64(b.RestrictionKey)
	w.WriteUInt64(b.PreviousValue)
	w.WriteUInt64(b.NewValue)
	w.WriteUInt8(uint8(b.PreviousType))
	w.WriteUInt8(uint8(b.NewType))
	return nil
}

func (b *MosaicGlobalRestrictionBody) decode(r *codec.Reader) error {
	id, err := r.ReadUInt64()
	if err != nil {
		return err
	}
	b.MosaicID = UnresolvedMosaicID(id)
	reference, err := r.ReadUInt64()
	if err != nil {
		return err
	}
	b.ReferenceMosaicID = UnresolvedMosaicID(reference)
	if b.RestrictionKey, err = r.ReadUInt64(); err != nil {
		return err
	}
	if b.PreviousValue, err = r.ReadUInt64(); err != nil {
		return err
	}
	if b.NewValue, err = r.ReadUInt64(); err != nil {
		return err
	}
	previousType, err := r.ReadUInt8()
	if err != nil {
		return err
	}
	b.PreviousType = MosaicRestrictionType(previousType)
	newType, err := r.ReadUInt8()
	if err != nil {
		return err
	}
	b.NewType = MosaicRestrictionType(newType)
	return nil
}
