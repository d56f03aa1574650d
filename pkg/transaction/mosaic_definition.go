package transaction

import (
	"github.com/nemtech/nem2-sdk-go/pkg/codec"
)

// MosaicDefinitionBody creates a mosaic owned by the signer.
type MosaicDefinitionBody struct {
	Nonce        uint32      `json:"nonce"`
	ID           MosaicID    `json:"id"`
	Flags        MosaicFlags `json:"flags"`
	Divisibility uint8       `json:"divisibility"`
	Duration     uint64      `json:"duration,string"`
}

// NewMosaicDefinition returns body defining the mosaic owner creates with nonce.
func NewMosaicDefinition(owner Address, nonce uint32, flags MosaicFlags, divisibility uint8, duration uint64) *MosaicDefinitionBody {
	return &MosaicDefinitionBody{
		Nonce:        nonce,
		ID:           NewMosaicID(nonce, owner),
		Flags:        flags,
		Divisibility: divisibility,
		Duration:     duration,
	}
}

func (b *MosaicDefinitionBody) Type() Type { return TypeMosaicDefinition }

func (b *MosaicDefinitionBody) ResolveAliases(AliasResolver) (Body, error) {
	cp := *b
	return &cp, nil
}

func (b *MosaicDefinitionBody) encode(w *codec.Writer) error {
	w.WriteUInt32(b.Nonce)
	w.WriteUInt64(uint64(b.ID))
	w.WriteUInt8(uint8(b.Flags))
	w.WriteUInt8(b.Divisibility)
	w.WriteUInt64(b.Duration)
	return nil
}

func (b *MosaicDefinitionBody) decode(r *codec.Reader) error {
	var err error
	if b.Nonce, err = r.ReadUInt32(); err != nil {
		return err
	}
	id, err := r.ReadUInt64()
	if err != nil {
		return err
	}
	b.ID = MosaicID(id)
	flags, err := r.ReadUInt8()
	if err != nil {
		return err
	}
	b.Flags = MosaicFlags(flags)
	if b.Divisibility, err = r.ReadUInt8(); err != nil {
		return err
	}
	b.Duration, err = r.ReadUInt64()
	return err
}

// MosaicSupplyChangeAction decreases or increases supply.
type MosaicSupplyChangeAction uint8

const (
	SupplyDecrease MosaicSupplyChangeAction = 0
	SupplyIncrease MosaicSupplyChangeAction = 1
)

// MosaicSupplyChangeBody changes the supply of a mosaic by Delta units.
type MosaicSupplyChangeBody struct {
	MosaicID UnresolvedMosaicID       `json:"mosaicId"`
	Action   MosaicSupplyChangeAction `json:"action"`
	Delta    uint64                   `json:"delta,string"`
}

func (b *MosaicSupplyChangeBody) Type() Type { return TypeMosaicSupplyChange }

func (b *MosaicSupplyChangeBody) ResolveAliases(r AliasResolver) (Body, error) {
	id, err := r.ResolveMosaicID(b.MosaicID)
	if err != nil {
		return nil, err
	}
	return &MosaicSupplyChangeBody{MosaicID: id, Action: b.Action, Delta: b.Delta}, nil
}

func (b *MosaicSupplyChangeBody) encode(w *codec.Writer) error {
	w.WriteUInt64(uint64(b.MosaicID))
	w.WriteUInt8(uint8(b.Action))
	w.WriteUInt64(b.Delta)
	return nil
}

func (b *MosaicSupplyChangeBody) decode(r *codec.Reader) error {
	id, err := r.ReadUInt64()
	if err != nil {
		return err
	}
	b.MosaicID = UnresolvedMosaicID(id)
	action, err := r.ReadUInt8()
	if err != nil {
		return err
	}
	b.Action = MosaicSupplyChangeAction(action)
	b.Delta, err = r.ReadUInt64()
	return err
}
