package transaction

import (
	"github.com/nemtech/nem2-sdk-go/pkg/codec"
)

// AccountRestrictionFlags selects the restriction kind and whether it allows or blocks.
type AccountRestrictionFlags uint16

const (
	RestrictionAddress   AccountRestrictionFlags = 0x0001
	RestrictionMosaicID  AccountRestrictionFlags = 0x0002
	RestrictionOperation AccountRestrictionFlags = 0x0004
	RestrictionOutgoing  AccountRestrictionFlags = 0x4000
	RestrictionBlock     AccountRestrictionFlags = 0x8000
)

func writeRestrictionCounts(w *codec.Writer, flags AccountRestrictionFlags, additions, deletions int) error {
	w.WriteUInt16(uint16(flags))
	if err := writeUInt8Count(w, "restriction additions", additions); err != nil {
		return err
	}
	return writeUInt8Count(w, "restriction deletions", deletions)
}

func readRestrictionCounts(r *codec.Reader) (AccountRestrictionFlags, int, int, error) {
	flags, err := r.ReadUInt16()
	if err != nil {
		return 0, 0, 0, err
	}
	additions, err := r.ReadUInt8()
	if err != nil {
		return 0, 0, 0, err
	}
	deletions, err := r.ReadUInt8()
	if err != nil {
		return 0, 0, 0, err
	}
	return AccountRestrictionFlags(flags), int(additions), int(deletions), nil
}

// AccountAddressRestrictionBody edits the addresses allowed or blocked for the signer.
type AccountAddressRestrictionBody struct {
	Flags     AccountRestrictionFlags `json:"restrictionFlags"`
	Additions []UnresolvedAddress     `json:"restrictionAdditions"`
	Deletions []UnresolvedAddress     `json:"restrictionDeletions"`
}

func (b *AccountAddressRestrictionBody) Type() Type { return TypeAccountAddressRestriction }

func (b *AccountAddressRestrictionBody) ResolveAliases(r AliasResolver) (Body, error) {
	additions, err := resolveAddresses(r, b.Additions)
	if err != nil {
		return nil, err
	}
	deletions, err := resolveAddresses(r, b.Deletions)
	if err != nil {
		return nil, err
	}
	return &AccountAddressRestrictionBody{Flags: b.Flags, Additions: additions, Deletions: deletions}, nil
}

func (b *AccountAddressRestrictionBody) encode(w *codec.Writer) error {
	if err := writeRestrictionCounts(w, b.Flags, len(b.Additions), len(b.Deletions)); err != nil {
		return err
	}
	for _, address := range b.Additions {
		w.WriteBytes(address[:])
	}
	for _, address := range b.Deletions {
		w.WriteBytes(address[:])
	}
	return nil
}

func (b *AccountAddressRestrictionBody) decode(r *codec.Reader) error {
	flags, additions, deletions, err := readRestrictionCounts(r)
	if err != nil {
		return err
	}
	b.Flags = flags
	if b.Additions, err = readUnresolvedAddresses(r, additions); err != nil {
		return err
	}
	b.Deletions, err = readUnresolvedAddresses(r, deletions)
	return err
}

func readUnresolvedAddresses(r *codec.Reader, count int) ([]UnresolvedAddress, error) {
	if count == 0 {
		return nil, nil
	}
	addresses := make([]UnresolvedAddress, count)
	for i := range addresses {
		address, err := readUnresolvedAddress(r)
		if err != nil {
			return nil, err
		}
		addresses[i] = address
	}
	return addresses, nil
}

// AccountMosaicRestrictionBody edits the mosaics allowed or blocked for the signer.
type AccountMosaicRestrictionBody struct {
	Flags     AccountRestrictionFlags `json:"restrictionFlags"`
	Additions []UnresolvedMosaicID    `json:"restrictionAdditions"`
	Deletions []UnresolvedMosaicID    `json:"restrictionDeletions"`
}

func (b *AccountMosaicRestrictionBody) Type() Type { return TypeAccountMosaicRestriction }

func (b *AccountMosaicRestrictionBody) ResolveAliases(r AliasResolver) (Body, error) {
	additions, err := resolveMosaicIDs(r, b.Additions)
	if err != nil {
		return nil, err
	}
	deletions, err := resolveMosaicIDs(r, b.Deletions)
	if err != nil {
		return nil, err
	}
	return &AccountMosaicRestrictionBody{Flags: b.Flags, Additions: additions, Deletions: deletions}, nil
}

func (b *AccountMosaicRestrictionBody) encode(w *codec.Writer) error {
	if err := writeRestrictionCounts(w, b.Flags, len(b.Additions), len(b.Deletions)); err != nil {
		return err
	}
	for _, id := range b.Additions {
		w.WriteUInt64(uint64(id))
	}
	for _, id := range b.Deletions {
		w.WriteUInt64(uint64(id))
	}
	return nil
}

func (b *AccountMosaicRestrictionBody) decode(r *codec.Reader) error {
	flags, additions, deletions, err := readRestrictionCounts(r)
	if err != nil {
		return err
	}
	b.Flags = flags
	if b.Additions, err = readUnresolvedMosaicIDs(r, additions); err != nil {
		return err
	}
	b.Deletions, err = readUnresolvedMosaicIDs(r, deletions)
	return err
}

func readUnresolvedMosaicIDs(r *codec.Reader, count int) ([]UnresolvedMosaicID, error) {
	if count == 0 {
		return nil, nil
	}
	ids := make([]UnresolvedMosaicID, count)
	for i := range ids {
		id, err := r.ReadUInt64()
		if err != nil {
			return nil, err
		}
		ids[i] = UnresolvedMosaicID(id)
	}
	return ids, nil
}

// AccountOperationRestrictionBody edits the transaction types the signer may announce.
type AccountOperationRestrictionBody struct {
	Flags     AccountRestrictionFlags `json:"restrictionFlags"`
	Additions []Type                  `json:"restrictionAdditions"`
	Deletions []Type                  `json:"restrictionDeletions"`
}

func (b *AccountOperationRestrictionBody) Type() Type { return TypeAccountOperationRestriction }

func (b *AccountOperationRestrictionBody) ResolveAliases(AliasResolver) (Body, error) {
	return &AccountOperationRestrictionBody{
		Flags:     b.Flags,
		Additions: copyTypes(b.Additions),
		Deletions: copyTypes(b.Deletions),
	}, nil
}

func (b *AccountOperationRestrictionBody) encode(w *codec.Writer) error {
	if err := writeRestrictionCounts(w, b.Flags, len(b.Additions), len(b.Deletions)); err != nil {
		return err
	}
	for _, t := range b.Additions {
		w.WriteUInt16(uint16(t))
	}
	for _, t := range b.Deletions {
		w.WriteUInt16(uint16(t))
	}
	return nil
}

func (b *AccountOperationRestrictionBody) decode(r *codec.Reader) error {
	flags, additions, deletions, err := readRestrictionCounts(r)
	if err != nil {
		return err
	}
	b.Flags = flags
	if b.Additions, err = readTypes(r, additions); err != nil {
		return err
	}
	b.Deletions, err = readTypes(r, deletions)
	return err
}

func readTypes(r *codec.Reader, count int) ([]Type, error) {
	if count == 0 {
		return nil, nil
	}
	types := make([]Type, count)
	for i := range types {
		t, err := r.ReadUInt16()
		if err != nil {
			return nil, err
		}
		types[i] = Type(t)
	}
	return types, nil
}

func copyTypes(types []Type) []Type {
	if types == nil {
		return nil
	}
	cp := make([]Type, len(types))
	copy(cp, types)
	return cp
}
