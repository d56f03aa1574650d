package transaction

import (
	"github.com/nemtech/nem2-sdk-go/pkg/codec"
)

// CosignatoryModificationType adds or removes a cosignatory.
type CosignatoryModificationType uint8

const (
	CosignatoryRemove CosignatoryModificationType = 0
	CosignatoryAdd    CosignatoryModificationType = 1
)

// CosignatoryModification is a single change to the cosignatory set.
type CosignatoryModification struct {
	Type        CosignatoryModificationType `json:"modificationType"`
	Cosignatory PublicKey                   `json:"cosignatoryPublicKey"`
}

// MultisigAccountModificationBody converts an account to multisig or edits its cosignatories.
type MultisigAccountModificationBody struct {
	MinRemovalDelta  int8                      `json:"minRemovalDelta"`
	MinApprovalDelta int8                      `json:"minApprovalDelta"`
	Modifications    []CosignatoryModification `json:"modifications"`
}

func (b *MultisigAccountModificationBody) Type() Type { return TypeModifyMultisigAccount }

func (b *MultisigAccountModificationBody) ResolveAliases(AliasResolver) (Body, error) {
	cp := *b
	if b.Modifications != nil {
		cp.Modifications = make([]CosignatoryModification, len(b.Modifications))
		copy(cp.Modifications, b.Modifications)
	}
	return &cp, nil
}

func (b *MultisigAccountModificationBody) encode(w *codec.Writer) error {
	w.WriteInt8(b.MinRemovalDelta)
	w.WriteInt8(b.MinApprovalDelta)
	if err := writeUInt8Count(w, "modifications", len(b.Modifications)); err != nil {
		return err
	}
	for _, modification := range b.Modifications {
		w.WriteUInt8(uint8(modification.Type))
		w.WriteBytes(modification.Cosignatory[:])
	}
	return nil
}

func (b *MultisigAccountModificationBody) decode(r *codec.Reader) error {
	var err error
	if b.MinRemovalDelta, err = r.ReadInt8(); err != nil {
		return err
	}
	if b.MinApprovalDelta, err = r.ReadInt8(); err != nil {
		return err
	}
	count, err := r.ReadUInt8()
	if err != nil {
		return err
	}
	if count == 0 {
		return nil
	}
	b.Modifications = make([]CosignatoryModification, count)
	for i := range b.Modifications {
		modificationType, err := r.ReadUInt8()
		if err != nil {
			return err
		}
		b.Modifications[i].Type = CosignatoryModificationType(modificationType)
		if b.Modifications[i].Cosignatory, err = readPublicKey(r); err != nil {
			return err
		}
	}
	return nil
}
