package transaction

import (
	"github.com/nemtech/nem2-sdk-go/pkg/codec"
)

// LinkAction links or unlinks a remote key.
type LinkAction uint8

const (
	LinkActionUnlink LinkAction = 0
	LinkActionLink   LinkAction = 1
)

// AccountKeyLinkBody delegates harvesting to a remote public key.
type AccountKeyLinkBody struct {
	LinkedPublicKey PublicKey  `json:"linkedPublicKey"`
	Action          LinkAction `json:"linkAction"`
}

func (b *AccountKeyLinkBody) Type() Type { return TypeAccountLink }

func (b *AccountKeyLinkBody) ResolveAliases(AliasResolver) (Body, error) {
	cp := *b
	return &cp, nil
}

func (b *AccountKeyLinkBody) encode(w *codec.Writer) error {
	w.WriteBytes(b.LinkedPublicKey[:])
	w.WriteUInt8(uint8(b.Action))
	return nil
}

func (b *AccountKeyLinkBody) decode(r *codec.Reader) error {
	var err error
	if b.LinkedPublicKey, err = readPublicKey(r); err != nil {
		return err
	}
	action, err := r.ReadUInt8()
	if err != nil {
		return err
	}
	b.Action = LinkAction(action)
	return nil
}
