package transaction

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/nemtech/nem2-sdk-go/pkg/crypto"
)

// MosaicID identifies a mosaic definition. Mosaic ids never have the highest bit set.
type MosaicID uint64

// NewMosaicID derives the id of a mosaic created by owner with nonce.
func NewMosaicID(nonce uint32, owner Address) MosaicID {
	nonceBytes := make([]byte, 4)
	binary.LittleEndian.PutUint32(nonceBytes, nonce)
	digest := crypto.Hash(nonceBytes, owner[:])
	return MosaicID(binary.LittleEndian.Uint64(digest[:8]) &^ idHighBit)
}

func (m MosaicID) String() string {
	return fmt.Sprintf("%016X", uint64(m))
}

func (m MosaicID) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *MosaicID) UnmarshalJSON(b []byte) error {
	id, err := unmarshalHexID(b)
	if err != nil {
		return err
	}
	*m = MosaicID(id)
	return nil
}

// unmarshalHexID parses the 16 digit hex form used for mosaic and namespace ids.
func unmarshalHexID(b []byte) (uint64, error) {
	str := ""
	if err := json.Unmarshal(b, &str); err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(str, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", str, err)
	}
	return id, nil
}

// UnresolvedMosaicID is either a concrete mosaic id or a namespace id aliasing one.
// The two are distinguished by the highest bit.
type UnresolvedMosaicID uint64

// MosaicIDOf wraps a concrete mosaic id.
func MosaicIDOf(id MosaicID) UnresolvedMosaicID {
	return UnresolvedMosaicID(id)
}

// AliasMosaicID returns an unresolved mosaic id pointing at namespace.
func AliasMosaicID(namespace NamespaceID) UnresolvedMosaicID {
	return UnresolvedMosaicID(uint64(namespace) | idHighBit)
}

// IsAlias returns true if the value names a namespace.
func (u UnresolvedMosaicID) IsAlias() bool {
	return uint64(u)&idHighBit != 0
}

// Alias returns the namespace id if the value is an alias.
func (u UnresolvedMosaicID) Alias() (NamespaceID, bool) {
	if !u.IsAlias() {
		return 0, false
	}
	return NamespaceID(u), true
}

// MosaicID returns the concrete id if the value is not an alias.
func (u UnresolvedMosaicID) MosaicID() (MosaicID, bool) {
	if u.IsAlias() {
		return 0, false
	}
	return MosaicID(u), true
}

func (u UnresolvedMosaicID) String() string {
	return fmt.Sprintf("%016X", uint64(u))
}

func (u UnresolvedMosaicID) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

func (u *UnresolvedMosaicID) UnmarshalJSON(b []byte) error {
	id, err := unmarshalHexID(b)
	if err != nil {
		return err
	}
	*u = UnresolvedMosaicID(id)
	return nil
}

// Mosaic is an amount of a mosaic.
type Mosaic struct {
	ID     UnresolvedMosaicID `json:"id"`
	Amount uint64             `json:"amount"`
}

func (m Mosaic) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID     UnresolvedMosaicID `json:"id"`
		Amount string             `json:"amount"`
	}{
		ID:     m.ID,
		Amount: strconv.FormatUint(m.Amount, 10),
	})
}

// MosaicFlags is the bit set of mosaic properties.
type MosaicFlags uint8

const (
	MosaicFlagNone          MosaicFlags = 0x00
	MosaicFlagSupplyMutable MosaicFlags = 0x01
	MosaicFlagTransferable  MosaicFlags = 0x02
	MosaicFlagRestrictable  MosaicFlags = 0x04
)

// Has returns true if every bit of flag is set.
func (f MosaicFlags) Has(flag MosaicFlags) bool {
	return f&flag == flag
}
