// Package receipt implements resolution statements recorded by blocks for alias usage.
package receipt

import (
	"fmt"

	"github.com/nemtech/nem2-sdk-go/pkg/transaction"
)

// Type is the receipt type code.
type Type uint16

const (
	TypeAddressAliasResolution Type = 0xF143
	TypeMosaicAliasResolution  Type = 0xF243

	// Version is the receipt version used for hashing.
	Version uint16 = 1
)

// Source is the position of the transaction a receipt applies to.
// PrimaryID is the 1-based position in the block, SecondaryID the 1-based position
// inside an aggregate or 0 for top level transactions.
type Source struct {
	PrimaryID   uint32 `json:"primaryId"`
	SecondaryID uint32 `json:"secondaryId"`
}

// Compare orders sources lexicographically by primary then secondary id.
func (s Source) Compare(other Source) int {
	switch {
	case s.PrimaryID < other.PrimaryID:
		return -1
	case s.PrimaryID > other.PrimaryID:
		return 1
	case s.SecondaryID < other.SecondaryID:
		return -1
	case s.SecondaryID > other.SecondaryID:
		return 1
	}
	return 0
}

func (s Source) String() string {
	return fmt.Sprintf("(%d,%d)", s.PrimaryID, s.SecondaryID)
}

// AddressResolutionEntry is the address an alias pointed to from Source on.
type AddressResolutionEntry struct {
	Source   Source              `json:"source"`
	Resolved transaction.Address `json:"resolved"`
}

// MosaicResolutionEntry is the mosaic id an alias pointed to from Source on.
type MosaicResolutionEntry struct {
	Source   Source               `json:"source"`
	Resolved transaction.MosaicID `json:"resolved"`
}

// AddressResolutionStatement records every value an address alias took within a block.
type AddressResolutionStatement struct {
	Height     uint64                        `json:"height,string"`
	Unresolved transaction.UnresolvedAddress `json:"unresolved"`
	Entries    []AddressResolutionEntry      `json:"resolutionEntries"`
}

// MosaicResolutionStatement records every value a mosaic alias took within a block.
type MosaicResolutionStatement struct {
	Height     uint64                         `json:"height,string"`
	Unresolved transaction.UnresolvedMosaicID `json:"unresolved"`
	Entries    []MosaicResolutionEntry        `json:"resolutionEntries"`
}

// Statement holds the resolution statements of a block.
type Statement struct {
	Height             uint64                       `json:"height,string"`
	AddressResolutions []AddressResolutionStatement `json:"addressResolutionStatements"`
	MosaicResolutions  []MosaicResolutionStatement  `json:"mosaicResolutionStatements"`
}

// Empty returns true if the statement has no resolutions.
func (s *Statement) Empty() bool {
	return len(s.AddressResolutions) == 0 && len(s.MosaicResolutions) == 0
}
