package receipt

import (
	"fmt"

	"github.com/nemtech/nem2-sdk-go/pkg/codec"
	"github.com/nemtech/nem2-sdk-go/pkg/crypto"
	"github.com/nemtech/nem2-sdk-go/pkg/transaction"
)

func writeSource(w *codec.Writer, source Source) {
	w.WriteUInt32(source.PrimaryID)
	w.WriteUInt32(source.SecondaryID)
}

func readSource(r *codec.Reader) (Source, error) {
	primary, err := r.ReadUInt32()
	if err != nil {
		return Source{}, err
	}
	secondary, err := r.ReadUInt32()
	if err != nil {
		return Source{}, err
	}
	return Source{PrimaryID: primary, SecondaryID: secondary}, nil
}

func (s *AddressResolutionStatement) encodeEntries(w *codec.Writer) {
	for _, entry := range s.Entries {
		writeSource(w, entry.Source)
		w.WriteBytes(entry.Resolved[:])
	}
}

func (s *MosaicResolutionStatement) encodeEntries(w *codec.Writer) {
	for _, entry := range s.Entries {
		writeSource(w, entry.Source)
		w.WriteUInt64(uint64(entry.Resolved))
	}
}

// Hash returns the receipt hash of the statement.
func (s *AddressResolutionStatement) Hash() transaction.Hash {
	w := codec.NewWriter()
	w.WriteUInt16(Version)
	w.WriteUInt16(uint16(TypeAddressAliasResolution))
	w.WriteBytes(s.Unresolved[:])
	s.encodeEntries(w)
	return toHash(crypto.Hash(w.Result()))
}

// Hash returns the receipt hash of the statement.
func (s *MosaicResolutionStatement) Hash() transaction.Hash {
	w := codec.NewWriter()
	w.WriteUInt16(Version)
	w.WriteUInt16(uint16(TypeMosaicAliasResolution))
	w.WriteUInt64(uint64(s.Unresolved))
	s.encodeEntries(w)
	return toHash(crypto.Hash(w.Result()))
}

func toHash(digest []byte) transaction.Hash {
	hash := transaction.Hash{}
	copy(hash[:], digest)
	return hash
}

// EncodeTo writes the statement in its storage layout.
func (s *Statement) EncodeTo(w *codec.Writer) {
	w.WriteUInt64(s.Height)
	w.WriteUInt32(uint32(len(s.AddressResolutions)))
	for i := range s.AddressResolutions {
		statement := &s.AddressResolutions[i]
		w.WriteBytes(statement.Unresolved[:])
		w.WriteUInt32(uint32(len(statement.Entries)))
		statement.encodeEntries(w)
	}
	w.WriteUInt32(uint32(len(s.MosaicResolutions)))
	for i := range s.MosaicResolutions {
		statement := &s.MosaicResolutions[i]
		w.WriteUInt64(uint64(statement.Unresolved))
		w.WriteUInt32(uint32(len(statement.Entries)))
		statement.encodeEntries(w)
	}
}

// DecodeFromReader reads the statement in its storage layout.
func (s *Statement) DecodeFromReader(r *codec.Reader) error {
	var err error
	if s.Height, err = r.ReadUInt64(); err != nil {
		return err
	}
	addressCount, err := r.ReadUInt32()
	if err != nil {
		return err
	}
	if err := checkCount(r, addressCount, 25+4); err != nil {
		return err
	}
	s.AddressResolutions = nil
	for i := uint32(0); i < addressCount; i++ {
		statement := AddressResolutionStatement{Height: s.Height}
		if err := r.ReadFixed(statement.Unresolved[:]); err != nil {
			return err
		}
		entryCount, err := r.ReadUInt32()
		if err != nil {
			return err
		}
		if err := checkCount(r, entryCount, 8+25); err != nil {
			return err
		}
		statement.Entries = make([]AddressResolutionEntry, entryCount)
		for j := range statement.Entries {
			if statement.Entries[j].Source, err = readSource(r); err != nil {
				return err
			}
			if err := r.ReadFixed(statement.Entries[j].Resolved[:]); err != nil {
				return err
			}
		}
		s.AddressResolutions = append(s.AddressResolutions, statement)
	}
	mosaicCount, err := r.ReadUInt32()
	if err != nil {
		return err
	}
	if err := checkCount(r, mosaicCount, 8+4); err != nil {
		return err
	}
	s.MosaicResolutions = nil
	for i := uint32(0); i < mosaicCount; i++ {
		statement := MosaicResolutionStatement{Height: s.Height}
		unresolved, err := r.ReadUInt64()
		if err != nil {
			return err
		}
		statement.Unresolved = transaction.UnresolvedMosaicID(unresolved)
		entryCount, err := r.ReadUInt32()
		if err != nil {
			return err
		}
		if err := checkCount(r, entryCount, 8+8); err != nil {
			return err
		}
		statement.Entries = make([]MosaicResolutionEntry, entryCount)
		for j := range statement.Entries {
			if statement.Entries[j].Source, err = readSource(r); err != nil {
				return err
			}
			resolved, err := r.ReadUInt64()
			if err != nil {
				return err
			}
			statement.Entries[j].Resolved = transaction.MosaicID(resolved)
		}
		s.MosaicResolutions = append(s.MosaicResolutions, statement)
	}
	return nil
}

// checkCount rejects counts that cannot fit in the remaining bytes before allocating.
func checkCount(r *codec.Reader, count uint32, minSize int) error {
	if uint64(count)*uint64(minSize) > uint64(r.Remaining()) {
		return fmt.Errorf("%w: %d items need at least %d bytes but %d remain", codec.ErrOutOfRange, count, uint64(count)*uint64(minSize), r.Remaining())
	}
	return nil
}

// Encode returns the storage layout of the statement.
func (s *Statement) Encode() []byte {
	return codec.Encode(s)
}

// DecodeStatement parses the storage layout of a statement.
func DecodeStatement(data []byte) (*Statement, error) {
	statement := &Statement{}
	if err := codec.Decode(data, statement); err != nil {
		return nil, err
	}
	return statement, nil
}
