package receipt

import (
	"github.com/nemtech/nem2-sdk-go/pkg/transaction"
)

// latest returns index of the entry with the greatest source not after target, or -1.
func latest(count int, sourceAt func(int) Source, target Source) int {
	found := -1
	for i := 0; i < count; i++ {
		source := sourceAt(i)
		if source.Compare(target) > 0 {
			continue
		}
		if found == -1 || source.Compare(sourceAt(found)) >= 0 {
			found = i
		}
	}
	return found
}

func sameAddressAlias(a, b transaction.UnresolvedAddress) bool {
	if a == b {
		return true
	}
	aliasA, okA := a.Alias()
	aliasB, okB := b.Alias()
	return okA && okB && aliasA == aliasB
}

// Resolve returns the address the alias pointed to at source.
func (s *AddressResolutionStatement) Resolve(source Source) (transaction.Address, bool) {
	index := latest(len(s.Entries), func(i int) Source { return s.Entries[i].Source }, source)
	if index < 0 {
		return transaction.Address{}, false
	}
	return s.Entries[index].Resolved, true
}

// Resolve returns the mosaic id the alias pointed to at source.
func (s *MosaicResolutionStatement) Resolve(source Source) (transaction.MosaicID, bool) {
	index := latest(len(s.Entries), func(i int) Source { return s.Entries[i].Source }, source)
	if index < 0 {
		return 0, false
	}
	return s.Entries[index].Resolved, true
}

// ResolveAddress finds the statement for unresolved and returns its value at source.
func (s *Statement) ResolveAddress(unresolved transaction.UnresolvedAddress, source Source) (transaction.Address, bool) {
	for i := range s.AddressResolutions {
		if sameAddressAlias(s.AddressResolutions[i].Unresolved, unresolved) {
			return s.AddressResolutions[i].Resolve(source)
		}
	}
	return transaction.Address{}, false
}

// ResolveMosaicID finds the statement for unresolved and returns its value at source.
func (s *Statement) ResolveMosaicID(unresolved transaction.UnresolvedMosaicID, source Source) (transaction.MosaicID, bool) {
	for i := range s.MosaicResolutions {
		if s.MosaicResolutions[i].Unresolved == unresolved {
			return s.MosaicResolutions[i].Resolve(source)
		}
	}
	return 0, false
}
