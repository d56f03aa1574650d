package transaction

import (
	"encoding/base32"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/nemtech/nem2-sdk-go/pkg/collection/bytes"
	"github.com/nemtech/nem2-sdk-go/pkg/crypto"
)

const (
	// AddressLength is the decoded size of an address.
	AddressLength = 25
	// PlainAddressLength is the size of the base32 form of an address.
	PlainAddressLength = 40

	addressChecksumLength = 4
	aliasFlag             = 0x01
)

var (
	errInvalidAddressLength   = errors.New("invalid address length")
	errInvalidAddressChecksum = errors.New("invalid address checksum")
)

// Address is the 25 byte decoded form of an account address.
type Address [AddressLength]byte

// NewAddress derives the address of publicKey on network.
func NewAddress(publicKey PublicKey, network NetworkType) Address {
	address := Address{}
	address[0] = byte(network)
	copy(address[1:], crypto.AddressHash(publicKey[:]))
	checksum := crypto.Hash(address[:AddressLength-addressChecksumLength])
	copy(address[AddressLength-addressChecksumLength:], checksum[:addressChecksumLength])
	return address
}

// ParseAddress accepts plain or dash separated base32 address.
func ParseAddress(str string) (Address, error) {
	address := Address{}
	plain := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(str), "-", ""))
	if len(plain) != PlainAddressLength {
		return address, fmt.Errorf("%w: %s", errInvalidAddressLength, str)
	}
	decoded, err := base32.StdEncoding.DecodeString(plain)
	if err != nil {
		return address, fmt.Errorf("invalid address %s: %w", str, err)
	}
	copy(address[:], decoded)
	if err := address.Validate(); err != nil {
		return address, err
	}
	return address, nil
}

// Validate checks the address checksum.
func (a Address) Validate() error {
	checksum := crypto.Hash(a[:AddressLength-addressChecksumLength])
	if !bytes.Equal(checksum[:addressChecksumLength], a[AddressLength-addressChecksumLength:]) {
		return errInvalidAddressChecksum
	}
	return nil
}

// Network returns network type encoded in the first byte.
func (a Address) Network() NetworkType {
	return NetworkType(a[0])
}

// Plain returns base32 encoded address.
func (a Address) Plain() string {
	return base32.StdEncoding.EncodeToString(a[:])
}

// Pretty returns the plain address split in groups of 6 characters.
func (a Address) Pretty() string {
	plain := a.Plain()
	groups := make([]string, 0, len(plain)/6+1)
	for i := 0; i < len(plain); i += 6 {
		end := i + 6
		if end > len(plain) {
			end = len(plain)
		}
		groups = append(groups, plain[i:end])
	}
	return strings.Join(groups, "-")
}

func (a Address) String() string {
	return a.Plain()
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Plain())
}

func (a *Address) UnmarshalJSON(b []byte) error {
	str := ""
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	address, err := ParseAddress(str)
	if err != nil {
		return err
	}
	*a = address
	return nil
}

// UnresolvedAddress is either a concrete address or an alias naming a namespace.
// Both share the 25 byte wire form. An alias sets the lowest bit of the first byte
// and carries the namespace id little endian in the following 8 bytes.
type UnresolvedAddress [AddressLength]byte

// AddressOf wraps a concrete address.
func AddressOf(address Address) UnresolvedAddress {
	return UnresolvedAddress(address)
}

// AliasAddress returns an unresolved address pointing at namespace.
func AliasAddress(namespace NamespaceID, network NetworkType) UnresolvedAddress {
	unresolved := UnresolvedAddress{}
	unresolved[0] = byte(network) | aliasFlag
	binary.LittleEndian.PutUint64(unresolved[1:9], uint64(namespace))
	return unresolved
}

// IsAlias returns true if the value names a namespace.
func (u UnresolvedAddress) IsAlias() bool {
	return u[0]&aliasFlag == aliasFlag
}

// Alias returns the namespace id if the value is an alias.
func (u UnresolvedAddress) Alias() (NamespaceID, bool) {
	if !u.IsAlias() {
		return 0, false
	}
	return NamespaceID(binary.LittleEndian.Uint64(u[1:9])), true
}

// Address returns the concrete address if the value is not an alias.
func (u UnresolvedAddress) Address() (Address, bool) {
	if u.IsAlias() {
		return Address{}, false
	}
	return Address(u), true
}

func (u UnresolvedAddress) String() string {
	if namespace, ok := u.Alias(); ok {
		return namespace.String()
	}
	return Address(u).Plain()
}

func (u UnresolvedAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}
