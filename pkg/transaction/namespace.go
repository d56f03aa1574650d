package transaction

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/nemtech/nem2-sdk-go/pkg/crypto"
)

const (
	// MaxNamespaceDepth is the maximum number of levels in a namespace path.
	MaxNamespaceDepth = 3
	// MaxNamespaceNameLength is the maximum length of a single level name.
	MaxNamespaceNameLength = 64

	idHighBit = uint64(1) << 63
)

var (
	namespaceNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9\-_]*$`)

	errInvalidNamespaceName = errors.New("invalid namespace name")
)

// NamespaceID identifies a namespace. Namespace ids always have the highest bit set.
type NamespaceID uint64

// GenerateNamespaceID derives the id of name under parent. Root namespaces use parent 0.
func GenerateNamespaceID(parent NamespaceID, name string) NamespaceID {
	parentBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(parentBytes, uint64(parent))
	digest := crypto.Hash(parentBytes, []byte(name))
	return NamespaceID(binary.LittleEndian.Uint64(digest[:8]) | idHighBit)
}

// NamespacePath returns ids of every level of a dotted namespace name, root first.
func NamespacePath(fullName string) ([]NamespaceID, error) {
	normalized := norm.NFC.String(strings.ToLower(fullName))
	names := strings.Split(normalized, ".")
	if len(names) > MaxNamespaceDepth {
		return nil, fmt.Errorf("%w: %s has more than %d levels", errInvalidNamespaceName, fullName, MaxNamespaceDepth)
	}
	path := make([]NamespaceID, 0, len(names))
	parent := NamespaceID(0)
	for _, name := range names {
		if err := validateNamespaceName(name); err != nil {
			return nil, err
		}
		parent = GenerateNamespaceID(parent, name)
		path = append(path, parent)
	}
	return path, nil
}

// NewNamespaceID returns the id of the last level of a dotted namespace name.
func NewNamespaceID(fullName string) (NamespaceID, error) {
	path, err := NamespacePath(fullName)
	if err != nil {
		return 0, err
	}
	return path[len(path)-1], nil
}

func validateNamespaceName(name string) error {
	if len(name) == 0 || len(name) > MaxNamespaceNameLength || !namespaceNameRegex.MatchString(name) {
		return fmt.Errorf("%w: %q", errInvalidNamespaceName, name)
	}
	return nil
}

func (n NamespaceID) String() string {
	return fmt.Sprintf("%016X", uint64(n))
}

func (n NamespaceID) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

func (n *NamespaceID) UnmarshalJSON(b []byte) error {
	id, err := unmarshalHexID(b)
	if err != nil {
		return err
	}
	*n = NamespaceID(id)
	return nil
}
