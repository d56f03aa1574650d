package transaction

import (
	"encoding/json"
	"fmt"
	"strconv"

	"golang.org/x/text/unicode/norm"

	"github.com/nemtech/nem2-sdk-go/pkg/codec"
)

// NamespaceRegistrationType distinguishes root and child namespaces.
type NamespaceRegistrationType uint8

const (
	NamespaceRoot  NamespaceRegistrationType = 0
	NamespaceChild NamespaceRegistrationType = 1
)

// NamespaceRegistrationBody registers a root namespace for Duration blocks or a child under ParentID.
type NamespaceRegistrationBody struct {
	RegistrationType NamespaceRegistrationType
	Duration         uint64
	ParentID         NamespaceID
	ID               NamespaceID
	Name             string
}

// NewRootNamespace returns body registering name as root namespace.
func NewRootNamespace(name string, duration uint64) (*NamespaceRegistrationBody, error) {
	normalized := norm.NFC.String(name)
	if err := validateNamespaceName(normalized); err != nil {
		return nil, err
	}
	return &NamespaceRegistrationBody{
		RegistrationType: NamespaceRoot,
		Duration:         duration,
		ID:               GenerateNamespaceID(0, normalized),
		Name:             normalized,
	}, nil
}

// NewChildNamespace returns body registering name under the dotted parent namespace.
func NewChildNamespace(name string, parent string) (*NamespaceRegistrationBody, error) {
	normalized := norm.NFC.String(name)
	if err := validateNamespaceName(normalized); err != nil {
		return nil, err
	}
	parentID, err := NewNamespaceID(parent)
	if err != nil {
		return nil, err
	}
	return &NamespaceRegistrationBody{
		RegistrationType: NamespaceChild,
		ParentID:         parentID,
		ID:               GenerateNamespaceID(parentID, normalized),
		Name:             normalized,
	}, nil
}

func (b *NamespaceRegistrationBody) Type() Type { return TypeRegisterNamespace }

func (b *NamespaceRegistrationBody) ResolveAliases(AliasResolver) (Body, error) {
	cp := *b
	return &cp, nil
}

func (b *NamespaceRegistrationBody) encode(w *codec.Writer) error {
	w.WriteUInt8(uint8(b.RegistrationType))
	switch b.RegistrationType {
	case NamespaceRoot:
		w.WriteUInt64(b.Duration)
	case NamespaceChild:
		w.WriteUInt64(uint64(b.ParentID))
	default:
		return fmt.Errorf("unknown namespace registration type %d", b.RegistrationType)
	}
	w.WriteUInt64(uint64(b.ID))
	if err := writeUInt8Count(w, "namespace name", len(b.Name)); err != nil {
		return err
	}
	w.WriteBytes([]byte(b.Name))
	return nil
}

func (b *NamespaceRegistrationBody) decode(r *codec.Reader) error {
	registrationType, err := r.ReadUInt8()
	if err != nil {
		return err
	}
	b.RegistrationType = NamespaceRegistrationType(registrationType)
	durationOrParent, err := r.ReadUInt64()
	if err != nil {
		return err
	}
	switch b.RegistrationType {
	case NamespaceRoot:
		b.Duration = durationOrParent
	case NamespaceChild:
		b.ParentID = NamespaceID(durationOrParent)
	default:
		return newMalformed(nil, "unknown namespace registration type %d", registrationType)
	}
	id, err := r.ReadUInt64()
	if err != nil {
		return err
	}
	b.ID = NamespaceID(id)
	nameSize, err := r.ReadUInt8()
	if err != nil {
		return err
	}
	name, err := r.ReadBytes(int(nameSize))
	if err != nil {
		return err
	}
	b.Name = string(name)
	return nil
}

func (b *NamespaceRegistrationBody) MarshalJSON() ([]byte, error) {
	res := map[string]interface{}{
		"registrationType": b.RegistrationType,
		"id":               b.ID,
		"name":             b.Name,
	}
	if b.RegistrationType == NamespaceRoot {
		res["duration"] = strconv.FormatUint(b.Duration, 10)
	} else {
		res["parentId"] = b.ParentID
	}
	return json.Marshal(res)
}
