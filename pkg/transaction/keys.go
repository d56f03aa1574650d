package transaction

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nemtech/nem2-sdk-go/pkg/codec"
	"github.com/nemtech/nem2-sdk-go/pkg/crypto"
)

// PublicKey is an ed25519 public key.
type PublicKey [crypto.PublicKeyLength]byte

// Signature is an ed25519 signature.
type Signature [crypto.SignatureLength]byte

// Hash is a 32 byte SHA3-256 digest.
type Hash [crypto.HashLength]byte

// ParsePublicKey decodes a hex encoded public key.
func ParsePublicKey(str string) (PublicKey, error) {
	key := PublicKey{}
	if err := decodeFixedHex(str, key[:]); err != nil {
		return key, fmt.Errorf("invalid public key: %w", err)
	}
	return key, nil
}

// ParseSignature decodes a hex encoded signature.
func ParseSignature(str string) (Signature, error) {
	sig := Signature{}
	if err := decodeFixedHex(str, sig[:]); err != nil {
		return sig, fmt.Errorf("invalid signature: %w", err)
	}
	return sig, nil
}

// ParseHash decodes a hex encoded hash.
func ParseHash(str string) (Hash, error) {
	hash := Hash{}
	if err := decodeFixedHex(str, hash[:]); err != nil {
		return hash, fmt.Errorf("invalid hash: %w", err)
	}
	return hash, nil
}

func decodeFixedHex(str string, dst []byte) error {
	decoded, err := codec.HexToBytes(str)
	if err != nil {
		return err
	}
	if len(decoded) != len(dst) {
		return fmt.Errorf("expected %d bytes but received %d", len(dst), len(decoded))
	}
	copy(dst, decoded)
	return nil
}

func unmarshalFixedHex(b []byte, dst []byte) error {
	str := ""
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	return decodeFixedHex(str, dst)
}

func upperHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

func (k PublicKey) String() string                { return upperHex(k[:]) }
func (k PublicKey) MarshalJSON() ([]byte, error)  { return json.Marshal(k.String()) }
func (k *PublicKey) UnmarshalJSON(b []byte) error { return unmarshalFixedHex(b, k[:]) }
func (s Signature) String() string                { return upperHex(s[:]) }
func (s Signature) MarshalJSON() ([]byte, error)  { return json.Marshal(s.String()) }
func (s *Signature) UnmarshalJSON(b []byte) error { return unmarshalFixedHex(b, s[:]) }
func (h Hash) String() string                     { return upperHex(h[:]) }
func (h Hash) MarshalJSON() ([]byte, error)       { return json.Marshal(h.String()) }
func (h *Hash) UnmarshalJSON(b []byte) error      { return unmarshalFixedHex(b, h[:]) }
