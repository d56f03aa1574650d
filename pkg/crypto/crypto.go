// Package crypto provides crypto related utility functions.
//
// It supports ed25519 for signature scheme, sha3-256 for hash and ripemd160 for address derivation.
package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	ed "golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required by the address format
	"golang.org/x/crypto/sha3"

	"github.com/nemtech/nem2-sdk-go/pkg/collection/bytes"
)

const (
	HashLength       = 32
	PublicKeyLength  = 32
	PrivateKeyLength = 32
	SignatureLength  = 64
)

// RandomBytes returns size bytes from crypto/rand.
func RandomBytes(size int) []byte {
	r := make([]byte, size)
	if _, err := rand.Read(r); err != nil {
		panic(err)
	}
	return r
}

// Hash returns sha3-256 of the concatenated inputs.
func Hash(data ...[]byte) []byte {
	hasher := sha3.New256()
	for _, d := range data {
		hasher.Write(d)
	}
	return hasher.Sum(nil)
}

// AddressHash returns ripemd160(sha3-256(publicKey)).
func AddressHash(publicKey []byte) []byte {
	hasher := ripemd160.New()
	hasher.Write(Hash(publicKey))
	return hasher.Sum(nil)
}

// KeyPair holds ed25519 key pair.
type KeyPair struct {
	privateKey ed.PrivateKey
}

// NewKeyPair returns key pair from 32 bytes private key (seed).
func NewKeyPair(privateKey []byte) (*KeyPair, error) {
	if len(privateKey) != PrivateKeyLength {
		return nil, fmt.Errorf("private key must have length of %d but received %d", PrivateKeyLength, len(privateKey))
	}
	return &KeyPair{privateKey: ed.NewKeyFromSeed(privateKey)}, nil
}

// NewKeyPairFromHex returns key pair from hex encoded private key.
func NewKeyPairFromHex(privateKey string) (*KeyPair, error) {
	decoded, err := hex.DecodeString(strings.TrimPrefix(privateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key hex: %w", err)
	}
	return NewKeyPair(decoded)
}

// GenerateKeyPair returns key pair with random private key.
func GenerateKeyPair() *KeyPair {
	keyPair, err := NewKeyPair(RandomBytes(PrivateKeyLength))
	if err != nil {
		panic(err)
	}
	return keyPair
}

// PrivateKey returns copy of the 32 bytes private key.
func (k *KeyPair) PrivateKey() []byte {
	return bytes.Copy(k.privateKey.Seed())
}

// PublicKey returns 32 bytes public key.
func (k *KeyPair) PublicKey() [PublicKeyLength]byte {
	var result [PublicKeyLength]byte
	copy(result[:], k.privateKey[PrivateKeyLength:])
	return result
}

// Sign signs the message.
func (k *KeyPair) Sign(message []byte) [SignatureLength]byte {
	var result [SignatureLength]byte
	copy(result[:], ed.Sign(k.privateKey, message))
	return result
}

// VerifySignature returns error if signature is not valid for the message and public key.
func VerifySignature(publicKey, signature, message []byte) error {
	if len(publicKey) != PublicKeyLength {
		return fmt.Errorf("public key must have length of %d but received %d", PublicKeyLength, len(publicKey))
	}
	if valid := ed.Verify(publicKey, message, signature); !valid {
		return fmt.Errorf("invalid signature %X by %X", signature, publicKey)
	}
	return nil
}
