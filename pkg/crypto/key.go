package crypto

import (
	"crypto/hmac"
	"crypto/sha512"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/tyler-smith/go-bip39"

	"github.com/nemtech/nem2-sdk-go/pkg/collection/bytes"
)

const (
	hardendOffset = 0x80000000
	// DefaultKeyPathFormat is the account path used by wallets of this chain.
	DefaultKeyPathFormat = "m/44'/43'/%d'/0'/0'"
)

var keyPathRegex = regexp.MustCompile("^[0-9]+'?$")

// DefaultKeyPath returns key path for the account index.
func DefaultKeyPath(account int) string {
	return fmt.Sprintf(DefaultKeyPathFormat, account)
}

// GenerateMnemonic returns new 24 words mnemonic.
func GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

func parseDerivationPath(path string) ([]uint32, error) {
	if path == "" || path[0] != 'm' {
		return nil, errors.New("derivation path must start from `m`")
	}
	segments := strings.Split(path, "/")
	result := make([]uint32, len(segments)-1)
	for i, segment := range segments[1:] {
		if segment == "" {
			return nil, errors.New("each segment cannot be empty")
		}
		if !keyPathRegex.MatchString(segment) {
			return nil, fmt.Errorf("invalid segment format for %s", segment)
		}
		// ed25519 derivation only supports hardened keys
		if !strings.HasSuffix(segment, "'") {
			return nil, fmt.Errorf("segment %s must be hardened", segment)
		}
		val, err := strconv.ParseUint(strings.TrimSuffix(segment, "'"), 10, 64)
		if err != nil {
			return nil, err
		}
		if val > math.MaxUint32/2 {
			return nil, fmt.Errorf("segment %s exceeds max uint32 / 2", segment)
		}
		result[i] = uint32(val) + hardendOffset
	}
	return result, nil
}

// DeriveKeyPair derives ed25519 key pair from the mnemonic following SLIP-0010.
func DeriveKeyPair(mnemonic, password, path string) (*KeyPair, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errors.New("invalid mnemonic")
	}
	derivationPath, err := parseDerivationPath(path)
	if err != nil {
		return nil, err
	}
	seed := bip39.NewSeed(mnemonic, password)
	key, chainCode := masterKey(seed)
	for _, segment := range derivationPath {
		key, chainCode = childKey(key, chainCode, segment)
	}
	return NewKeyPair(key)
}

func hmacSHA512(key, message []byte) []byte {
	hmacer := hmac.New(sha512.New, key)
	hmacer.Write(message)
	return hmacer.Sum(nil)
}

func masterKey(seed []byte) ([]byte, []byte) {
	result := hmacSHA512([]byte("ed25519 seed"), seed)
	return result[:32], result[32:]
}

func childKey(key, chainCode []byte, index uint32) ([]byte, []byte) {
	result := hmacSHA512(chainCode, bytes.Join([]byte{0}, key, bytes.FromUint32(index)))
	return result[:32], result[32:]
}
