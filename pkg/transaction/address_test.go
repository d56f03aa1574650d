package transaction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAddress(t *testing.T) {
	publicKey := randomPublicKey()
	for _, network := range []NetworkType{MainNet, TestNet, Mijin, MijinTest} {
		address := NewAddress(publicKey, network)
		assert.Equal(t, network, address.Network())
		assert.NoError(t, address.Validate())
		assert.Len(t, address.Plain(), PlainAddressLength)

		parsed, err := ParseAddress(address.Plain())
		assert.NoError(t, err)
		assert.Equal(t, address, parsed)

		parsed, err = ParseAddress(strings.ToLower(address.Pretty()))
		assert.NoError(t, err)
		assert.Equal(t, address, parsed)
	}
	assert.Equal(t, NewAddress(publicKey, MijinTest), NewAddress(publicKey, MijinTest))
	assert.NotEqual(t, NewAddress(publicKey, MijinTest), NewAddress(randomPublicKey(), MijinTest))
}

func TestParseAddressErrors(t *testing.T) {
	address := randomAddress()
	corrupted := address
	corrupted[24] ^= 0xFF

	cases := []struct {
		input  string
		errStr string
	}{
		{
			input:  "SAAA",
			errStr: "invalid address length",
		},
		{
			input:  strings.Repeat("1", PlainAddressLength),
			errStr: "illegal base32 data",
		},
		{
			input:  corrupted.Plain(),
			errStr: "invalid address checksum",
		},
	}

	for _, testCase := range cases {
		_, err := ParseAddress(testCase.input)
		assert.Contains(t, err.Error(), testCase.errStr)
	}
}

func TestPrettyAddress(t *testing.T) {
	address := randomAddress()
	pretty := address.Pretty()
	groups := strings.Split(pretty, "-")
	assert.Len(t, groups, 7)
	assert.Len(t, groups[6], 4)
	assert.Equal(t, address.Plain(), strings.Join(groups, ""))
}

func TestUnresolvedAddress(t *testing.T) {
	address := randomAddress()
	concrete := AddressOf(address)
	assert.False(t, concrete.IsAlias())
	resolved, ok := concrete.Address()
	assert.True(t, ok)
	assert.Equal(t, address, resolved)
	_, ok = concrete.Alias()
	assert.False(t, ok)
	assert.Equal(t, address.Plain(), concrete.String())

	namespace := mustNamespaceID("alice")
	alias := AliasAddress(namespace, MijinTest)
	assert.True(t, alias.IsAlias())
	assert.Equal(t, byte(MijinTest)|0x01, alias[0])
	id, ok := alias.Alias()
	assert.True(t, ok)
	assert.Equal(t, namespace, id)
	_, ok = alias.Address()
	assert.False(t, ok)
	assert.Equal(t, make([]byte, 16), alias[9:])
	assert.Equal(t, namespace.String(), alias.String())
}
