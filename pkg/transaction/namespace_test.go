package transaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamespacePath(t *testing.T) {
	path, err := NamespacePath("Cat.Currency")
	assert.NoError(t, err)
	assert.Len(t, path, 2)
	assert.Equal(t, GenerateNamespaceID(0, "cat"), path[0])
	assert.Equal(t, GenerateNamespaceID(path[0], "currency"), path[1])
	for _, id := range path {
		assert.NotZero(t, uint64(id)&idHighBit)
	}

	id, err := NewNamespaceID("cat.currency")
	assert.NoError(t, err)
	assert.Equal(t, path[1], id)
	assert.NotEqual(t, GenerateNamespaceID(0, "currency"), id)
}

func TestNamespacePathErrors(t *testing.T) {
	cases := []struct {
		input  string
		errStr string
	}{
		{input: "a.b.c.d", errStr: "more than 3 levels"},
		{input: "", errStr: "invalid namespace name"},
		{input: "cat..currency", errStr: "invalid namespace name"},
		{input: "-cat", errStr: "invalid namespace name"},
		{input: "cat!", errStr: "invalid namespace name"},
	}
	for _, testCase := range cases {
		_, err := NamespacePath(testCase.input)
		assert.Contains(t, err.Error(), testCase.errStr, testCase.input)
	}
}

func TestNamespaceRegistrationBuilders(t *testing.T) {
	root, err := NewRootNamespace("cat", 100)
	assert.NoError(t, err)
	assert.Equal(t, NamespaceRoot, root.RegistrationType)
	assert.Equal(t, mustNamespaceID("cat"), root.ID)

	child, err := NewChildNamespace("currency", "cat")
	assert.NoError(t, err)
	assert.Equal(t, NamespaceChild, child.RegistrationType)
	assert.Equal(t, root.ID, child.ParentID)
	assert.Equal(t, mustNamespaceID("cat.currency"), child.ID)

	_, err = NewRootNamespace("Not Valid", 1)
	assert.Error(t, err)
}

func TestMosaicID(t *testing.T) {
	owner := randomAddress()
	id := NewMosaicID(5, owner)
	assert.Zero(t, uint64(id)&idHighBit)
	assert.Equal(t, id, NewMosaicID(5, owner))
	assert.NotEqual(t, id, NewMosaicID(6, owner))

	concrete := MosaicIDOf(id)
	assert.False(t, concrete.IsAlias())
	resolved, ok := concrete.MosaicID()
	assert.True(t, ok)
	assert.Equal(t, id, resolved)

	namespace := mustNamespaceID("cat.currency")
	alias := AliasMosaicID(namespace)
	assert.True(t, alias.IsAlias())
	aliasID, ok := alias.Alias()
	assert.True(t, ok)
	assert.Equal(t, namespace, aliasID)
	_, ok = alias.MosaicID()
	assert.False(t, ok)
}

func TestNetworkType(t *testing.T) {
	network, err := ParseNetworkType("mijin-test")
	assert.NoError(t, err)
	assert.Equal(t, MijinTest, network)
	assert.Equal(t, "MAIN_NET", MainNet.String())
	assert.True(t, TestNet.Valid())
	assert.False(t, NetworkType(0x01).Valid())

	_, err = ParseNetworkType("moon")
	assert.EqualError(t, err, "unknown network type moon")
}
