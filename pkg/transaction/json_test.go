package transaction

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionJSON(t *testing.T) {
	recipient := randomAddress()
	tx := NewTransfer(MijinTest, 100, 5, AddressOf(recipient), []Mosaic{{ID: 2, Amount: 1}, {ID: 1, Amount: 3}}, NewPlainMessage("hi"))
	hash := randomHash()
	tx.Info = &TransactionInfo{Height: 3, Index: Uint32(0), Hash: &hash}

	encoded, err := json.Marshal(tx)
	assert.NoError(t, err)

	res := map[string]interface{}{}
	assert.NoError(t, json.Unmarshal(encoded, &res))
	assert.Equal(t, "TRANSFER", res["type"])
	assert.Equal(t, "MIJIN_TEST", res["network"])
	assert.Equal(t, "5", res["maxFee"])
	assert.Equal(t, "100", res["deadline"])

	meta := res["meta"].(map[string]interface{})
	assert.Equal(t, "3", meta["height"])
	assert.Equal(t, hash.String(), meta["hash"])

	body := res["body"].(map[string]interface{})
	assert.Equal(t, recipient.Plain(), body["recipientAddress"])
	mosaics := body["mosaics"].([]interface{})
	assert.Equal(t, "0000000000000001", mosaics[0].(map[string]interface{})["id"])
	assert.Equal(t, "hi", body["message"].(map[string]interface{})["payload"])
}

func TestKeysJSON(t *testing.T) {
	key := randomPublicKey()
	encoded, err := json.Marshal(key)
	assert.NoError(t, err)

	decoded := PublicKey{}
	assert.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, key, decoded)

	_, err = ParseSignature("abcd")
	assert.Contains(t, err.Error(), "expected 64 bytes but received 2")
}

func TestIDJSON(t *testing.T) {
	namespace := mustNamespaceID("cat.currency")
	encoded, err := json.Marshal(namespace)
	assert.NoError(t, err)
	decodedNamespace := NamespaceID(0)
	assert.NoError(t, json.Unmarshal(encoded, &decodedNamespace))
	assert.Equal(t, namespace, decodedNamespace)

	alias := AliasMosaicID(namespace)
	encoded, err = json.Marshal(alias)
	assert.NoError(t, err)
	decodedAlias := UnresolvedMosaicID(0)
	assert.NoError(t, json.Unmarshal(encoded, &decodedAlias))
	assert.Equal(t, alias, decodedAlias)

	decodedID := MosaicID(0)
	assert.NoError(t, json.Unmarshal([]byte(`"0DC67FBE1CAD29E3"`), &decodedID))
	assert.Equal(t, MosaicID(0x0DC67FBE1CAD29E3), decodedID)

	err = json.Unmarshal([]byte(`"xyz"`), &decodedID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid id")
}
