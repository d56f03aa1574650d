package transaction

import (
	"github.com/nemtech/nem2-sdk-go/pkg/crypto"
)

var (
	testNetwork  = MijinTest
	testDeadline = Deadline(123456789)
	testMaxFee   = uint64(2000000)
)

func randomPublicKey() PublicKey {
	key := PublicKey{}
	copy(key[:], crypto.RandomBytes(len(key)))
	return key
}

func randomSignature() Signature {
	sig := Signature{}
	copy(sig[:], crypto.RandomBytes(len(sig)))
	return sig
}

func randomHash() Hash {
	hash := Hash{}
	copy(hash[:], crypto.RandomBytes(len(hash)))
	return hash
}

func randomAddress() Address {
	return NewAddress(randomPublicKey(), testNetwork)
}

func mustNamespaceID(name string) NamespaceID {
	id, err := NewNamespaceID(name)
	if err != nil {
		panic(err)
	}
	return id
}

// sampleBodies returns one populated body per non aggregate variant.
func sampleBodies() []Body {
	owner := randomAddress()
	return []Body{
		&TransferBody{
			Recipient: AliasAddress(mustNamespaceID("alice"), testNetwork),
			Mosaics: []Mosaic{
				{ID: MosaicIDOf(NewMosaicID(1, owner)), Amount: 10},
				{ID: AliasMosaicID(mustNamespaceID("cat.currency")), Amount: 1000000},
			},
			Message: &Message{Type: MessageTypePlain, Payload: []byte("hello")},
		},
		&TransferBody{
			Recipient: AddressOf(owner),
		},
		&NamespaceRegistrationBody{
			RegistrationType: NamespaceRoot,
			Duration:         1000,
			ID:               mustNamespaceID("cat"),
			Name:             "cat",
		},
		&NamespaceRegistrationBody{
			RegistrationType: NamespaceChild,
			ParentID:         mustNamespaceID("cat"),
			ID:               mustNamespaceID("cat.currency"),
			Name:             "currency",
		},
		&AddressAliasBody{Action: AliasLink, NamespaceID: mustNamespaceID("alice"), Address: owner},
		&MosaicAliasBody{Action: AliasUnlink, NamespaceID: mustNamespaceID("cat.currency"), MosaicID: NewMosaicID(7, owner)},
		NewMosaicDefinition(owner, 7, MosaicFlagSupplyMutable|MosaicFlagTransferable, 6, 0),
		&MosaicSupplyChangeBody{MosaicID: AliasMosaicID(mustNamespaceID("cat.currency")), Action: SupplyIncrease, Delta: 500},
		&MultisigAccountModificationBody{
			MinRemovalDelta:  -1,
			MinApprovalDelta: 2,
			Modifications: []CosignatoryModification{
				{Type: CosignatoryAdd, Cosignatory: randomPublicKey()},
				{Type: CosignatoryRemove, Cosignatory: randomPublicKey()},
			},
		},
		&HashLockBody{Mosaic: Mosaic{ID: AliasMosaicID(mustNamespaceID("cat.currency")), Amount: 10000000}, Duration: 480, Hash: randomHash()},
		&SecretLockBody{
			Mosaic:        Mosaic{ID: MosaicIDOf(NewMosaicID(1, owner)), Amount: 1},
			Duration:      100,
			HashAlgorithm: HashAlgorithmHash160,
			Secret:        randomHash(),
			Recipient:     AliasAddress(mustNamespaceID("bob"), testNetwork),
		},
		&SecretProofBody{
			HashAlgorithm: HashAlgorithmSHA3256,
			Secret:        randomHash(),
			Recipient:     AddressOf(owner),
			Proof:         crypto.RandomBytes(20),
		},
		&AccountKeyLinkBody{LinkedPublicKey: randomPublicKey(), Action: LinkActionLink},
		&AccountAddressRestrictionBody{
			Flags:     RestrictionAddress | RestrictionBlock,
			Additions: []UnresolvedAddress{AddressOf(owner), AliasAddress(mustNamespaceID("bob"), testNetwork)},
			Deletions: []UnresolvedAddress{AddressOf(randomAddress())},
		},
		&AccountMosaicRestrictionBody{
			Flags:     RestrictionMosaicID,
			Additions: []UnresolvedMosaicID{AliasMosaicID(mustNamespaceID("cat.currency"))},
		},
		&AccountOperationRestrictionBody{
			Flags:     RestrictionOperation | RestrictionOutgoing,
			Additions: []Type{TypeTransfer},
			Deletions: []Type{TypeSecretLock, TypeHashLock},
		},
		&MosaicAddressRestrictionBody{
			MosaicID:       AliasMosaicID(mustNamespaceID("cat.currency")),
			RestrictionKey: 0x1234,
			PreviousValue:  1,
			NewValue:       2,
			TargetAddress:  AliasAddress(mustNamespaceID("alice"), testNetwork),
		},
		&MosaicGlobalRestrictionBody{
			MosaicID:       MosaicIDOf(NewMosaicID(3, owner)),
			RestrictionKey: 99,
			NewValue:       1,
			PreviousType:   MosaicRestrictionNone,
			NewType:        MosaicRestrictionEQ,
		},
		&AccountMetadataBody{
			MetadataValue: MetadataValue{TargetAddress: AddressOf(owner), ScopedMetadataKey: 1, ValueSizeDelta: 5, Value: []byte("value")},
		},
		&MosaicMetadataBody{
			MetadataValue:  MetadataValue{TargetAddress: AddressOf(owner), ScopedMetadataKey: 2, ValueSizeDelta: -2, Value: []byte("ab")},
			TargetMosaicID: AliasMosaicID(mustNamespaceID("cat.currency")),
		},
		&NamespaceMetadataBody{
			MetadataValue:     MetadataValue{TargetAddress: AddressOf(owner), ScopedMetadataKey: 3},
			TargetNamespaceID: mustNamespaceID("cat"),
		},
	}
}

func sampleAggregate(bonded bool) *Transaction {
	bodies := sampleBodies()
	inner := make([]Transaction, 0, len(bodies))
	for _, body := range bodies {
		inner = append(inner, Embed(New(testNetwork, 0, 0, body), randomPublicKey()))
	}
	if bonded {
		return NewAggregateBonded(testNetwork, testDeadline, testMaxFee, inner)
	}
	return NewAggregateComplete(testNetwork, testDeadline, testMaxFee, inner)
}
