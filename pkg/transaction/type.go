package transaction

import (
	"encoding/json"
	"fmt"
)

// Type is the 2 byte code identifying a transaction variant on the wire.
type Type uint16

const (
	TypeTransfer                    Type = 0x4154
	TypeRegisterNamespace           Type = 0x414E
	TypeAddressAlias                Type = 0x424E
	TypeMosaicAlias                 Type = 0x434E
	TypeMosaicDefinition            Type = 0x414D
	TypeMosaicSupplyChange          Type = 0x424D
	TypeModifyMultisigAccount       Type = 0x4155
	TypeAggregateComplete           Type = 0x4141
	TypeAggregateBonded             Type = 0x4241
	TypeHashLock                    Type = 0x4148
	TypeSecretLock                  Type = 0x4152
	TypeSecretProof                 Type = 0x4252
	TypeAccountLink                 Type = 0x414C
	TypeAccountAddressRestriction   Type = 0x4150
	TypeAccountMosaicRestriction    Type = 0x4250
	TypeAccountOperationRestriction Type = 0x4350
	TypeMosaicAddressRestriction    Type = 0x4251
	TypeMosaicGlobalRestriction     Type = 0x4151
	TypeAccountMetadata             Type = 0x4144
	TypeMosaicMetadata              Type = 0x4244
	TypeNamespaceMetadata           Type = 0x4344
)

var typeNames = map[Type]string{
	TypeTransfer:                    "TRANSFER",
	TypeRegisterNamespace:           "REGISTER_NAMESPACE",
	TypeAddressAlias:                "ADDRESS_ALIAS",
	TypeMosaicAlias:                 "MOSAIC_ALIAS",
	TypeMosaicDefinition:            "MOSAIC_DEFINITION",
	TypeMosaicSupplyChange:          "MOSAIC_SUPPLY_CHANGE",
	TypeModifyMultisigAccount:       "MODIFY_MULTISIG_ACCOUNT",
	TypeAggregateComplete:           "AGGREGATE_COMPLETE",
	TypeAggregateBonded:             "AGGREGATE_BONDED",
	TypeHashLock:                    "HASH_LOCK",
	TypeSecretLock:                  "SECRET_LOCK",
	TypeSecretProof:                 "SECRET_PROOF",
	TypeAccountLink:                 "ACCOUNT_LINK",
	TypeAccountAddressRestriction:   "ACCOUNT_ADDRESS_RESTRICTION",
	TypeAccountMosaicRestriction:    "ACCOUNT_MOSAIC_RESTRICTION",
	TypeAccountOperationRestriction: "ACCOUNT_OPERATION_RESTRICTION",
	TypeMosaicAddressRestriction:    "MOSAIC_ADDRESS_RESTRICTION",
	TypeMosaicGlobalRestriction:     "MOSAIC_GLOBAL_RESTRICTION",
	TypeAccountMetadata:             "ACCOUNT_METADATA",
	TypeMosaicMetadata:              "MOSAIC_METADATA",
	TypeNamespaceMetadata:           "NAMESPACE_METADATA",
}

// IsAggregate returns true for both aggregate variants.
func (t Type) IsAggregate() bool {
	return t == TypeAggregateComplete || t == TypeAggregateBonded
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("0x%04X", uint16(t))
}

func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}
