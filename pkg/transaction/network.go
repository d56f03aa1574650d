package transaction

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NetworkType identifies the chain a transaction or address belongs to.
type NetworkType uint8

const (
	MainNet   NetworkType = 0x68
	TestNet   NetworkType = 0x98
	Mijin     NetworkType = 0x60
	MijinTest NetworkType = 0x90
)

var networkNames = map[NetworkType]string{
	MainNet:   "MAIN_NET",
	TestNet:   "TEST_NET",
	Mijin:     "MIJIN",
	MijinTest: "MIJIN_TEST",
}

// ParseNetworkType accepts the canonical name, case insensitive.
func ParseNetworkType(name string) (NetworkType, error) {
	upper := strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
	for network, networkName := range networkNames {
		if networkName == upper {
			return network, nil
		}
	}
	return 0, fmt.Errorf("unknown network type %s", name)
}

// Valid returns true if the network is one of the known networks.
func (n NetworkType) Valid() bool {
	_, ok := networkNames[n]
	return ok
}

func (n NetworkType) String() string {
	if name, ok := networkNames[n]; ok {
		return name
	}
	return fmt.Sprintf("NETWORK_0x%02X", uint8(n))
}

func (n NetworkType) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

func (n *NetworkType) UnmarshalJSON(b []byte) error {
	name := ""
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	network, err := ParseNetworkType(name)
	if err != nil {
		return err
	}
	*n = network
	return nil
}
