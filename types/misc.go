package types

import (
	"errors"
	"fmt"
)

// Network identifies one of the supported chains.
type Network string

const (
	NetworkMain    Network = "main"
	NetworkTest    Network = "test"
	NetworkDevnet  Network = "devnet"
	NetworkRegtest Network = "regtest"
)

var ErrUnknownNetwork = errors.New("unknown network")

// Networks lists every supported network in a stable order.
var Networks = []Network{NetworkMain, NetworkTest, NetworkDevnet, NetworkRegtest}

func ParseNetwork(name string) (Network, error) {
	for _, n := range Networks {
		if string(n) == name {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
}

func (n Network) String() string { return string(n) }

// IsTestChain reports whether coins on this network are worthless.
func (n Network) IsTestChain() bool {
	return n != NetworkMain
}
