package params

import (
	"errors"

	"github.com/spvkit/core/hash"
	"github.com/spvkit/core/header"
)

// Network is the closed enumeration of supported chain identities
type Network int

const (
	// Mainnet is the production network
	Mainnet Network = iota
	// Testnet is the public test network
	Testnet
	// Regtest is the local regression test network
	Regtest
)

// ErrUnknownNetwork is returned when a name does not match a supported network
var ErrUnknownNetwork = errors.New("Unknown network name")

// genesisMerkleRoot is shared by all three networks
var genesisMerkleRoot = mustHash("4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b")

func (n Network) String() string {
	switch n {
	case Mainnet:
		return "mainnet"
	case Testnet:
		return "testnet"
	case Regtest:
		return "regtest"
	}
	return "unknown"
}

// FromName resolves a configuration name into a Network
func FromName(s string) (Network, error) {
	switch s {
	case "mainnet":
		return Mainnet, nil
	case "testnet":
		return Testnet, nil
	case "regtest":
		return Regtest, nil
	}
	return Mainnet, ErrUnknownNetwork
}

// GenesisHeader returns the first header of the given network. Genesis
// headers have no predecessor, their previous hash is all zeroes.
func GenesisHeader(n Network) header.Header {
	switch n {
	case Testnet:
		return header.Header{
			Version:    1,
			MerkleRoot: genesisMerkleRoot,
			Timestamp:  1296688602,
			Bits:       0x1d00ffff,
			Nonce:      414098458,
		}
	case Regtest:
		return header.Header{
			Version:    1,
			MerkleRoot: genesisMerkleRoot,
			Timestamp:  1296688602,
			Bits:       0x207fffff,
			Nonce:      2,
		}
	default:
		return header.Header{
			Version:    1,
			MerkleRoot: genesisMerkleRoot,
			Timestamp:  1231006505,
			Bits:       0x1d00ffff,
			Nonce:      2083236893,
		}
	}
}

// GenesisHash returns the canonical genesis hash for the given network
func GenesisHash(n Network) hash.Hash {
	g := GenesisHeader(n)
	return g.Hash()
}

func mustHash(s string) hash.Hash {
	h, err := hash.FromString(s)
	if err != nil {
		panic(err)
	}
	return h
}
