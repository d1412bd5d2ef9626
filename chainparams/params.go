// Package chainparams builds the parameter set of every supported network
// and publishes the selected one for the rest of the process.
package chainparams

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/setavenger/chainparams/consensus"
	"github.com/setavenger/chainparams/genesis"
	"github.com/setavenger/chainparams/types"
	"github.com/shopspring/decimal"
)

// Base58Type selects one of the base58 version prefixes.
type Base58Type int

const (
	PubkeyAddress Base58Type = iota
	ScriptAddress
	SecretKey
	ExtPublicKey
	ExtSecretKey

	numBase58Types
)

var base58Names = [numBase58Types]string{
	PubkeyAddress: "pubkey_address",
	ScriptAddress: "script_address",
	SecretKey:     "secret_key",
	ExtPublicKey:  "ext_public_key",
	ExtSecretKey:  "ext_secret_key",
}

func (b Base58Type) String() string {
	if b < 0 || b >= numBase58Types {
		return fmt.Sprintf("Base58Type(%d)", int(b))
	}
	return base58Names[b]
}

// Checkpoint pins the hash of the block at Height.
type Checkpoint struct {
	Height int32
	Hash   chainhash.Hash
}

// AssumeutxoData describes a UTXO snapshot that may be loaded at a height.
type AssumeutxoData struct {
	HashSerialized chainhash.Hash
	ChainTxCount   uint64
}

// ChainTxData is used to estimate verification progress.
type ChainTxData struct {
	Time    int64
	TxCount int64
	// TxRate is transactions per second after Time
	TxRate decimal.Decimal
}

// Params is the complete parameter set of one network. Once returned by
// Create or published by Select it must be treated as read only.
type Params struct {
	Network    types.Network
	DevnetName string

	Consensus consensus.Params

	Genesis       *genesis.Block
	DevnetGenesis *genesis.Block

	MessageStart            [4]byte
	DefaultPort             uint16
	DefaultPlatformP2PPort  uint16
	DefaultPlatformHTTPPort uint16
	PruneAfterHeight        uint64
	AssumedBlockchainSize   uint64
	AssumedChainStateSize   uint64

	DNSSeeds   []string
	FixedSeeds []string

	Base58Prefixes [numBase58Types][]byte
	ExtCoinType    uint32

	DefaultConsistencyChecks        bool
	RequireStandard                 bool
	RequireRoutableExternalIP       bool
	IsTestChain                     bool
	IsMockableChain                 bool
	AllowMultipleAddressesFromGroup bool
	AllowMultiplePorts              bool
	LLMQConnectionRetryTimeout      int64

	PoolMinParticipants        int32
	PoolMaxParticipants        int32
	FulfilledRequestExpireTime int64

	SporkAddresses []string
	MinSporkKeys   int32

	Checkpoints []Checkpoint
	AssumeUTXO  map[int32]AssumeutxoData
	ChainTxData ChainTxData
}

var (
	ErrGenesisMismatch    = errors.New("genesis block does not match")
	ErrCheckpointOrdering = errors.New("checkpoint heights must be strictly increasing")
)

// GenesisHash is the permanent identity of the network.
func (p *Params) GenesisHash() chainhash.Hash {
	return p.Genesis.Hash
}

func (p *Params) Deployment(pos consensus.DeploymentPos) consensus.Deployment {
	return p.Consensus.Deployment(pos)
}

func (p *Params) LLMQ(t consensus.LLMQType) (consensus.LLMQParams, bool) {
	return p.Consensus.LLMQs.Lookup(t)
}

// LLMQRole returns the profile serving role.
func (p *Params) LLMQRole(role consensus.LLMQRole) consensus.LLMQParams {
	params, _ := p.Consensus.LLMQs.Lookup(p.Consensus.LLMQs.Role(role))
	return params
}

// Base58Prefix returns a copy of the version bytes for kind.
func (p *Params) Base58Prefix(kind Base58Type) []byte {
	return append([]byte(nil), p.Base58Prefixes[kind]...)
}

// Checkpoint returns the pinned hash at height, if any.
func (p *Params) Checkpoint(height int32) (chainhash.Hash, bool) {
	for _, c := range p.Checkpoints {
		if c.Height == height {
			return c.Hash, true
		}
	}
	return chainhash.Hash{}, false
}

// LastCheckpoint returns nil for networks without checkpoints.
func (p *Params) LastCheckpoint() *Checkpoint {
	if len(p.Checkpoints) == 0 {
		return nil
	}
	c := p.Checkpoints[len(p.Checkpoints)-1]
	return &c
}

// IsValidMNActivation see consensus.Params.IsValidMNActivation.
func (p *Params) IsValidMNActivation(bit int, timePast int64) bool {
	return p.Consensus.IsValidMNActivation(bit, timePast)
}

func checkCheckpoints(checkpoints []Checkpoint) error {
	for i := 1; i < len(checkpoints); i++ {
		if checkpoints[i].Height <= checkpoints[i-1].Height {
			return fmt.Errorf("%w: %d after %d", ErrCheckpointOrdering, checkpoints[i].Height, checkpoints[i-1].Height)
		}
	}
	return nil
}

func checkGenesis(network types.Network, block *genesis.Block, wantHash, wantMerkle string) error {
	if wantHash != "" && block.Hash.String() != wantHash {
		return fmt.Errorf("%w on %s: hash %s, expected %s", ErrGenesisMismatch, network, block.Hash, wantHash)
	}
	if merkle := block.MerkleRoot(); merkle.String() != wantMerkle {
		return fmt.Errorf("%w on %s: merkle root %s, expected %s", ErrGenesisMismatch, network, merkle, wantMerkle)
	}
	return nil
}

func newHashFromStr(hexStr string) chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		// only called on hard coded values
		panic(err)
	}
	return *hash
}
