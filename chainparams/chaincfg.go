package chainparams

import (
	"encoding/binary"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/setavenger/chainparams/pow"
	"github.com/setavenger/chainparams/utils"
)

// Net returns the message start as the btcd network magic.
func (p *Params) Net() wire.BitcoinNet {
	return wire.BitcoinNet(binary.LittleEndian.Uint32(p.MessageStart[:]))
}

// ChainCfg maps the parameter set onto btcd's chaincfg.Params so btcutil
// address and key handling can be used for this network. The result is not
// registered with chaincfg, main and test share HD key ids with bitcoin.
func (p *Params) ChainCfg() *chaincfg.Params {
	c := &chaincfg.Params{
		Name:        p.Network.String(),
		Net:         p.Net(),
		DefaultPort: itoa(p.DefaultPort),

		GenesisBlock: p.Genesis.Msg,
		GenesisHash:  newHashPtr(p.Genesis.Hash),

		PowLimit:                      p.Consensus.PowLimit.ToBig(),
		PowLimitBits:                  pow.EncodeCompact(p.Consensus.PowLimit),
		BIP0034Height:                 p.Consensus.BIP34Height,
		BIP0065Height:                 p.Consensus.BIP65Height,
		BIP0066Height:                 p.Consensus.BIP66Height,
		TargetTimespan:                time.Duration(p.Consensus.PowTargetTimespan) * time.Second,
		TargetTimePerBlock:            time.Duration(p.Consensus.PowTargetSpacing) * time.Second,
		ReduceMinDifficulty:           p.Consensus.PowAllowMinDifficultyBlocks,
		GenerateSupported:             p.IsMockableChain,
		RelayNonStdTxs:                !p.RequireStandard,
		PoWNoRetargeting:              p.Consensus.PowNoRetargeting,
		RuleChangeActivationThreshold: p.Consensus.RuleChangeActivationThreshold,
		MinerConfirmationWindow:       p.Consensus.MinerConfirmationWindow,

		PubKeyHashAddrID: p.Base58Prefixes[PubkeyAddress][0],
		ScriptHashAddrID: p.Base58Prefixes[ScriptAddress][0],
		PrivateKeyID:     p.Base58Prefixes[SecretKey][0],
		HDPublicKeyID:    utils.ConvertToFixedLength4(p.Base58Prefixes[ExtPublicKey]),
		HDPrivateKeyID:   utils.ConvertToFixedLength4(p.Base58Prefixes[ExtSecretKey]),
		HDCoinType:       p.ExtCoinType,
	}

	for _, host := range p.DNSSeeds {
		c.DNSSeeds = append(c.DNSSeeds, chaincfg.DNSSeed{Host: host})
	}
	for _, cp := range p.Checkpoints {
		c.Checkpoints = append(c.Checkpoints, chaincfg.Checkpoint{Height: cp.Height, Hash: newHashPtr(cp.Hash)})
	}
	return c
}

func newHashPtr(h chainhash.Hash) *chainhash.Hash {
	return &h
}

func itoa(port uint16) string {
	return utils.FormatUint(uint64(port))
}
