package chainparams

import (
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
	"github.com/setavenger/chainparams/types"
	"github.com/stretchr/testify/require"
)

func TestChainCfg(t *testing.T) {
	require := require.New(t)

	p := mustCreate(t, types.NetworkMain, nil)
	cfg := p.ChainCfg()

	require.Equal("main", cfg.Name)
	require.Equal(wire.BitcoinNet(0x79666e75), cfg.Net)
	require.Equal("1464", cfg.DefaultPort)
	require.Equal(byte(68), cfg.PubKeyHashAddrID)
	require.Equal(byte(16), cfg.ScriptHashAddrID)
	require.Equal(byte(204), cfg.PrivateKeyID)
	require.Equal([4]byte{0x04, 0x88, 0xB2, 0x1E}, cfg.HDPublicKeyID)
	require.Equal(uint32(5), cfg.HDCoinType)
	require.Equal(p.GenesisHash(), *cfg.GenesisHash)
	require.Same(p.Genesis.Msg, cfg.GenesisBlock)
	require.Equal(0, p.Consensus.PowLimit.ToBig().Cmp(cfg.PowLimit))
	require.Len(cfg.DNSSeeds, len(p.DNSSeeds))
	require.Len(cfg.Checkpoints, len(p.Checkpoints))
}

func TestValidateSporkAddresses(t *testing.T) {
	for _, network := range types.Networks {
		p := mustCreate(t, network, nil)
		require.NoError(t, p.ValidateSporkAddresses(), network.String())
	}
}

func TestValidateSporkAddressesWrongNetwork(t *testing.T) {
	p := mustCreate(t, types.NetworkMain, nil)
	p.SporkAddresses = []string{"yjPtiKh2uwk3bDutTEA2q9mCtXyiZRWn55"}
	require.ErrorIs(t, p.ValidateSporkAddresses(), ErrInvalidSporkAddress)

	p.SporkAddresses = nil
	require.ErrorIs(t, p.ValidateSporkAddresses(), ErrInvalidSporkAddress)
}

func TestSporkAddressFromWIF(t *testing.T) {
	require := require.New(t)

	p := mustCreate(t, types.NetworkRegtest, nil)
	addr, err := p.SporkAddressFromWIF("cP4EKFyJsHT39LDqgdcB43Y3YXjNyjb5Fuas1GQSeAtjnZWmZEQK")
	require.NoError(err)
	require.Equal("yj949n1UH6fDhw6HtVE5VMj2iSTaSWBMcW", addr)
	require.True(p.IsSporkAddress(addr))

	main := mustCreate(t, types.NetworkMain, nil)
	_, err = main.SporkAddressFromWIF("cP4EKFyJsHT39LDqgdcB43Y3YXjNyjb5Fuas1GQSeAtjnZWmZEQK")
	require.Error(err)
}

func TestSporkAddressFromKey(t *testing.T) {
	require := require.New(t)

	key, err := btcec.NewPrivateKey()
	require.NoError(err)

	p := mustCreate(t, types.NetworkTest, nil)
	addr, err := p.SporkAddress(key.PubKey(), true)
	require.NoError(err)
	require.Equal(byte('y'), addr[0])

	decoded, err := btcutil.DecodeAddress(addr, p.ChainCfg())
	require.NoError(err)
	require.True(decoded.IsForNet(p.ChainCfg()))
	require.False(p.IsSporkAddress(addr))
}
