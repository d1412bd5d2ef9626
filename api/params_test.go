package api

import (
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/setavenger/chainparams/chainparams"
	"github.com/setavenger/chainparams/pow"
	"github.com/setavenger/chainparams/types"
	"github.com/stretchr/testify/require"
)

func TestParamsInfoRegtest(t *testing.T) {
	require := require.New(t)

	p, err := chainparams.Create(context.Background(), types.NetworkRegtest, nil, pow.X11)
	require.NoError(err)

	info, err := NewParamsInfo(p)
	require.NoError(err)
	require.Equal("regtest", info.Network)
	require.Equal("000e33029d7fa5866ee608bc03e07bee1176c0433cccad0d5b3d44922532598d", info.Genesis.Hash)
	require.Equal("20001fff", info.Genesis.Bits)
	require.Equal("50000.00000000", info.Genesis.Reward)
	require.Empty(info.Genesis.Raw)
	require.Nil(info.DevnetGenesis)
	require.Equal("756e6679", info.MessageStart)
	require.Equal("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", info.PowLimit)
	require.Equal("llmq_test_instantsend", info.LLMQRoles["instantsend"])
	require.Equal("llmq_test_dip0024", info.LLMQRoles["instantsend_dip0024"])
	require.Equal("8c", info.Base58Prefixes["pubkey_address"])
	require.Len(info.Deployments, 3)
	require.Equal("mn_rr", info.Deployments[2].Name)
	require.True(info.Deployments[2].UseEHF)
	require.Len(info.Checkpoints, 1)

	raw, err := Marshal(info)
	require.NoError(err)

	var decoded map[string]any
	require.NoError(json.Unmarshal(raw, &decoded))
	require.Equal("regtest", decoded["network"])
	require.Contains(decoded, "llmqs")
	require.NotContains(decoded, "devnet_genesis")
}

func TestGenesisInfoRaw(t *testing.T) {
	require := require.New(t)

	p, err := chainparams.Create(context.Background(), types.NetworkMain, nil, pow.X11)
	require.NoError(err)

	info, err := NewGenesisInfo(p.Genesis, true)
	require.NoError(err)
	require.Equal("200.00000000", info.Reward)
	require.Equal("0000000000000000000000000000000000000000000000000000000000000000", info.PrevBlock)
	// header, one transaction
	require.Equal("01000000", info.Raw[:8])
	require.Equal("01", info.Raw[160:162])
}

func TestParamsInfoDevnet(t *testing.T) {
	require := require.New(t)

	p, err := chainparams.Create(context.Background(), types.NetworkDevnet, chainparams.NewMapArgs().Set("devnet", "x"), pow.X11)
	require.NoError(err)

	info, err := NewParamsInfo(p)
	require.NoError(err)
	require.Equal("devnet-x", info.DevnetName)
	require.NotNil(info.DevnetGenesis)
	require.Equal(info.Genesis.Hash, info.DevnetGenesis.PrevBlock)
	require.Equal(int32(4), info.DevnetGenesis.Version)
	require.Len(info.Checkpoints, 2)
}
