package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/setavenger/chainparams/api"
	"github.com/setavenger/chainparams/pow"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) []byte {
	t.Helper()
	var out bytes.Buffer
	root := rootCommand()
	root.SetOut(&out)
	root.SetArgs(args)
	require.NoError(t, root.ExecuteContext(context.Background()))
	return out.Bytes()
}

func TestShowRegtest(t *testing.T) {
	require := require.New(t)

	raw := run(t, "show", "--network=regtest", "--log-level=warn", "--dip8params=50")

	var info api.ParamsInfo
	require.NoError(json.Unmarshal(raw, &info))
	require.Equal("regtest", info.Network)
	require.Equal("000e33029d7fa5866ee608bc03e07bee1176c0433cccad0d5b3d44922532598d", info.Genesis.Hash)
	require.Equal(uint16(19899), info.DefaultPort)
}

func TestMine(t *testing.T) {
	require := require.New(t)

	raw := run(t, "mine", "--time=1700000000", "--bits=207fffff", "--reward=10", "--log-level=warn")

	var info api.GenesisInfo
	require.NoError(json.Unmarshal(raw, &info))
	require.Equal(uint32(1700000000), info.Time)
	require.Equal("207fffff", info.Bits)
	require.Equal("10.00000000", info.Reward)
	require.NotEmpty(info.Raw)

	target := pow.MustTargetFromHex(info.Target)
	require.Equal(uint32(0x207fffff), pow.EncodeCompact(target))
}

func TestMineRequiresTime(t *testing.T) {
	root := rootCommand()
	root.SetArgs([]string{"mine"})
	root.SetOut(&bytes.Buffer{})
	require.Error(t, root.ExecuteContext(context.Background()))
}
