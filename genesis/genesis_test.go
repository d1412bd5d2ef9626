package genesis

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/txscript"
	"github.com/setavenger/chainparams/pow"
	"github.com/setavenger/chainparams/utils"
	"github.com/stretchr/testify/require"
)

func TestCoinbaseScript(t *testing.T) {
	require := require.New(t)

	script, err := coinbaseScript(Timestamp)
	require.NoError(err)

	want := "04ffff001d0104" + "1a" + hex.EncodeToString([]byte(Timestamp))
	require.Equal(want, hex.EncodeToString(script))

	out := OutputScript()
	require.Equal("41"+OutputPubKeyHex+"ac", hex.EncodeToString(out))
	require.Equal(txscript.PubKeyTy, txscript.GetScriptClass(out))
}

func TestBuildMerkleRoots(t *testing.T) {
	tests := []struct {
		name   string
		reward int64
		merkle string
	}{
		{"main and test", 200, "83fce268243cb41e0cc266dd0feeb1aa3005c6ad2f5b3ca1ad41427b912826ad"},
		{"regtest", 50000, "5fd315b072c6b2e340dd5a1bd50507b95880c6d160fd9e3e9b2add073bfee3dc"},
		{"devnet base", 50, "71a8f6db75130a1d7cd267b6f17599c1a7dd74625bdd0d0f4759db486651d514"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			block, err := BuildDefault(1417713337, 0, 0x20001fff, 1, utils.CoinsToDuffs(tt.reward), pow.DoubleSHA256)
			require.NoError(err)
			require.Equal(tt.merkle, block.MerkleRoot().String())
			require.Equal(block.Coinbase().TxHash(), block.MerkleRoot())
			require.Len(block.Msg.Transactions, 1)
			require.True(block.Msg.Header.PrevBlock.IsEqual(&zeroHash))
		})
	}
}

func TestBuildPinnedHashes(t *testing.T) {
	tests := []struct {
		name   string
		time   uint32
		nonce  uint32
		reward int64
		hash   string
	}{
		{"main", 1705981380, 8588, 200, "001c87738f77f0c63e7c0f8da47be2146066927142c373333007b0b0be515c4b"},
		{"test", 1390666206, 3692, 200, "00175ab0623b1c73e44e3be3eda51fb2a5bee253fc41eea0d4e57c0b677f9ee1"},
		{"regtest", 1417713337, 708, 50000, "000e33029d7fa5866ee608bc03e07bee1176c0433cccad0d5b3d44922532598d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			block, err := BuildDefault(tt.time, tt.nonce, 0x20001fff, 1, utils.CoinsToDuffs(tt.reward), pow.X11)
			require.NoError(err)
			require.Equal(tt.hash, block.Hash.String())
			require.True(pow.MeetsCompact(block.Hash, block.Bits()))
			require.Equal(tt.time, block.Time())
			require.Equal(tt.nonce, block.Nonce())
		})
	}
}

func TestBuildDeterministic(t *testing.T) {
	require := require.New(t)

	a, err := BuildDefault(1705981380, 8588, 0x20001fff, 1, utils.CoinsToDuffs(200), pow.X11)
	require.NoError(err)
	b, err := BuildDefault(1705981380, 8588, 0x20001fff, 1, utils.CoinsToDuffs(200), pow.X11)
	require.NoError(err)
	require.Equal(a.Hash, b.Hash)

	var bufA, bufB bytes.Buffer
	require.NoError(a.Msg.Serialize(&bufA))
	require.NoError(b.Msg.Serialize(&bufB))
	require.Equal(bufA.Bytes(), bufB.Bytes())
}

func TestBuildDevnet(t *testing.T) {
	require := require.New(t)

	base, err := BuildDefault(1417713337, 1096447, 0x207fffff, 1, utils.CoinsToDuffs(50), pow.DoubleSHA256)
	require.NoError(err)

	block, err := BuildDevnet(base.Hash, "devnet-foo", base.Time()+1, 7, base.Bits(), utils.CoinsToDuffs(50), pow.DoubleSHA256)
	require.NoError(err)

	require.Equal(int32(4), block.Msg.Header.Version)
	require.Equal(base.Hash, block.Msg.Header.PrevBlock)
	require.Equal(base.Time()+1, block.Time())
	require.Equal(uint32(7), block.Nonce())

	cb := block.Coinbase()
	require.Equal(int32(1), cb.Version)
	require.Equal("510a"+hex.EncodeToString([]byte("devnet-foo")), hex.EncodeToString(cb.TxIn[0].SignatureScript))
	require.Equal([]byte{txscript.OP_RETURN}, cb.TxOut[0].PkScript)
	require.Equal(utils.CoinsToDuffs(50), cb.TxOut[0].Value)

	_, err = BuildDevnet(base.Hash, "", base.Time()+1, 0, base.Bits(), 0, pow.DoubleSHA256)
	require.ErrorIs(err, ErrEmptyDevnetName)
}
