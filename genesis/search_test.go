package genesis

import (
	"context"
	"math/rand"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/setavenger/chainparams/pow"
	"github.com/setavenger/chainparams/utils"
	"github.com/stretchr/testify/require"
)

var zeroHash chainhash.Hash

// nonceHasher only produces a passing hash for one nonce.
func nonceHasher(winner uint32) pow.Hasher {
	return pow.HasherFunc(func(h *wire.BlockHeader) chainhash.Hash {
		if h.Nonce == winner {
			return chainhash.Hash{}
		}
		var hash chainhash.Hash
		for i := range hash {
			hash[i] = 0xff
		}
		return hash
	})
}

func devnetBase(t *testing.T, hasher pow.Hasher) *Block {
	base, err := BuildDefault(1417713337, 1096447, 0x207fffff, 1, utils.CoinsToDuffs(50), hasher)
	require.NoError(t, err)
	return base
}

func TestSearchDevnetFirstMatch(t *testing.T) {
	require := require.New(t)

	hasher := nonceHasher(3)
	base := devnetBase(t, hasher)

	block, err := SearchDevnet(context.Background(), base, "devnet", utils.CoinsToDuffs(50), hasher)
	require.NoError(err)
	require.Equal(uint32(3), block.Nonce())
	require.Equal(base.Time()+1, block.Time())
	require.Equal(base.Bits(), block.Bits())
	require.Equal(base.Hash, block.Msg.Header.PrevBlock)
	require.Equal(int32(4), block.Msg.Header.Version)
}

func TestSearchDevnetExhausted(t *testing.T) {
	require := require.New(t)

	hasher := nonceHasher(100)
	base := devnetBase(t, hasher)

	_, err := searchDevnet(context.Background(), base, "devnet-foo", 0, hasher, 10)
	require.ErrorIs(err, ErrDevnetGenesisNotFound)
	require.Contains(err.Error(), "devnet-foo")
}

func TestSearchDevnetCancelled(t *testing.T) {
	require := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	hasher := nonceHasher(0)
	_, err := SearchDevnet(ctx, devnetBase(t, hasher), "devnet", 0, hasher)
	require.ErrorIs(err, context.Canceled)
}

func TestSearchDevnetEmptyName(t *testing.T) {
	hasher := nonceHasher(0)
	_, err := SearchDevnet(context.Background(), devnetBase(t, hasher), "", 0, hasher)
	require.ErrorIs(t, err, ErrEmptyDevnetName)
}

func TestSearchDevnetX11(t *testing.T) {
	require := require.New(t)

	base := devnetBase(t, pow.X11)

	a, err := SearchDevnet(context.Background(), base, "devnet", utils.CoinsToDuffs(50), pow.X11)
	require.NoError(err)
	require.True(pow.MeetsCompact(a.Hash, a.Bits()))

	b, err := SearchDevnet(context.Background(), base, "devnet", utils.CoinsToDuffs(50), pow.X11)
	require.NoError(err)
	require.Equal(a.Hash, b.Hash)

	other, err := SearchDevnet(context.Background(), base, "devnet-other", utils.CoinsToDuffs(50), pow.X11)
	require.NoError(err)
	require.NotEqual(a.Hash, other.Hash)
}

func TestMine(t *testing.T) {
	require := require.New(t)

	template, err := BuildDefault(1417713337, 0, 0x207fffff, 1, utils.CoinsToDuffs(50), pow.X11)
	require.NoError(err)

	block, err := Mine(context.Background(), template, pow.X11)
	require.NoError(err)
	require.True(pow.MeetsCompact(block.Hash, 0x207fffff))
	require.Equal(template.MerkleRoot(), block.MerkleRoot())
	// template is not modified
	require.Equal(uint32(0), template.Nonce())
}

// coinHasher passes for roughly half of all nonces, always the same ones.
func coinHasher(seed int64) func(nonce uint32) bool {
	return func(nonce uint32) bool {
		return rand.New(rand.NewSource(seed+int64(nonce))).Intn(2) == 0
	}
}

func TestSearchDevnetBoundedTries(t *testing.T) {
	require := require.New(t)

	passes := coinHasher(42)
	var calls int
	hasher := pow.HasherFunc(func(h *wire.BlockHeader) chainhash.Hash {
		calls++
		var hash chainhash.Hash
		if !passes(h.Nonce) {
			for i := range hash {
				hash[i] = 0xff
			}
		}
		return hash
	})

	base := devnetBase(t, hasher)
	template, err := BuildDevnet(base.Hash, "devnet-coin", base.Time()+1, 0, 0x207fffff, 0, hasher)
	require.NoError(err)

	var want uint32
	for !passes(want) {
		want++
	}

	calls = 0
	block, err := mine(context.Background(), template, hasher, maxNonce, false)
	require.NoError(err)
	require.Equal(want, block.Nonce())
	require.Equal(int(want)+1, calls)
	require.LessOrEqual(calls, 64)
	require.True(pow.MeetsCompact(block.Hash, 0x207fffff))
}
