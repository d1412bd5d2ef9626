package genesis

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/setavenger/chainparams/logging"
	"github.com/setavenger/chainparams/pow"
)

var ErrDevnetGenesisNotFound = errors.New("could not find devnet genesis block")

var ErrNonceSpaceExhausted = errors.New("nonce space exhausted")

const (
	// progressInterval is how often Mine reports the current candidate.
	progressInterval = 500

	// maxNonce is exclusive, the all-ones nonce is never tried.
	maxNonce = math.MaxUint32
)

// Mine tries nonces from zero upwards and returns the first block whose hash
// meets the target encoded in the block's bits. The context is checked on
// every attempt.
func Mine(ctx context.Context, template *Block, hasher pow.Hasher) (*Block, error) {
	return mine(ctx, template, hasher, maxNonce, true)
}

func mine(ctx context.Context, template *Block, hasher pow.Hasher, limit uint32, progress bool) (*Block, error) {
	target := pow.DecodeCompact(template.Bits())

	for nonce := uint32(0); nonce < limit; nonce++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		candidate := template.withNonce(nonce, hasher)
		if progress && nonce%progressInterval == 0 {
			logging.L.Trace().
				Uint32("nonce", nonce).
				Str("hash", candidate.Hash.String()).
				Msg("mining genesis")
		}
		if pow.Meets(candidate.Hash, target) {
			logging.L.Debug().
				Uint32("nonce", nonce).
				Str("hash", candidate.Hash.String()).
				Str("merkle", candidate.MerkleRoot().String()).
				Msg("found genesis")
			return candidate, nil
		}
	}

	return nil, ErrNonceSpaceExhausted
}

// SearchDevnet finds the devnet genesis that follows prev. The candidate
// uses prev's time plus one second and prev's bits, and carries the devnet
// name in its coinbase.
func SearchDevnet(ctx context.Context, prev *Block, devnetName string, reward int64, hasher pow.Hasher) (*Block, error) {
	return searchDevnet(ctx, prev, devnetName, reward, hasher, maxNonce)
}

func searchDevnet(
	ctx context.Context, prev *Block, devnetName string, reward int64, hasher pow.Hasher, limit uint32,
) (*Block, error) {
	template, err := BuildDevnet(prev.Hash, devnetName, prev.Time()+1, 0, prev.Bits(), reward, hasher)
	if err != nil {
		return nil, err
	}

	block, err := mine(ctx, template, hasher, limit, false)
	if errors.Is(err, ErrNonceSpaceExhausted) {
		err = fmt.Errorf("%w for %s", ErrDevnetGenesisNotFound, devnetName)
		logging.L.Err(err).Msg("devnet genesis search failed")
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	return block, nil
}
