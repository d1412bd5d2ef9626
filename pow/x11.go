package pow

import (
	"github.com/bitbandi/go-x11"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

type x11Hasher struct{}

// X11 chains the eleven SHA-3 candidate functions over the 80 byte header.
// It is the proof of work hash and block identifier of every network here.
var X11 Hasher = x11Hasher{}

func (x11Hasher) HeaderHash(header *wire.BlockHeader) chainhash.Hash {
	var out chainhash.Hash
	// the hasher keeps intermediate state, one per call
	x11.New().Hash(serializeHeader(header), out[:])
	return out
}
