package pow

import (
	"bytes"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Hasher computes the proof of work digest of a block header.
type Hasher interface {
	HeaderHash(header *wire.BlockHeader) chainhash.Hash
}

type HasherFunc func(header *wire.BlockHeader) chainhash.Hash

func (f HasherFunc) HeaderHash(header *wire.BlockHeader) chainhash.Hash {
	return f(header)
}

// DoubleSHA256 is the bitcoin header hash. It is not the PoW hash of this
// chain but is handy for tooling that only needs a deterministic digest.
var DoubleSHA256 Hasher = HasherFunc(func(header *wire.BlockHeader) chainhash.Hash {
	return header.BlockHash()
})

func serializeHeader(header *wire.BlockHeader) []byte {
	var buf bytes.Buffer
	buf.Grow(wire.MaxBlockHeaderPayload)
	// writes to a bytes.Buffer do not fail
	_ = header.Serialize(&buf)
	return buf.Bytes()
}
