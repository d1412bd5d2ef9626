// Package pow holds the compact difficulty codec and the header hashers used
// to check proof of work against a target.
package pow

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/holiman/uint256"
	"github.com/setavenger/chainparams/utils"
)

const (
	compactSignBit  = 0x00800000
	compactMantissa = 0x007fffff
)

var maxTarget = new(uint256.Int).SetAllOne()

// DecodeCompact expands the 32 bit compact representation into a 256 bit target.
// A set sign bit with a non-zero mantissa yields a zero target (nothing meets it).
// A mantissa that does not fit after shifting yields the saturated maximum.
func DecodeCompact(bits uint32) *uint256.Int {
	t, negative, overflow := decodeCompact(bits)
	switch {
	case negative:
		return new(uint256.Int)
	case overflow:
		return new(uint256.Int).Set(maxTarget)
	}
	return t
}

// DecodeCompactStrict reports sign and overflow instead of mapping them.
func DecodeCompactStrict(bits uint32) (*uint256.Int, error) {
	t, negative, overflow := decodeCompact(bits)
	switch {
	case negative:
		return nil, fmt.Errorf("compact target %08x is negative", bits)
	case overflow:
		return nil, fmt.Errorf("compact target %08x overflows 256 bits", bits)
	}
	return t, nil
}

func decodeCompact(bits uint32) (t *uint256.Int, negative, overflow bool) {
	size := bits >> 24
	word := uint64(bits & compactMantissa)

	t = new(uint256.Int)
	if size <= 3 {
		word >>= 8 * (3 - size)
		t.SetUint64(word)
	} else {
		t.SetUint64(word)
		t.Lsh(t, uint(8*(size-3)))
	}

	negative = word != 0 && bits&compactSignBit != 0
	overflow = word != 0 && (size > 34 ||
		(word > 0xff && size > 33) ||
		(word > 0xffff && size > 32))
	return t, negative, overflow
}

// EncodeCompact is the inverse of DecodeCompact for non-negative targets.
func EncodeCompact(t *uint256.Int) uint32 {
	size := uint32((t.BitLen() + 7) / 8)

	var compact uint32
	if size <= 3 {
		compact = uint32(t.Uint64() << (8 * (3 - size)))
	} else {
		shifted := new(uint256.Int).Rsh(t, uint(8*(size-3)))
		compact = uint32(shifted.Uint64())
	}

	// keep the mantissa positive
	if compact&compactSignBit != 0 {
		compact >>= 8
		size++
	}
	return compact | size<<24
}

// HashToTarget interprets the little endian digest as an unsigned integer.
func HashToTarget(h chainhash.Hash) *uint256.Int {
	return new(uint256.Int).SetBytes(utils.ReverseBytesCopy(h[:]))
}

// Meets reports whether the digest is at or below the target.
func Meets(h chainhash.Hash, target *uint256.Int) bool {
	return !HashToTarget(h).Gt(target)
}

// MeetsCompact is Meets against the lenient decoding of bits.
func MeetsCompact(h chainhash.Hash, bits uint32) bool {
	return Meets(h, DecodeCompact(bits))
}

// CheckProofOfWork applies the full header rule: the target must be positive,
// must not overflow and must not exceed the network limit.
func CheckProofOfWork(h chainhash.Hash, bits uint32, powLimit *uint256.Int) bool {
	target, err := DecodeCompactStrict(bits)
	if err != nil || target.IsZero() || target.Gt(powLimit) {
		return false
	}
	return Meets(h, target)
}

// TargetFromHex parses a big endian hex target, with or without 0x prefix.
// Leading zeros are allowed.
func TargetFromHex(s string) (*uint256.Int, error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid target hex: %w", err)
	}
	if len(raw) > 32 {
		return nil, fmt.Errorf("target hex is %d bytes, max 32", len(raw))
	}
	return new(uint256.Int).SetBytes(raw), nil
}

func MustTargetFromHex(s string) *uint256.Int {
	t, err := TargetFromHex(s)
	if err != nil {
		panic(err)
	}
	return t
}

// TargetHex renders a target as 64 hex characters.
func TargetHex(t *uint256.Int) string {
	b := t.Bytes32()
	return hex.EncodeToString(b[:])
}
