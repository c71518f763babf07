package math256

import (
	"github.com/holiman/uint256"
)

type (
	// Word is an unsigned 256-bit integer.
	Word = uint256.Int

	// SWord is a signed 256-bit integer. It shares Word's representation;
	// the bit pattern is interpreted as two's complement.
	SWord = uint256.Int
)

// w parses an unsigned decimal constant. Init-time only.
func w(s string) *Word {
	return uint256.MustFromDecimal(s)
}

// sw parses a signed decimal constant into its two's-complement bit
// pattern. Init-time only.
func sw(s string) *SWord {
	if len(s) > 0 && s[0] == '-' {
		v := uint256.MustFromDecimal(s[1:])
		return v.Neg(v)
	}
	return uint256.MustFromDecimal(s)
}

func swordFromInt(v int) *SWord {
	out := new(SWord)
	if v < 0 {
		out.SetUint64(uint64(-v))
		return out.Neg(out)
	}
	return out.SetUint64(uint64(v))
}

// swordToInt narrows a signed word known to fit in an int.
func swordToInt(v *SWord) int {
	if v.Sign() < 0 {
		abs := new(SWord).Neg(v)
		return -int(abs.Uint64())
	}
	return int(v.Uint64())
}
