package cpu

import (
	"math/big"
	"strings"

	"lukechampine.com/uint128"
)

// Word is the 128-bit register value container.
type Word = uint128.Uint128

// WordFrom64 returns a Word holding a 64-bit value.
func WordFrom64(value uint64) Word {
	return uint128.From64(value)
}

// WordFromBig converts a non-negative big integer of at most 128 bits.
func WordFromBig(value *big.Int) (word Word, err error) {
	if value.Sign() < 0 || value.BitLen() > WORD_SIZE_MAX {
		err = ErrParseNumber(value.String())
		return
	}

	word = uint128.FromBig(value)
	return
}

// maskOf returns the all-ones mask for a word size in bits.
func maskOf(size uint) (mask Word) {
	switch {
	case size >= WORD_SIZE_MAX:
		mask = uint128.Max
	case size == 64:
		mask = uint128.From64(^uint64(0))
	default:
		mask = uint128.From64(1).Lsh(size).Sub64(1)
	}

	return
}

// FormatWord renders a value in the given base. Hex digits are uppercase;
// there is no padding or digit grouping.
func FormatWord(value Word, base Base) (text string) {
	text = value.Big().Text(int(base))
	if base == BASE_HEX {
		text = strings.ToUpper(text)
	}

	return
}

// ParseValue parses unsigned number text in the given base.
func ParseValue(text string, base Base) (value Word, err error) {
	parsed, ok := new(big.Int).SetString(text, int(base))
	if !ok {
		err = ErrParseNumber(text)
		return
	}

	return WordFromBig(parsed)
}
