package ctm

import (
	"fmt"
	"strconv"
	"strings"
)

// TokenCount is the number of 32-bit values xrandr expects for the CTM property.
const TokenCount = 2 * Size

// Split returns the low and high 32-bit halves of w.
func Split(w Word) (lo, hi uint32) {
	return uint32(w & 0xFFFFFFFF), uint32((w >> 32) & 0xFFFFFFFF)
}

// Join is the inverse of Split.
func Join(lo, hi uint32) Word {
	return Word(hi)<<32 | Word(lo)
}

// Tokens formats each word as its low then high half, in matrix order.
func Tokens(words [Size]Word) []string {
	tokens := make([]string, 0, TokenCount)
	for _, w := range words {
		lo, hi := Split(w)
		tokens = append(tokens,
			strconv.FormatUint(uint64(lo), 10),
			strconv.FormatUint(uint64(hi), 10),
		)
	}
	return tokens
}

// ArgumentString returns the comma-separated value for `xrandr --set CTM`.
func ArgumentString(words [Size]Word) string {
	return strings.Join(Tokens(words), ",")
}

// ParseArguments reads a CTM property value in the ArgumentString format.
func ParseArguments(s string) ([Size]Word, error) {
	var words [Size]Word

	fields := strings.Split(s, ",")
	if len(fields) != TokenCount {
		return words, fmt.Errorf("ctm: expected %d values, got %d", TokenCount, len(fields))
	}

	halves := make([]uint32, TokenCount)
	for i, f := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(f), 10, 32)
		if err != nil {
			return words, fmt.Errorf("ctm: value %d: %w", i+1, err)
		}
		halves[i] = uint32(v)
	}

	for i := range words {
		words[i] = Join(halves[2*i], halves[2*i+1])
	}
	return words, nil
}
