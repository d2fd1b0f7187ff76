package ctm

// Word is one matrix coefficient in sign-magnitude S31.32 fixed point: bit 63
// is the sign, bits 0–62 hold |x|·2³² truncated toward zero.
type Word uint64

const (
	// SignBit is set on words encoding a negative coefficient.
	SignBit Word = 1 << 63

	// One is the encoding of 1.0.
	One Word = 1 << 32

	magnitudeMask Word = SignBit - 1
	scale              = float64(One)
)

// EncodeValue converts a single coefficient. The scaled magnitude is
// truncated, never rounded. Values whose magnitude does not fit in 63 bits are
// not clamped and encode to an unspecified word.
func EncodeValue(x float64) Word {
	if x < 0 {
		return Word(uint64(-x*scale)) | SignBit
	}
	return Word(uint64(x * scale))
}

// Encode converts every coefficient of m, preserving order.
func Encode(m Matrix) [Size]Word {
	var words [Size]Word
	for i, x := range m {
		words[i] = EncodeValue(x)
	}
	return words
}

// Negative reports whether the sign bit is set.
func (w Word) Negative() bool {
	return w&SignBit != 0
}

// Magnitude returns the low 63 bits.
func (w Word) Magnitude() uint64 {
	return uint64(w & magnitudeMask)
}

// Float64 decodes the word back into a coefficient.
func (w Word) Float64() float64 {
	v := float64(w.Magnitude()) / scale
	if w.Negative() {
		return -v
	}
	return v
}

// Decode converts words back into a matrix.
func Decode(words [Size]Word) Matrix {
	var m Matrix
	for i, w := range words {
		m[i] = w.Float64()
	}
	return m
}
