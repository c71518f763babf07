package math256

// Log2 returns floor(log2(x)), or the ceiling when roundUp is set and x is
// not an exact power of two. Log2 of zero is defined as zero, not an error.
func Log2(x *Word, roundUp bool) uint {
	if x.IsZero() {
		return 0
	}
	out := uint(x.BitLen() - 1)
	if roundUp && !isPow2(x) {
		out++
	}
	return out
}

// Log10 returns floor(log10(x)), or the ceiling when roundUp is set and x is
// not an exact power of ten. Log10 of zero is defined as zero.
func Log10(x *Word, roundUp bool) uint {
	if x.IsZero() {
		return 0
	}
	var out uint
	v := new(Word).Set(x)
	for _, step := range [...]uint{64, 32, 16, 8, 4, 2, 1} {
		if !v.Lt(pow10[step]) {
			v.Div(v, pow10[step])
			out += step
		}
	}
	if roundUp && pow10[out].Lt(x) {
		out++
	}
	return out
}

// Log256 returns floor(log256(x)), or the ceiling when roundUp is set and x
// is not an exact power of 256: one less than the number of bytes needed to
// represent x, or the exact byte count, respectively. Log256 of zero is
// defined as zero.
func Log256(x *Word, roundUp bool) uint {
	if x.IsZero() {
		return 0
	}
	out := uint(x.BitLen()-1) / 8
	if roundUp {
		t := new(Word).Lsh(oneWord, 8*out)
		if t.Lt(x) {
			out++
		}
	}
	return out
}

func isPow2(x *Word) bool {
	t := new(Word).SubUint64(x, 1)
	t.And(t, x)
	return t.IsZero()
}
