package math256

// WadCbrt returns the cube root of x with 1e18 fixed-point precision.
// WadCbrt(0) is 0.
func WadCbrt(x *Word) *Word {
	if x.IsZero() {
		return new(Word)
	}

	// Scale up by 1e36 where that cannot overflow, so the integer cube root
	// of the scaled value carries the full wad precision. For larger inputs
	// precision is sacrificed instead: scale by 1e18 or not at all, and make
	// up the difference on the result afterwards.
	v := new(Word)
	var rescale *Word
	switch {
	case !x.Lt(cbrtThreshHi):
		v.Set(x)
		rescale = e12
	case !x.Lt(cbrtThreshLo):
		v.Mul(x, Wad)
		rescale = e6
	default:
		v.Mul(x, e36)
	}

	// Newton seed 2^(log2(v)/3) * 1260^r / 1000^r with r = log2(v) mod 3,
	// using 1.26 for cbrt(2). Starting this close, seven iterations of
	// y = (2y + v/y^2) / 3 converge over the whole domain; six do not, so
	// the count is fixed rather than convergence-checked.
	log2x := uint(v.BitLen() - 1)
	rem := log2x % 3
	y := new(Word).Lsh(oneWord, log2x/3)
	y.Mul(y, cbrtSeedNum[rem])
	y.Div(y, cbrtSeedDen[rem])

	t := new(Word)
	for i := 0; i < 7; i++ {
		t.Mul(y, y)
		t.Div(v, t)
		y.Add(y, y)
		y.Add(y, t)
		y.Div(y, threeWord)
	}

	if rescale != nil {
		y.Mul(y, rescale)
	}
	return y
}

// Cbrt returns the integer cube root of x, truncated from the wad-precision
// root. Immediately below a perfect cube the truncation settles on the root
// itself rather than the floor; everywhere else it is the exact floor.
// roundUp adds one whenever the result's cube is not exactly x. Cbrt(0) is 0.
func Cbrt(x *Word, roundUp bool) *Word {
	out := WadCbrt(x)
	out.Div(out, e12)
	if roundUp {
		t := new(Word).Mul(out, out)
		t.Mul(t, out)
		if !t.Eq(x) {
			out.AddUint64(out, 1)
		}
	}
	return out
}
