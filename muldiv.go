package math256

// MulDiv returns x*y/denom, floored, or rounded up when roundUp is set. The
// product is carried at full 512-bit precision, so the result is exact for
// any inputs with denom > 0 whose quotient fits a single word; otherwise
// ErrOverflow is returned (ErrDivisionByZero when denom is zero).
//
// The algorithm is Remco Bloemen's: the 512-bit product is recovered from
// two single-word modular reductions by CRT, the denominator's power-of-two
// factor is shifted out, and the remaining odd factor is divided by
// multiplying with its inverse mod 2^256.
func MulDiv(x, y, denom *Word, roundUp bool) (*Word, error) {
	if denom.IsZero() {
		return nil, ErrDivisionByZero
	}

	// 512-bit product as (hi, lo): lo is x*y mod 2^256, and hi falls out of
	// the reduction mod 2^256-1, since mm = hi + lo - carry (mod 2^256-1).
	mm := new(Word).MulMod(x, y, MaxWord)
	lo := new(Word).Mul(x, y)
	hi := new(Word).Sub(mm, lo)
	if mm.Lt(lo) {
		hi.SubUint64(hi, 1)
	}

	rem := new(Word).MulMod(x, y, denom)

	if hi.IsZero() {
		out := lo.Div(lo, denom)
		if roundUp && !rem.IsZero() {
			if out.Eq(MaxWord) {
				return nil, ErrOverflow
			}
			out.AddUint64(out, 1)
		}
		return out, nil
	}

	if !hi.Lt(denom) {
		return nil, ErrOverflow
	}

	// Subtract the remainder so [hi lo] is exactly divisible by denom.
	if rem.Gt(lo) {
		hi.SubUint64(hi, 1)
	}
	lo.Sub(lo, rem)

	// Shift the largest power of two out of the denominator, and fold the
	// bits of hi that belong in lo back in: (0-twos)/twos + 1 is 2^256/twos.
	twos := new(Word).Neg(denom)
	twos.And(twos, denom)
	odd := new(Word).Div(denom, twos)
	lo.Div(lo, twos)

	t := new(Word).Neg(twos)
	t.Div(t, twos)
	t.AddUint64(t, 1)
	hi.Mul(hi, t)
	lo.Or(lo, hi)

	// Inverse of the odd denominator mod 2^256. (3*odd) ^ 2 is correct to
	// four bits; each Newton step doubles that, so six steps reach 256.
	inv := new(Word).Mul(threeWord, odd)
	inv.Xor(inv, twoWord)
	for i := 0; i < 6; i++ {
		t.Mul(odd, inv)
		t.Sub(twoWord, t)
		inv.Mul(inv, t)
	}

	out := lo.Mul(lo, inv)
	if roundUp && !rem.IsZero() {
		if out.Eq(MaxWord) {
			return nil, ErrOverflow
		}
		out.AddUint64(out, 1)
	}
	return out, nil
}
