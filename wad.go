package math256

// WadLn returns the natural logarithm of x, where both x and the result are
// 1e18 fixed point. Negative inputs (including MinSWord, whose negation does
// not exist) return ErrUndefined; zero is passed through as zero.
func WadLn(x *SWord) (*SWord, error) {
	if x.Sign() < 0 {
		return nil, ErrUndefined
	}
	if x.IsZero() {
		return new(SWord), nil
	}

	// Reduce to v in (1, 2) * 2^96: ln(2^k * v) = k*ln(2) + ln(v). The
	// rebasing from 1e18 to 2^96 happens implicitly; lnBias accounts for
	// ln(2^96 / 1e18) at the end.
	k := x.BitLen() - 1 - 96

	// k can be negative, so normalise with a pair of logical shifts on the
	// raw bit pattern rather than shifting by 96-k directly.
	v := new(SWord).Lsh(x, uint(159-k))
	v.Rsh(v, 159)

	// (8, 8)-term rational approximation in 2^96 fixed point, Horner form.
	// p is monic; its scale factor is folded into lnScale.
	p := new(SWord).Add(v, lnP0)
	hornerWad(p, v, lnP1)
	hornerWad(p, v, lnP2)
	hornerWad(p, v, lnP3)
	hornerWad(p, v, lnP4)
	hornerWad(p, v, lnP5)
	p.Mul(p, v)
	p.Add(p, lnP6) // pre-shifted: p stays in the 2^192 base for the division

	q := new(SWord).Add(v, lnQ0)
	hornerWad(q, v, lnQ1)
	hornerWad(q, v, lnQ2)
	hornerWad(q, v, lnQ3)
	hornerWad(q, v, lnQ4)
	hornerWad(q, v, lnQ5)
	hornerWad(q, v, lnQ6)

	// q has no zeros in the reduced domain (all roots are complex).
	out := p.SDiv(p, q)

	out.Mul(out, lnScale)
	t := new(SWord).Mul(lnKTerm, swordFromInt(k))
	out.Add(out, t)
	out.Add(out, lnBias)
	return out.SRsh(out, 174), nil
}

// WadExp returns e raised to x, where both x and the result are 1e18 fixed
// point. Inputs at or below -42139678854452767551 underflow to zero; inputs
// at or above 135305999368893231589 return ErrOverflow.
func WadExp(x *SWord) (*SWord, error) {
	if !expMinInput.Slt(x) {
		return new(SWord), nil
	}
	if !x.Slt(expMaxInput) {
		return nil, ErrOverflow
	}

	// Rebase from 1e18 to 2^96 fixed point: 1e18/2^96 == 5^18/2^78.
	v := new(SWord).Lsh(x, 78)
	v.SDiv(v, pow5to18)

	// Reduce to (-ln(2)/2, ln(2)/2) * 2^96 by pulling out k = round(v/ln2)
	// powers of two: exp(v) = exp(v - k*ln2) * 2^k. k stays in [-61, 195].
	k := new(SWord).Lsh(v, 96)
	k.SDiv(k, ln2x96)
	k.Add(k, roundHalf)
	k.SRsh(k, 96)
	t := new(SWord).Mul(k, ln2x96)
	v.Sub(v, t)

	// (6, 7)-term rational approximation in 2^96 fixed point.
	y := new(SWord).Add(v, expY0)
	hornerWad(y, v, expY1)
	p := new(SWord).Add(y, v)
	p.Add(p, expP0)
	hornerWad(p, y, expP1)
	p.Mul(p, v)
	p.Add(p, expP2) // pre-shifted: p stays in the 2^192 base for the division

	q := new(SWord).Add(v, expQ0)
	hornerWad(q, v, expQ1)
	hornerWad(q, v, expQ2)
	hornerWad(q, v, expQ3)
	hornerWad(q, v, expQ4)
	hornerWad(q, v, expQ5)

	// q has no zeros in the reduced domain (all roots are complex).
	out := p.SDiv(p, q)

	// out is in (0.09, 0.25) * 2^96. One multiply and shift applies the
	// polynomial scale factor, the 2^k from the range reduction, and the
	// 2^96 -> 1e18 base change; the 2^213 intermediate base keeps the final
	// shift amount non-negative.
	out.Mul(out, expScale)
	return out.Rsh(out, uint(195-swordToInt(k))), nil
}

// hornerWad folds one Horner term in 2^96 fixed point: z = ((z*v) >> 96) + c,
// with an arithmetic shift.
func hornerWad(z, v, c *SWord) *SWord {
	z.Mul(z, v)
	z.SRsh(z, 96)
	return z.Add(z, c)
}
