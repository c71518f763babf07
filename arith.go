package math256

// Average returns floor((x+y)/2). The carry-save form (x & y) + ((x ^ y) >> 1)
// cannot overflow even when both operands are MaxWord.
func Average(x, y *Word) *Word {
	out := new(Word).And(x, y)
	t := new(Word).Xor(x, y)
	return out.Add(out, t.Rsh(t, 1))
}

// AverageSigned returns the average of two signed words, rounded towards
// negative infinity. The shifts are arithmetic; the final term restores the
// half lost when both low bits are set.
func AverageSigned(x, y *SWord) *SWord {
	out := new(SWord).SRsh(x, 1)
	t := new(SWord).SRsh(y, 1)
	out.Add(out, t)
	t.And(x, y)
	t.And(t, oneWord)
	return out.Add(out, t)
}

// CeilDiv returns ceil(x/y), or ErrDivisionByZero when y is zero. The
// (x-1)/y + 1 form avoids computing x+y-1, which would overflow for large x.
func CeilDiv(x, y *Word) (*Word, error) {
	if y.IsZero() {
		return nil, ErrDivisionByZero
	}
	if x.IsZero() {
		return new(Word), nil
	}
	out := new(Word).SubUint64(x, 1)
	out.Div(out, y)
	return out.AddUint64(out, 1), nil
}

// IsNegative reports whether x is negative under two's-complement
// interpretation. Zero is not negative.
func IsNegative(x *SWord) bool {
	return x.Sign() < 0
}
