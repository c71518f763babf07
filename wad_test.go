package math256

import (
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestWadLn(t *testing.T) {
	for _, tc := range []struct {
		x, out *SWord
	}{
		{sw("0"), sw("0")},
		{sw("1"), sw("-41446531673892822313")},
		{sw("2"), sw("-40753384493332877003")},
		{sw("1000000000"), sw("-20723265836946411157")},
		{sw("500000000000000000"), sw("-693147180559945310")},
		{sw("1000000000000000000"), sw("0")},
		{sw("1000000000000000001"), sw("1")},
		{sw("2718281828459045235"), sw("999999999999999999")},
		{sw("3000000000000000000"), sw("1098612288668109691")},
		{sw("10000000000000000000"), sw("2302585092994045683")},
		{sw("123456789000000000000000000"), sw("18631401766168018033")},
		{MaxSWord, sw("135305999368893231589")},
	} {
		t.Run(fmt.Sprintf("ln(%s)=%s", tc.x.Dec(), signedBig(tc.out)), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, err := WadLn(tc.x)
			tt.MustOKAll(err)
			tt.MustAssert(tc.out.Eq(out), "found %s", signedBig(out))
		})
	}
}

func TestWadLnUndefined(t *testing.T) {
	tt := assert.WrapTB(t)
	for _, x := range []*SWord{sw("-1"), sw("-1000000000000000000"), MinSWord} {
		out, err := WadLn(x)
		tt.MustAssert(err == ErrUndefined, "ln(%s)", signedBig(x))
		tt.MustAssert(out == nil)
	}
}

func TestWadExp(t *testing.T) {
	for _, tc := range []struct {
		x, out *SWord
	}{
		{sw("0"), sw("1000000000000000000")},
		{sw("10000000000000000"), sw("1010050167084168057")},
		{sw("100000000000000000"), sw("1105170918075647624")},
		{sw("1000000000000000000"), sw("2718281828459045235")},
		{sw("2000000000000000000"), sw("7389056098930650227")},
		{sw("5000000000000000000"), sw("148413159102576603421")},
		{sw("50000000000000000000"), sw("5184705528587072464148529318587763226117")},
		{sw("135305999368893231588"), sw("57896044618658097650144101621524338577433870140581303254786265309376407432913")},
		{sw("-1000000000000000000"), sw("367879441171442321")},
		{sw("-2718281828459045235"), sw("65988035845312537")},
		{sw("-3000000000000000000"), sw("49787068367863942")},
		{sw("-20000000000000000000"), sw("2061153622")},
		{sw("-42139678854452767550"), sw("0")},
	} {
		t.Run(fmt.Sprintf("exp(%s)=%s", signedBig(tc.x), tc.out.Dec()), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, err := WadExp(tc.x)
			tt.MustOKAll(err)
			tt.MustAssert(tc.out.Eq(out), "found %s", out.Dec())
		})
	}
}

func TestWadExpUnderflowsToZero(t *testing.T) {
	// Underflow is a value, not an error.
	tt := assert.WrapTB(t)
	for _, x := range []*SWord{sw("-42139678854452767551"), sw("-100000000000000000000"), MinSWord} {
		out, err := WadExp(x)
		tt.MustOKAll(err)
		tt.MustAssert(out.IsZero(), "exp(%s) = %s", signedBig(x), out.Dec())
	}
}

func TestWadExpOverflow(t *testing.T) {
	tt := assert.WrapTB(t)
	for _, x := range []*SWord{sw("135305999368893231589"), sw("135305999368893231590"), MaxSWord} {
		out, err := WadExp(x)
		tt.MustAssert(err == ErrOverflow, "exp(%s)", signedBig(x))
		tt.MustAssert(out == nil)
	}
}

func TestWadExpLnRoundTrip(t *testing.T) {
	// exp and ln are inverses up to fixed-point truncation: applying ln to
	// exp(x) must land within a few wad ulps of x for moderate inputs.
	tt := assert.WrapTB(t)
	for _, x := range []*SWord{
		sw("1000000000000000000"),
		sw("-1000000000000000000"),
		sw("31415926535897932384"),
		sw("123456789123456789"),
	} {
		e, err := WadExp(x)
		tt.MustOKAll(err)
		l, err := WadLn(e)
		tt.MustOKAll(err)

		diff := new(SWord).Sub(l, x)
		diff.Abs(diff)
		tt.MustAssert(diff.LtUint64(1000), "round trip of %s drifted to %s", signedBig(x), signedBig(l))
	}
}
