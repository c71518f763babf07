/*
Package math256 provides overflow-safe utility arithmetic over 256-bit words:
averaging, ceiling division, a full-precision multiply-then-divide with a
512-bit intermediate, integer logarithms in bases 2, 10 and 256, a 1e18
fixed-point ("wad") natural logarithm and exponential, and integer and
fixed-point cube roots.

Word and SWord are aliases of uint256.Int; SWord values are interpreted as
two's complement. Every function is pure: results depend only on the
arguments, arguments are never mutated, and identical inputs always produce
identical outputs, so everything here is safe for concurrent use.

Fallible operations return one of three sentinel errors:

	ErrDivisionByZero
	ErrOverflow
	ErrUndefined

The fixed-point routines reproduce their reference outputs bit for bit; the
polynomial coefficients in consts.go are part of that contract and must not
be re-derived.

Simple example:

	x := uint256.NewInt(9_000_000_000_000_000_000) // 9.0 in wad
	fmt.Println(math256.WadCbrt(x))
	// Output: 2080083823051904114
*/
package math256
