package math256

import (
	"github.com/holiman/uint256"
)

// Wad is the fixed-point unit: values passed to the Wad* functions are
// scaled by 1e18.
var Wad = uint256.NewInt(1_000_000_000_000_000_000)

var (
	MaxWord  = uint256.MustFromHex("0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	MinSWord = uint256.MustFromHex("0x8000000000000000000000000000000000000000000000000000000000000000")
	MaxSWord = uint256.MustFromHex("0x7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
)

var (
	oneWord   = uint256.NewInt(1)
	twoWord   = uint256.NewInt(2)
	threeWord = uint256.NewInt(3)

	e6  = uint256.NewInt(1_000_000)
	e12 = uint256.NewInt(1_000_000_000_000)
	e36 = w("1000000000000000000000000000000000000")
)

// pow10 holds 10^0 .. 10^77, every power of ten representable in a Word.
var pow10 = func() [78]*Word {
	var t [78]*Word
	t[0] = uint256.NewInt(1)
	ten := uint256.NewInt(10)
	for i := 1; i < len(t); i++ {
		t[i] = new(Word).Mul(t[i-1], ten)
	}
	return t
}()

// WadLn coefficients. The rational approximation and its scaling constants
// follow Remco Bloemen's scheme; they are fixed-point in a 2^96 base and are
// copied verbatim from the reference, not derived.
var (
	lnP0 = sw("3273285459638523848632254066296")
	lnP1 = sw("24828157081833163892658089445524")
	lnP2 = sw("43456485725739037958740375743393")
	lnP3 = sw("-11111509109440967052023855526967")
	lnP4 = sw("-45023709667254063763336534515857")
	lnP5 = sw("-14706773417378608786704636184526")
	lnP6 = lsh96(sw("-795164235651350426258249787498"))

	lnQ0 = sw("5573035233440673466300451813936")
	lnQ1 = sw("71694874799317883764090561454958")
	lnQ2 = sw("283447036172924575727196451306956")
	lnQ3 = sw("401686690394027663651624208769553")
	lnQ4 = sw("204048457590392012362485061816622")
	lnQ5 = sw("31853899698501571402653359427138")
	lnQ6 = sw("909429971244387300277376558375")

	// Applied after the division: scale factor, the k*ln(2) contribution,
	// and the 2^96 -> 1e18 base change, all folded so a single arithmetic
	// shift by 174 finishes the job.
	lnScale = sw("1677202110996718588342820967067443963516166")
	lnKTerm = sw("16597577552685614221487285958193947469193820559219878177908093499208371")
	lnBias  = sw("600920179829731861736702779321621459595472258049074101567377883020018308")
)

// WadExp constants, same provenance and 2^96 base as the WadLn set.
var (
	// Inputs at or below expMinInput underflow to zero; inputs at or above
	// expMaxInput no longer fit the signed range once rescaled.
	expMinInput = sw("-42139678854452767551")
	expMaxInput = sw("135305999368893231589")

	// ln(2) * 2^96, and 5^18 for the 1e18 -> 2^96 base change
	// (1e18/2^96 == 5^18/2^78).
	ln2x96    = sw("54916777467707473351141471128")
	pow5to18  = uint256.NewInt(3_814_697_265_625)
	roundHalf = new(SWord).Lsh(oneWord, 95)

	expY0 = sw("1346386616545796478920950773328")
	expY1 = sw("57155421227552351082224309758442")
	expP0 = sw("-94201549194550492254356042504812")
	expP1 = sw("28719021644029726153956944680412240")
	expP2 = lsh96(sw("4385272521454847904659076985693276"))

	expQ0 = sw("-2855989394907223263936484059900")
	expQ1 = sw("50020603652535783019961831881945")
	expQ2 = sw("-533845033583426703283633433725380")
	expQ3 = sw("3604857256930695427073651918091429")
	expQ4 = sw("-14423608567350463180887372962807573")
	expQ5 = sw("26449188498355588339934803723976023")

	expScale = sw("3822833074963236453042738258902158003155416615667")
)

// Cube-root rescale thresholds and Newton seed factors (1260/1000 ~= cbrt(2)).
var (
	cbrtThreshLo = new(Word).Div(MaxWord, e36)
	cbrtThreshHi = new(Word).Mul(cbrtThreshLo, Wad)

	cbrtSeedNum = [3]*Word{uint256.NewInt(1), uint256.NewInt(1260), uint256.NewInt(1_587_600)}
	cbrtSeedDen = [3]*Word{uint256.NewInt(1), uint256.NewInt(1000), uint256.NewInt(1_000_000)}
)

func lsh96(v *SWord) *SWord { return v.Lsh(v, 96) }
