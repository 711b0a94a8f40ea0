package bezier

// wiggleRoom is the tolerance used by [WiggleInterval] to decide whether a
// value near the unit interval is a rounding artifact. It amounts to a few
// hundred ULPs at 1.0, which covers the error accumulated by the arithmetic
// in curve intersection while staying far below any meaningful difference
// between two curve parameters.
const wiggleRoom = 0x1p-44

// RelativeEps is the default relative tolerance for comparing values computed
// by curve algorithms, as used by [Vec2.Close].
const RelativeEps = 0x1p-40

// UnitInterval is the canonical domain [0, 1] of a curve parameter.
var UnitInterval = Interval{0, 1}

// Interval is a closed interval [Start, End] of the real line.
//
// Conventionally Start ≤ End. The zero value and any other interval with
// Start > End are legal and contain nothing.
type Interval struct {
	Start float64
	End   float64
}

// Contains reports whether Start ≤ value ≤ End, exactly.
//
// There is no tolerance: a value one ULP outside the interval is not
// contained. Use [WiggleInterval] first when the value may carry rounding
// error.
func (iv Interval) Contains(value float64) bool {
	return iv.Start <= value && value <= iv.End
}

// Length returns End − Start. It is negative for reversed intervals.
func (iv Interval) Length() float64 {
	return iv.End - iv.Start
}

// IsEmpty reports whether the interval contains no values.
func (iv Interval) IsEmpty() bool {
	return iv.Start > iv.End
}

// WiggleInterval maps a curve parameter that should lie in [0, 1] onto that
// interval, correcting for floating-point rounding error near the boundaries.
//
// Values within the tolerance of 0 or 1 snap to exactly 0.0 or 1.0; values
// already inside [0, 1] are returned unchanged. In both cases ok is true, and
// applying WiggleInterval to the result again returns it unchanged.
//
// A value further outside [0, 1] than the tolerance cannot be explained by
// rounding error, and ok is false. The returned float64 is meaningless then;
// callers should discard the candidate parameter rather than treat this as a
// hard error.
func WiggleInterval(value float64) (_ float64, ok bool) {
	switch {
	case -wiggleRoom < value && value < wiggleRoom:
		return 0.0, true
	case wiggleRoom <= value && value <= 1.0-wiggleRoom:
		return value, true
	case 1.0-wiggleRoom < value && value < 1.0+wiggleRoom:
		return 1.0, true
	default:
		return 0, false
	}
}
