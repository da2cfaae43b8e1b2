package theory

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// TimeSignature is a bar length written as a fraction of a whole note,
// such as 4/4 or 6/8.
type TimeSignature struct {
	Numerator   uint
	Denominator uint
}

var Standard44 = TimeSignature{Numerator: 4, Denominator: 4}

func NewTimeSignature(numerator, denominator uint) (TimeSignature, error) {
	ts := TimeSignature{Numerator: numerator, Denominator: denominator}
	if err := ts.validate(); err != nil {
		return TimeSignature{}, err
	}
	return ts, nil
}

// ParseTimeSignature reads the "numerator/denominator" form.
func ParseTimeSignature(input string) (TimeSignature, error) {
	parts := strings.Split(strings.TrimSpace(input), "/")
	if len(parts) != 2 {
		return TimeSignature{}, errors.Wrapf(ErrInvalidTimeSignature, "%q", input)
	}

	numerator, err1 := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 32)
	denominator, err2 := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 32)
	if err1 != nil || err2 != nil {
		return TimeSignature{}, errors.Wrapf(ErrInvalidTimeSignature, "invalid number in %q", input)
	}
	return NewTimeSignature(uint(numerator), uint(denominator))
}

func (ts TimeSignature) validate() error {
	if ts.Numerator == 0 || ts.Denominator == 0 {
		return errors.Wrapf(ErrZeroTimeSignature, "got %d/%d", ts.Numerator, ts.Denominator)
	}
	return nil
}

// GetNumTimeUnitsInABar returns how many shortest durations fill one bar.
// A 3/4 bar holds 12 sixteenths. The result must be a whole number.
func (ts TimeSignature) GetNumTimeUnitsInABar(shortest DurationValue) (uint, error) {
	if err := ts.validate(); err != nil {
		return 0, err
	}
	wholeLen, err := Whole.ToTimeUnit(shortest)
	if err != nil {
		return 0, err
	}
	// numerator*wholeLen can exceed a uint even when the quotient fits
	hi, lo := bits.Mul64(uint64(ts.Numerator), uint64(wholeLen))
	den := uint64(ts.Denominator)
	if bits.Rem64(hi, lo, den) != 0 {
		return 0, errors.Wrapf(ErrUnevenBar, "%s in %s time units", ts, shortest.FullName())
	}
	if hi >= den {
		return 0, errors.Wrapf(ErrOverflow, "%s in %s time units", ts, shortest.FullName())
	}
	units, _ := bits.Div64(hi, lo, den)
	if units > uint64(^uint(0)) {
		return 0, errors.Wrapf(ErrOverflow, "%s in %s time units", ts, shortest.FullName())
	}
	return uint(units), nil
}

// BeatValue returns the duration value named by the denominator; 8 is an
// eighth.
func (ts TimeSignature) BeatValue() (DurationValue, error) {
	if err := ts.validate(); err != nil {
		return 0, err
	}
	if !isPowerOfTwo(uint64(ts.Denominator)) {
		return 0, errors.Wrapf(ErrNotPowerOfTwo, "denominator of %s", ts)
	}
	return FromInvertedRank(uint(bits.TrailingZeros64(uint64(ts.Denominator))))
}

func (ts TimeSignature) String() string {
	return fmt.Sprintf("%d/%d", ts.Numerator, ts.Denominator)
}
