package theory

import (
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DurationValue is a note duration lasting 1/2^rank of a whole note, where
// rank is the value's inverted rank. American names are used.
type DurationValue uint8

const (
	Whole DurationValue = iota
	Half
	Quarter
	Eighth
	Sixteenth
	ThirtySecond
	SixtyFourth
	HundredTwentyEighth
)

var durationTable = [...]struct {
	fullName string
	staccato rune
}{
	Whole:               {"whole", 'w'},
	Half:                {"half", 'h'},
	Quarter:             {"quarter", 'q'},
	Eighth:              {"eighth", 'i'},
	Sixteenth:           {"sixteenth", 's'},
	ThirtySecond:        {"thirty-second", 't'},
	SixtyFourth:         {"sixty-fourth", 'x'},
	HundredTwentyEighth: {"hundred twenty-eighth", 'o'},
}

// DurationValues returns the catalog ordered from Whole to HundredTwentyEighth.
func DurationValues() []DurationValue {
	values := make([]DurationValue, len(durationTable))
	for i := range durationTable {
		values[i] = DurationValue(i)
	}
	return values
}

// FromInvertedRank returns the catalog entry lasting 1/2^rank of a whole note.
func FromInvertedRank(rank uint) (DurationValue, error) {
	if rank >= uint(len(durationTable)) {
		return 0, errors.Wrapf(ErrRankOutOfRange, "rank %d", rank)
	}
	return DurationValue(rank), nil
}

// ParseDurationValue looks a value up by full name ("eighth") or staccato
// symbol ("i"), ignoring case.
func ParseDurationValue(s string) (DurationValue, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, entry := range durationTable {
		if s == entry.fullName || s == string(entry.staccato) {
			return DurationValue(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownSymbol, "duration value %q", s)
}

// Valid reports whether d is one of the catalog constants.
func (d DurationValue) Valid() bool {
	return int(d) < len(durationTable)
}

// InvertedRank is the exponent k such that d lasts 1/2^k of a whole note.
// An EIGHTH has rank 3.
func (d DurationValue) InvertedRank() uint {
	return uint(d)
}

func (d DurationValue) FullName() string {
	if !d.Valid() {
		return ""
	}
	return durationTable[d].fullName
}

func (d DurationValue) StaccatoSymbol() rune {
	if !d.Valid() {
		return 0
	}
	return durationTable[d].staccato
}

// Staccato returns the single character shorthand of d.
func (d DurationValue) Staccato() string {
	if !d.Valid() {
		return ""
	}
	return string(durationTable[d].staccato)
}

func (d DurationValue) String() string {
	return "1/" + strconv.FormatUint(uint64(1)<<d.InvertedRank(), 10)
}

// ToTimeUnit returns how many times shortest fits into d. QUARTER in
// THIRTYSECOND time units is 8.
func (d DurationValue) ToTimeUnit(shortest DurationValue) (uint, error) {
	if !d.Valid() {
		return 0, errors.Wrapf(ErrRankOutOfRange, "duration value rank %d", d.InvertedRank())
	}
	if !shortest.Valid() {
		return 0, errors.Wrapf(ErrRankOutOfRange, "shortest duration rank %d", shortest.InvertedRank())
	}
	if d.InvertedRank() > shortest.InvertedRank() {
		return 0, errors.Wrapf(ErrShorterThanReference, "%s in %s time units", d, shortest)
	}
	return 1 << (shortest.InvertedRank() - d.InvertedRank()), nil
}

// FromTimeUnit converts a duration expressed in shortest time units back to
// a catalog value. timeUnitDuration must be a power of 2 no longer than a
// whole note.
func FromTimeUnit(timeUnitDuration uint, shortest DurationValue) (DurationValue, error) {
	if !isPowerOfTwo(uint64(timeUnitDuration)) {
		return 0, errors.Wrapf(ErrNotPowerOfTwo, "got %d", timeUnitDuration)
	}
	if !shortest.Valid() {
		return 0, errors.Wrapf(ErrRankOutOfRange, "shortest duration rank %d", shortest.InvertedRank())
	}
	exp := uint(bits.TrailingZeros64(uint64(timeUnitDuration)))
	if exp > shortest.InvertedRank() {
		return 0, errors.Wrapf(ErrRankOutOfRange,
			"%d %s time units is longer than a whole note", timeUnitDuration, shortest.FullName())
	}
	return FromInvertedRank(shortest.InvertedRank() - exp)
}

const maxSplitWholes = 1 << 16

// SplitIntoDurationValues decomposes a time unit duration into whole notes
// followed by one value per remaining set bit, longest first. The time units
// of the returned values always add up to timeUnitDuration. Durations longer
// than maxSplitWholes whole notes fail with ErrOverflow.
func SplitIntoDurationValues(timeUnitDuration uint, shortest DurationValue) ([]DurationValue, error) {
	wholeLen, err := Whole.ToTimeUnit(shortest)
	if err != nil {
		return nil, err
	}

	if timeUnitDuration/wholeLen > maxSplitWholes {
		return nil, errors.Wrapf(ErrOverflow, "%d %s time units split into more than %d whole notes", timeUnitDuration, shortest.FullName(), maxSplitWholes)
	}

	values := make([]DurationValue, 0, timeUnitDuration/wholeLen+uint(bits.OnesCount(timeUnitDuration%wholeLen)))
	for i := uint(0); i < timeUnitDuration/wholeLen; i++ {
		values = append(values, Whole)
	}
	timeUnitDuration %= wholeLen

	for timeUnitDuration > 0 {
		power := uint(PreviousOrCurrentPowerOfTwo(int64(timeUnitDuration)))
		value, err := FromTimeUnit(power, shortest)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
		timeUnitDuration -= power
	}
	return values, nil
}

// Sum returns the total length of values in shortest time units.
func Sum(values []DurationValue, shortest DurationValue) (uint, error) {
	var total uint
	for _, v := range values {
		n, err := v.ToTimeUnit(shortest)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// PreviousOrCurrentPowerOfTwo returns the largest power of two not greater
// than v, or 0 when v is not positive.
func PreviousOrCurrentPowerOfTwo(v int64) uint64 {
	if v <= 0 {
		return 0
	}
	return 1 << (bits.Len64(uint64(v)) - 1)
}

// PreviousOrCurrentPowerOfTwoFloat is the real valued form of
// PreviousOrCurrentPowerOfTwo. PreviousOrCurrentPowerOfTwoFloat(0.3) is 0.25.
func PreviousOrCurrentPowerOfTwoFloat(v float64) float64 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if math.IsInf(v, 1) {
		return v
	}
	_, exp := math.Frexp(v)
	return math.Ldexp(1, exp-1)
}

// IsPowerOfTwo reports whether v truncated to an integer is 1, 2, 4, 8...
func IsPowerOfTwo(v float64) bool {
	if v < 1 || math.IsNaN(v) || v >= math.MaxInt64 {
		return false
	}
	return isPowerOfTwo(uint64(v))
}

func isPowerOfTwo(v uint64) bool {
	return v != 0 && v&(v-1) == 0
}
