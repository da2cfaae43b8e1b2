package theory_test

import (
	"math"
	"testing"

	. "github.com/dimfu/rhythm/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationCatalog(t *testing.T) {
	values := DurationValues()
	require.Len(t, values, 8)
	for i, v := range values {
		assert.Equal(t, uint(i), v.InvertedRank())
	}
	assert.Equal(t, Whole, values[0])
	assert.Equal(t, HundredTwentyEighth, values[7])

	assert.Equal(t, "1/1", Whole.String())
	assert.Equal(t, "1/8", Eighth.String())
	assert.Equal(t, "1/128", HundredTwentyEighth.String())
	assert.Equal(t, "i", Eighth.Staccato())
	assert.Equal(t, 'o', HundredTwentyEighth.StaccatoSymbol())
	assert.Equal(t, "thirty-second", ThirtySecond.FullName())
	assert.False(t, DurationValue(8).Valid())
}

func TestToTimeUnitIdentity(t *testing.T) {
	for _, d := range DurationValues() {
		n, err := d.ToTimeUnit(d)
		require.NoError(t, err)
		assert.Equal(t, uint(1), n, d.FullName())
	}
}

func TestToTimeUnitPowers(t *testing.T) {
	for _, d1 := range DurationValues() {
		for _, d2 := range DurationValues() {
			n, err := d1.ToTimeUnit(d2)
			if d1.InvertedRank() > d2.InvertedRank() {
				assert.ErrorIs(t, err, ErrShorterThanReference)
				continue
			}
			require.NoError(t, err)
			assert.Equal(t, uint(1)<<(d2.InvertedRank()-d1.InvertedRank()), n)
			assert.True(t, IsPowerOfTwo(float64(n)))
		}
	}

	n, err := Quarter.ToTimeUnit(ThirtySecond)
	require.NoError(t, err)
	assert.Equal(t, uint(8), n)
}

func TestToTimeUnitShorterThanReference(t *testing.T) {
	_, err := Quarter.ToTimeUnit(Whole)
	assert.ErrorIs(t, err, ErrShorterThanReference)

	_, err = Quarter.ToTimeUnit(Half)
	assert.ErrorIs(t, err, ErrShorterThanReference)

	// The opposite direction is fine: a half lasts two quarters.
	n, err := Half.ToTimeUnit(Quarter)
	require.NoError(t, err)
	assert.Equal(t, uint(2), n)

	_, err = Quarter.ToTimeUnit(DurationValue(9))
	assert.ErrorIs(t, err, ErrRankOutOfRange)
}

func TestFromTimeUnitRoundTrip(t *testing.T) {
	for _, shortest := range DurationValues() {
		for _, d := range DurationValues() {
			if d.InvertedRank() > shortest.InvertedRank() {
				continue
			}
			n, err := d.ToTimeUnit(shortest)
			require.NoError(t, err)
			got, err := FromTimeUnit(n, shortest)
			require.NoError(t, err)
			assert.Equal(t, d, got)
		}
	}
}

func TestFromTimeUnitErrors(t *testing.T) {
	_, err := FromTimeUnit(3, Quarter)
	assert.ErrorIs(t, err, ErrNotPowerOfTwo)

	_, err = FromTimeUnit(0, Quarter)
	assert.ErrorIs(t, err, ErrNotPowerOfTwo)

	// 8 quarters is longer than a whole note.
	_, err = FromTimeUnit(8, Quarter)
	assert.ErrorIs(t, err, ErrRankOutOfRange)

	v, err := FromTimeUnit(4, Quarter)
	require.NoError(t, err)
	assert.Equal(t, Whole, v)
}

func TestSplitIntoDurationValues(t *testing.T) {
	tests := []struct {
		units    uint
		shortest DurationValue
		want     []DurationValue
	}{
		{12, Sixteenth, []DurationValue{Half, Quarter}},
		{16, Sixteenth, []DurationValue{Whole}},
		{1, Sixteenth, []DurationValue{Sixteenth}},
		{15, Sixteenth, []DurationValue{Half, Quarter, Eighth, Sixteenth}},
		{37, Sixteenth, []DurationValue{Whole, Whole, Quarter, Sixteenth}},
		{7, Eighth, []DurationValue{Half, Quarter, Eighth}},
		{3, Whole, []DurationValue{Whole, Whole, Whole}},
		{0, Quarter, []DurationValue{}},
	}

	for _, tt := range tests {
		got, err := SplitIntoDurationValues(tt.units, tt.shortest)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%d %s", tt.units, tt.shortest.FullName())
	}
}

func TestSplitIntoDurationValuesSums(t *testing.T) {
	for _, shortest := range DurationValues() {
		for units := uint(0); units < 300; units++ {
			values, err := SplitIntoDurationValues(units, shortest)
			require.NoError(t, err)
			sum, err := Sum(values, shortest)
			require.NoError(t, err)
			assert.Equal(t, units, sum)
		}
	}
}

func TestSplitIntoDurationValuesInvalidShortest(t *testing.T) {
	_, err := SplitIntoDurationValues(4, DurationValue(12))
	assert.ErrorIs(t, err, ErrRankOutOfRange)
}

func TestSplitIntoDurationValuesHuge(t *testing.T) {
	_, err := SplitIntoDurationValues(math.MaxUint, HundredTwentyEighth)
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = SplitIntoDurationValues(math.MaxUint, Whole)
	assert.ErrorIs(t, err, ErrOverflow)

	values, err := SplitIntoDurationValues(1<<16, Whole)
	require.NoError(t, err)
	assert.Len(t, values, 1<<16)
}

func TestPreviousOrCurrentPowerOfTwo(t *testing.T) {
	assert.Equal(t, uint64(0), PreviousOrCurrentPowerOfTwo(0))
	assert.Equal(t, uint64(0), PreviousOrCurrentPowerOfTwo(-7))
	assert.Equal(t, uint64(1), PreviousOrCurrentPowerOfTwo(1))
	assert.Equal(t, uint64(4), PreviousOrCurrentPowerOfTwo(5))
	assert.Equal(t, uint64(8), PreviousOrCurrentPowerOfTwo(8))
	assert.Equal(t, uint64(64), PreviousOrCurrentPowerOfTwo(127))

	assert.Equal(t, 0.0, PreviousOrCurrentPowerOfTwoFloat(0))
	assert.Equal(t, 0.0, PreviousOrCurrentPowerOfTwoFloat(-2.5))
	assert.Equal(t, 4.0, PreviousOrCurrentPowerOfTwoFloat(5.9))
	assert.Equal(t, 8.0, PreviousOrCurrentPowerOfTwoFloat(8))
	assert.Equal(t, 0.25, PreviousOrCurrentPowerOfTwoFloat(0.3))
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, v := range []float64{1, 2, 4, 8, 1024, 2.9, 8.5} {
		assert.True(t, IsPowerOfTwo(v), "%v", v)
	}
	for _, v := range []float64{0, -1, -4, 3, 6, 0.5, 12} {
		assert.False(t, IsPowerOfTwo(v), "%v", v)
	}
}

func TestParseDurationValue(t *testing.T) {
	for _, d := range DurationValues() {
		got, err := ParseDurationValue(d.FullName())
		require.NoError(t, err)
		assert.Equal(t, d, got)

		got, err = ParseDurationValue(d.Staccato())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}

	got, err := ParseDurationValue(" Sixteenth ")
	require.NoError(t, err)
	assert.Equal(t, Sixteenth, got)

	_, err = ParseDurationValue("crotchet")
	assert.ErrorIs(t, err, ErrUnknownSymbol)
}

func TestFromInvertedRank(t *testing.T) {
	v, err := FromInvertedRank(5)
	require.NoError(t, err)
	assert.Equal(t, ThirtySecond, v)

	_, err = FromInvertedRank(8)
	assert.ErrorIs(t, err, ErrRankOutOfRange)
}
