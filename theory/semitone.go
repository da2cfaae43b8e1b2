package theory

// NumSemitonesInOctave is the size of the chromatic scale.
const NumSemitonesInOctave = 12

// NormalizedDistance brings an arbitrary semitone distance to C back into
// 0..11, removing octaves and forcing a positive interval. -1 becomes 11.
func NormalizedDistance(semitoneDistanceToC int) uint {
	n := semitoneDistanceToC % NumSemitonesInOctave
	if n < 0 {
		n += NumSemitonesInOctave
	}
	return uint(n)
}

// PitchClass returns the semitone distance above C of a letter carrying a
// modifier, so Cb is 11 and B# is 0.
func PitchClass(l NoteLetter, m PitchModifier) uint {
	return NormalizedDistance(int(l.BasicSemitoneValue()) + m.SemitoneModifier())
}
