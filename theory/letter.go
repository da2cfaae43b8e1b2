package theory

import "github.com/pkg/errors"

// NoteLetter is one of the seven unaltered notes of the diatonic scale.
type NoteLetter uint8

const (
	C NoteLetter = iota
	D
	E
	F
	G
	A
	B
)

var letterTable = [...]struct {
	letter rune
	basic  uint
}{
	C: {'C', 0},
	D: {'D', 2},
	E: {'E', 4},
	F: {'F', 5},
	G: {'G', 7},
	A: {'A', 9},
	B: {'B', 11},
}

var letterIndex = map[rune]NoteLetter{
	'C': C, 'D': D, 'E': E, 'F': F, 'G': G, 'A': A, 'B': B,
}

func NoteLetters() []NoteLetter {
	return []NoteLetter{C, D, E, F, G, A, B}
}

// FromLetter returns the note letter written as r. Matching is exact, so
// lower case letters are rejected.
func FromLetter(r rune) (NoteLetter, error) {
	l, ok := letterIndex[r]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownNoteLetter, "%q", r)
	}
	return l, nil
}

func (l NoteLetter) Valid() bool {
	return int(l) < len(letterTable)
}

// Letter returns 0 for a letter outside C..B.
func (l NoteLetter) Letter() rune {
	if !l.Valid() {
		return 0
	}
	return letterTable[l].letter
}

// BasicSemitoneValue is the distance in semitones above C of the letter
// without any pitch modifier. F is 5 semitones above C.
func (l NoteLetter) BasicSemitoneValue() uint {
	if !l.Valid() {
		return 0
	}
	return letterTable[l].basic
}

func (l NoteLetter) String() string {
	if !l.Valid() {
		return ""
	}
	return string(l.Letter())
}
