package theory

import "github.com/pkg/errors"

type PitchModifier uint8

const (
	None PitchModifier = iota
	Sharp
	Flat
)

var pitchModifierTable = [...]struct {
	symbol   string
	modifier int
}{
	None:  {"", 0},
	Sharp: {"#", 1},
	Flat:  {"b", -1},
}

func PitchModifiers() []PitchModifier {
	return []PitchModifier{None, Sharp, Flat}
}

// PitchModifierFromSymbol maps "", "#" and "b" to None, Sharp and Flat.
func PitchModifierFromSymbol(symbol string) (PitchModifier, error) {
	for i, entry := range pitchModifierTable {
		if entry.symbol == symbol {
			return PitchModifier(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownSymbol, "pitch modifier %q", symbol)
}

func (m PitchModifier) Valid() bool {
	return int(m) < len(pitchModifierTable)
}

func (m PitchModifier) Symbol() string {
	if !m.Valid() {
		return ""
	}
	return pitchModifierTable[m].symbol
}

func (m PitchModifier) SemitoneModifier() int {
	if !m.Valid() {
		return 0
	}
	return pitchModifierTable[m].modifier
}

func (m PitchModifier) String() string { return m.Symbol() }
