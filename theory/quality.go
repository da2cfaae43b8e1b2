package theory

import "github.com/pkg/errors"

// Quality describes how an interval deviates from its basic diatonic form.
// MajorMinorQuality and PerfectDimAugQuality are the two families.
type Quality interface {
	FullName() string
	Symbol() string
	SemitoneModifier() float64
	String() string
}

type qualityEntry struct {
	fullName string
	symbol   string
	modifier float64
}

// MajorMinorQuality is the Major/Minor interval quality family.
type MajorMinorQuality uint8

const (
	Major MajorMinorQuality = iota
	Minor
)

// The ±0.5 modifiers are provisional and not a verified semitone offset.
var majorMinorTable = [...]qualityEntry{
	Major: {"Major", "", 0.5},
	Minor: {"Minor", "m", -0.5},
}

func (q MajorMinorQuality) Valid() bool {
	return int(q) < len(majorMinorTable)
}

func (q MajorMinorQuality) entry() qualityEntry {
	if !q.Valid() {
		return qualityEntry{}
	}
	return majorMinorTable[q]
}

func (q MajorMinorQuality) FullName() string          { return q.entry().fullName }
func (q MajorMinorQuality) Symbol() string            { return q.entry().symbol }
func (q MajorMinorQuality) SemitoneModifier() float64 { return q.entry().modifier }
func (q MajorMinorQuality) String() string            { return q.Symbol() }

// MajorMinorQualities returns Major and Minor.
func MajorMinorQualities() []MajorMinorQuality {
	return []MajorMinorQuality{Major, Minor}
}

func MajorMinorQualityFromSymbol(symbol string) (MajorMinorQuality, error) {
	for i, entry := range majorMinorTable {
		if entry.symbol == symbol {
			return MajorMinorQuality(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownSymbol, "major/minor quality %q", symbol)
}

// PerfectDimAugQuality is the Perfect/Diminished/Augmented interval quality
// family.
type PerfectDimAugQuality uint8

const (
	Perfect PerfectDimAugQuality = iota
	Diminished
	Augmented
)

var perfectDimAugTable = [...]qualityEntry{
	Perfect:    {"Perfect", "", 0},
	Diminished: {"Diminished", "dim", -1},
	Augmented:  {"Augmented", "aug", 1},
}

func (q PerfectDimAugQuality) Valid() bool {
	return int(q) < len(perfectDimAugTable)
}

func (q PerfectDimAugQuality) entry() qualityEntry {
	if !q.Valid() {
		return qualityEntry{}
	}
	return perfectDimAugTable[q]
}

func (q PerfectDimAugQuality) FullName() string          { return q.entry().fullName }
func (q PerfectDimAugQuality) Symbol() string            { return q.entry().symbol }
func (q PerfectDimAugQuality) SemitoneModifier() float64 { return q.entry().modifier }
func (q PerfectDimAugQuality) String() string            { return q.Symbol() }

func PerfectDimAugQualities() []PerfectDimAugQuality {
	return []PerfectDimAugQuality{Perfect, Diminished, Augmented}
}

func PerfectDimAugQualityFromSymbol(symbol string) (PerfectDimAugQuality, error) {
	for i, entry := range perfectDimAugTable {
		if entry.symbol == symbol {
			return PerfectDimAugQuality(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownSymbol, "perfect/dim/aug quality %q", symbol)
}

var (
	_ Quality = Major
	_ Quality = Perfect
)
