package main

import (
	"os"
	"os/exec"
	"runtime"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dimfu/rhythm/theory"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

func ValidTempo(input int64) bool {
	return input > MIN_TEMPO && input < MAX_TEMPO
}

// ValidTimeSig parses a signature the metronome can count: its denominator
// has to name a duration value.
func ValidTimeSig(input string) (theory.TimeSignature, error) {
	ts, err := theory.ParseTimeSignature(input)
	if err != nil {
		return theory.TimeSignature{}, err
	}
	if _, err := ts.BeatValue(); err != nil {
		return theory.TimeSignature{}, errors.Wrapf(err, "time signature %s has no beat value", ts)
	}
	return ts, nil
}

// ParseNoteName reads names such as "C", "f#" or "Bb".
func ParseNoteName(input string) (theory.NoteLetter, theory.PitchModifier, error) {
	input = strings.TrimSpace(input)
	r, size := utf8.DecodeRuneInString(input)
	if size == 0 {
		return 0, 0, errors.New("empty note name")
	}
	if r == utf8.RuneError && size == 1 {
		return 0, 0, errors.Errorf("note name %q is not valid UTF-8", input)
	}
	letter, err := theory.FromLetter(unicode.ToUpper(r))
	if err != nil {
		return 0, 0, err
	}
	modifier, err := theory.PitchModifierFromSymbol(input[size:])
	if err != nil {
		return 0, 0, err
	}
	return letter, modifier, nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func runCmd(name string, arg ...string) error {
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	return cmd.Run()
}

func ClearTerminal() error {
	switch runtime.GOOS {
	case "windows":
		return runCmd("cmd", "/c", "cls")
	default:
		return runCmd("clear")
	}
}

func configPath() (string, error) {
	if p := os.Getenv("RHYTHM_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return home + string(os.PathSeparator) + ".rhythm.json", nil
}
