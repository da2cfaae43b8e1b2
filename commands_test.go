package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dimfu/rhythm/theory"
	"github.com/faiface/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(args ...string) (string, error) {
	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestSplitCommand(t *testing.T) {
	out, err := run("split", "12", "--unit", "sixteenth")
	require.NoError(t, err)
	assert.Contains(t, out, "h q\n")
	assert.Contains(t, out, "half")
	assert.Contains(t, out, "1/4")

	out, err = run("split", "42", "--unit", "s")
	require.NoError(t, err)
	assert.Contains(t, out, "w w h i\n")

	_, err = run("split", "3", "--unit", "minim")
	assert.ErrorIs(t, err, theory.ErrUnknownSymbol)
	_, err = run("split", "-3")
	assert.Error(t, err)
}

func TestBarCommand(t *testing.T) {
	out, err := run("bar", "7/8", "--unit", "thirty-second")
	require.NoError(t, err)
	assert.Equal(t, "7/8\t28\n", out)

	_, err = run("bar", "7/8", "--unit", "quarter")
	assert.ErrorIs(t, err, theory.ErrUnevenBar)

	out, err = run("bar", "--unit", "quarter")
	require.NoError(t, err)
	assert.Contains(t, out, "QUARTER")
	assert.Regexp(t, `3/4\s+3\n`, out)
	assert.Regexp(t, `7/8\s+-\n`, out)
}

func TestNoteCommand(t *testing.T) {
	out, err := run("note", "Bb")
	require.NoError(t, err)
	assert.Contains(t, out, "letter B (11)")
	assert.Contains(t, out, "pitch class 10")

	_, err = run("note", "H")
	assert.ErrorIs(t, err, theory.ErrUnknownNoteLetter)
}

func TestQualityCommand(t *testing.T) {
	out, err := run("quality", "dim")
	require.NoError(t, err)
	assert.Contains(t, out, "Diminished")
	assert.NotContains(t, out, "Major")

	out, err = run("quality", "")
	require.NoError(t, err)
	assert.Contains(t, out, "Major")
	assert.Contains(t, out, "Perfect")

	out, err = run("quality")
	require.NoError(t, err)
	for _, name := range []string{"Major", "Minor", "Perfect", "Diminished", "Augmented"} {
		assert.Contains(t, out, name)
	}

	_, err = run("quality", "zz")
	assert.ErrorIs(t, err, theory.ErrUnknownSymbol)
}

func TestPresetCommands(t *testing.T) {
	withPresetFile(t)

	out, err := run("preset", "add", "--key", "waltz", "--tempo", "90", "--timesig", "3/4")
	require.NoError(t, err)
	assert.Contains(t, out, "saved preset waltz")

	_, err = run("preset", "add", "--key", "waltz", "--timesig", "3/4")
	assert.Error(t, err)

	out, err = run("preset", "ls")
	require.NoError(t, err)
	assert.Regexp(t, `waltz\s+90\s+3/4`, out)

	out, err = run("preset", "rm", "waltz")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted preset waltz")

	_, err = run("preset", "rm", "waltz")
	assert.Error(t, err)
}

func TestRenderCommand(t *testing.T) {
	withPresetFile(t)
	_, err := run("preset", "add", "--key", "waltz", "--tempo", "90", "--timesig", "3/4")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.wav")
	out, err := run("render", "--preset", "waltz", "--tempo", "120", "--bars", "2", "--sample-rate", "8000", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 2 bars of 3/4 at 120 bpm")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	streamer, _, err := wav.Decode(f)
	require.NoError(t, err)
	// 6 quarter beats of half a second
	assert.Equal(t, 6*4000, streamer.Len())

	_, err = run("render", "--bars", "1")
	assert.Error(t, err)
	_, err = run("render", "--preset", "missing", "--out", path)
	assert.Error(t, err)
	_, err = run("render", "--timesig", "3/4", "--sub", "whole", "--out", path)
	assert.ErrorIs(t, err, theory.ErrShorterThanReference)
}

func TestRenderRejectsSampleRate(t *testing.T) {
	withPresetFile(t)
	path := filepath.Join(t.TempDir(), "out.wav")

	for _, rate := range []string{"0", "-8000"} {
		_, err := run("render", "--sample-rate", rate, "--out", path)
		require.Error(t, err, rate)
		assert.Contains(t, err.Error(), "--sample-rate")
	}
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestRenderMidiOut(t *testing.T) {
	withPresetFile(t)
	dir := t.TempDir()
	midiPath := filepath.Join(dir, "out.mid")

	_, err := run("render", "--timesig", "3/4", "--bars", "2", "--sample-rate", "8000",
		"--out", filepath.Join(dir, "out.wav"), "--midi-out", midiPath)
	require.NoError(t, err)

	data, err := os.ReadFile(midiPath)
	require.NoError(t, err)
	notes := readMidiNotes(t, data)
	assert.Len(t, notes, 6)
}
