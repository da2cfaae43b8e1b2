package main

import (
	"testing"

	"github.com/dimfu/rhythm/theory"
	"github.com/eiannone/keyboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarLine(t *testing.T) {
	s, err := NewSchedule(Meter{Signature: theory.Standard44, Subdivision: theory.Eighth, Tempo: 100})
	require.NoError(t, err)

	assert.Equal(t, "|*.o.o.o.|", BarLine(s, 0))
	assert.Equal(t, "|X.o*o.o.|", BarLine(s, 3))
	assert.Equal(t, "|X.o.o.o*|", BarLine(s, 15))
}

func TestBarLineGroups(t *testing.T) {
	s, err := NewSchedule(Meter{
		Signature:   theory.TimeSignature{Numerator: 7, Denominator: 8},
		Subdivision: theory.Eighth,
		Tempo:       180,
		Groups:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, "|X*ooxox|", BarLine(s, 1))
}

func TestHandleKey(t *testing.T) {
	m := NewMetronome(newTestSchedule(t), 0)

	assert.False(t, handleKey(keyboard.KeyEvent{Key: keyboard.KeySpace}, m))
	assert.True(t, m.Paused())
	assert.False(t, handleKey(keyboard.KeyEvent{Key: keyboard.KeySpace}, m))
	assert.False(t, m.Paused())

	assert.False(t, handleKey(keyboard.KeyEvent{Rune: 'a'}, m))
	assert.True(t, handleKey(keyboard.KeyEvent{Rune: 'q'}, m))
	assert.True(t, handleKey(keyboard.KeyEvent{Key: keyboard.KeyEsc}, m))
	assert.True(t, handleKey(keyboard.KeyEvent{Key: keyboard.KeyCtrlC}, m))
}
