package main

import (
	"fmt"
	"io"

	"github.com/dimfu/rhythm/theory"
	"github.com/gomidi/midi/midimessage/channel"
	"github.com/gomidi/midi/midimessage/meta"
	"github.com/gomidi/midi/smf"
	"github.com/gomidi/midi/smf/smfwriter"
)

// General MIDI percussion keys.
const (
	hiWoodBlock  = 76
	lowWoodBlock = 77
)

const ticksPerQuarter = smf.MetricTicks(960)

var midiClickNotes = [levelCount]struct {
	key      uint8
	velocity uint8
}{
	LevelDownbeat:    {hiWoodBlock, 120},
	LevelGroup:       {hiWoodBlock, 90},
	LevelBeat:        {lowWoodBlock, 100},
	LevelSubdivision: {lowWoodBlock, 60},
}

// MidiClicker records every tick as a note on the percussion channel of a
// single track Standard MIDI File. Notes sound for half a tick.
type MidiClicker struct {
	wr      smf.Writer
	ch      channel.Channel
	delta   uint32 // MIDI ticks per metronome tick
	pending uint32
	key     uint8
	running bool
	closed  bool
}

// NewMidiClicker writes the tempo and time signature of s to dest. The file
// is only complete after Close.
func NewMidiClicker(dest io.Writer, s *Schedule) (*MidiClicker, error) {
	if s.Signature.Numerator > 255 {
		return nil, fmt.Errorf("time signature %s does not fit a MIDI file", s.Signature)
	}
	wholeUnits, err := theory.Whole.ToTimeUnit(s.Subdivision)
	if err != nil {
		return nil, err
	}
	// 4*960 splits evenly down to a hundred twenty-eighth
	delta := 4 * ticksPerQuarter.Ticks4th() / uint32(wholeUnits)

	wr := smfwriter.New(dest, smfwriter.TimeFormat(ticksPerQuarter))
	// Tempo counts the beat of the signature, MIDI counts quarters.
	quarterBPM := float64(s.Tempo) * 4 / float64(s.Signature.Denominator)
	if err := wr.Write(meta.FractionalBPM(quarterBPM)); err != nil {
		return nil, err
	}
	ts := meta.TimeSig{
		Numerator:                uint8(s.Signature.Numerator),
		Denominator:              uint8(s.Signature.Denominator),
		ClocksPerClick:           uint8(96 / s.Signature.Denominator),
		DemiSemiQuaverPerQuarter: 8,
	}
	if err := wr.Write(ts); err != nil {
		return nil, err
	}
	return &MidiClicker{wr: wr, ch: channel.Channel(9), delta: delta}, nil
}

func (c *MidiClicker) Tick(_ uint, level Level) error {
	if err := c.stop(); err != nil {
		return err
	}
	note := midiClickNotes[level]
	c.wr.SetDelta(c.pending)
	if err := c.wr.Write(c.ch.NoteOn(note.key, note.velocity)); err != nil {
		return err
	}
	c.key, c.running, c.pending = note.key, true, c.delta
	return nil
}

func (c *MidiClicker) stop() error {
	if !c.running {
		return nil
	}
	gate := c.delta / 2
	c.wr.SetDelta(gate)
	if err := c.wr.Write(c.ch.NoteOff(c.key)); err != nil {
		return err
	}
	c.running, c.pending = false, c.delta-gate
	return nil
}

// Close ends the last note and writes the track.
func (c *MidiClicker) Close() error {
	if c.closed {
		return nil
	}
	if err := c.stop(); err != nil {
		return err
	}
	c.closed = true
	return c.wr.Write(meta.EndOfTrack)
}

// RenderMidi records bars bars of s as a MIDI file.
func RenderMidi(w io.Writer, s *Schedule, bars uint) error {
	c, err := NewMidiClicker(w, s)
	if err != nil {
		return err
	}
	for tick := uint(0); tick < bars*s.TicksPerBar; tick++ {
		if err := c.Tick(tick, s.Level(tick)); err != nil {
			return err
		}
	}
	return c.Close()
}
