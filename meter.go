package main

import (
	"fmt"
	"time"

	"github.com/dimfu/rhythm/theory"
	"github.com/pkg/errors"
)

// Meter is what the metronome counts: a time signature played at Tempo
// beats per minute, clicking every Subdivision.
type Meter struct {
	Signature   theory.TimeSignature
	Subdivision theory.DurationValue
	Tempo       int64
	// Groups accents the start of every segment the bar splits into, so a
	// 7/8 bar counted in eighths clicks as 4+2+1.
	Groups bool
}

type Level int

const (
	LevelSubdivision Level = iota
	LevelBeat
	LevelGroup
	LevelDownbeat

	levelCount
)

func (l Level) String() string {
	switch l {
	case LevelDownbeat:
		return "downbeat"
	case LevelGroup:
		return "group"
	case LevelBeat:
		return "beat"
	default:
		return "subdivision"
	}
}

// Schedule lays a meter out as ticks of the subdivision.
type Schedule struct {
	Meter
	Beat         theory.DurationValue
	TicksPerBar  uint
	TicksPerBeat uint

	segments    []theory.DurationValue
	groupStarts map[uint]bool
}

func NewSchedule(m Meter) (*Schedule, error) {
	if !ValidTempo(m.Tempo) {
		return nil, fmt.Errorf("tempo is not valid make sure its above %v and below %v", MIN_TEMPO, MAX_TEMPO)
	}
	beat, err := m.Signature.BeatValue()
	if err != nil {
		return nil, err
	}
	ticksPerBeat, err := beat.ToTimeUnit(m.Subdivision)
	if err != nil {
		return nil, errors.Wrapf(err, "subdivision %s is longer than the %s beat", m.Subdivision.FullName(), beat.FullName())
	}
	ticksPerBar, err := m.Signature.GetNumTimeUnitsInABar(m.Subdivision)
	if err != nil {
		return nil, err
	}
	segments, err := theory.SplitIntoDurationValues(ticksPerBar, m.Subdivision)
	if err != nil {
		return nil, err
	}

	s := &Schedule{
		Meter:        m,
		Beat:         beat,
		TicksPerBar:  ticksPerBar,
		TicksPerBeat: ticksPerBeat,
		segments:     segments,
		groupStarts:  map[uint]bool{},
	}
	var start uint
	for _, g := range segments {
		s.groupStarts[start] = true
		n, _ := g.ToTimeUnit(m.Subdivision)
		start += n
	}
	return s, nil
}

// Segments is the bar split into duration values, longest first.
func (s *Schedule) Segments() []theory.DurationValue {
	return s.segments
}

func (s *Schedule) TickInterval() time.Duration {
	beatInterval := time.Minute / time.Duration(s.Tempo)
	return beatInterval / time.Duration(s.TicksPerBeat)
}

func (s *Schedule) Level(tick uint) Level {
	t := tick % s.TicksPerBar
	switch {
	case t == 0:
		return LevelDownbeat
	case s.Groups && s.groupStarts[t]:
		return LevelGroup
	case t%s.TicksPerBeat == 0:
		return LevelBeat
	default:
		return LevelSubdivision
	}
}

// Position returns the 1-based bar, beat and subdivision of a tick.
func (s *Schedule) Position(tick uint) (bar, beat, sub uint) {
	t := tick % s.TicksPerBar
	return tick/s.TicksPerBar + 1, t/s.TicksPerBeat + 1, t%s.TicksPerBeat + 1
}

func (s *Schedule) BeatsPerBar() uint {
	return s.TicksPerBar / s.TicksPerBeat
}
