package main

import (
	"io"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

// TickStreamer plays the clicks of bars bars of s back to back, each padded
// with silence to the tick interval.
func TickStreamer(s *Schedule, clicks *ClickSet, bars uint) beep.Streamer {
	interval := clicks.Format().SampleRate.N(s.TickInterval())
	total := bars * s.TicksPerBar
	parts := make([]beep.Streamer, 0, 2*total)
	for tick := uint(0); tick < total; tick++ {
		level := s.Level(tick)
		var click beep.Streamer = clicks.Streamer(level)
		n := clicks.Len(level)
		if n > interval {
			click = beep.Take(interval, click)
			n = interval
		}
		parts = append(parts, click)
		if n < interval {
			parts = append(parts, beep.Silence(interval-n))
		}
	}
	return beep.Seq(parts...)
}

// RenderWav encodes bars bars of clicks as a WAV file.
func RenderWav(w io.WriteSeeker, s *Schedule, clicks *ClickSet, bars uint) error {
	return wav.Encode(w, TickStreamer(s, clicks, bars), clicks.Format())
}
