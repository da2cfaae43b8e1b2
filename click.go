package main

import (
	"math"
	"os"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"
)

type clickVoice struct {
	freq float64
	gain float64
}

// Higher pitch for the downbeat, quieter and lower for subdivisions.
var clickVoices = [levelCount]clickVoice{
	LevelDownbeat:    {1200, 0.9},
	LevelGroup:       {1000, 0.75},
	LevelBeat:        {800, 0.6},
	LevelSubdivision: {600, 0.3},
}

func newFormat(sr beep.SampleRate) beep.Format {
	return beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
}

// SynthClick is a short exponentially decaying sine.
func SynthClick(sr beep.SampleRate, level Level) beep.Streamer {
	voice := clickVoices[level]
	total := sr.N(clickLength)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / float64(sr)
			env := math.Exp(-5 * float64(pos) / float64(total))
			v := voice.gain * env * math.Sin(2*math.Pi*voice.freq*t)
			samples[i][0], samples[i][1] = v, v
			pos++
			n++
		}
		return n, true
	})
}

func Read(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, errors.Wrap(err, "reading audio file failed")
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, beep.Format{}, errors.Wrap(err, "error while decoding audio")
	}
	return streamer, format, nil
}

// ClickSet holds one pre-rendered click per level.
type ClickSet struct {
	format  beep.Format
	buffers [levelCount]*beep.Buffer
}

// NewClickSet synthesizes clicks, replacing the accented (downbeat, group)
// or plain (beat, subdivision) ones by WAV samples when paths are given.
func NewClickSet(sr beep.SampleRate, accentSample, beatSample string) (*ClickSet, error) {
	cs := &ClickSet{format: newFormat(sr)}
	for level := Level(0); level < levelCount; level++ {
		sample := beatSample
		if level == LevelDownbeat || level == LevelGroup {
			sample = accentSample
		}

		var src beep.Streamer
		if sample == "" {
			src = SynthClick(sr, level)
		} else {
			streamer, format, err := Read(sample)
			if err != nil {
				return nil, err
			}
			defer streamer.Close()
			src = streamer
			if format.SampleRate != sr {
				src = beep.Resample(4, format.SampleRate, sr, src)
			}
			if level == LevelSubdivision || level == LevelGroup {
				src = &effects.Volume{Streamer: src, Base: 2, Volume: -1}
			}
		}

		buffer := beep.NewBuffer(cs.format)
		buffer.Append(src)
		cs.buffers[level] = buffer
	}
	return cs, nil
}

func (cs *ClickSet) Format() beep.Format {
	return cs.format
}

func (cs *ClickSet) Streamer(level Level) beep.StreamSeeker {
	b := cs.buffers[level]
	return b.Streamer(0, b.Len())
}

func (cs *ClickSet) Len(level Level) int {
	return cs.buffers[level].Len()
}
