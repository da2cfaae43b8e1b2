package main

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// TickSink receives every tick the metronome counts.
type TickSink interface {
	Tick(tick uint, level Level) error
}

type AudioPlayer struct {
	clicks *ClickSet
	ctrl   *beep.Ctrl
}

func NewAudioPlayer(clicks *ClickSet) (*AudioPlayer, error) {
	sr := clicks.Format().SampleRate
	if err := speaker.Init(sr, sr.N(time.Second/30)); err != nil {
		return nil, fmt.Errorf("error while initializing speaker: %v", err)
	}
	return &AudioPlayer{clicks: clicks}, nil
}

// Tick cuts off the previous click and starts the one for level.
func (ap *AudioPlayer) Tick(_ uint, level Level) error {
	speaker.Lock()
	if ap.ctrl != nil {
		ap.ctrl.Streamer = nil
	}
	ap.ctrl = &beep.Ctrl{
		Streamer: ap.clicks.Streamer(level),
		Paused:   false,
	}
	speaker.Unlock()

	speaker.Play(ap.ctrl)
	return nil
}

func (ap *AudioPlayer) Close() {
	speaker.Clear()
}
