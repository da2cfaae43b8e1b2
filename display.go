package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/eiannone/keyboard"
	"github.com/gosuri/uilive"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f"))
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff9f"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
)

var levelMarks = [levelCount]byte{
	LevelDownbeat:    'X',
	LevelGroup:       'x',
	LevelBeat:        'o',
	LevelSubdivision: '.',
}

// BarLine draws the bar holding tick, marking the tick itself with '*'.
func BarLine(s *Schedule, tick uint) string {
	var b strings.Builder
	b.WriteByte('|')
	current := tick % s.TicksPerBar
	for t := uint(0); t < s.TicksPerBar; t++ {
		if t == current {
			b.WriteByte('*')
		} else {
			b.WriteByte(levelMarks[s.Level(t)])
		}
	}
	b.WriteByte('|')
	return b.String()
}

// Display keeps a live line with the position of the metronome.
type Display struct {
	w        *uilive.Writer
	schedule *Schedule
}

func NewDisplay(out io.Writer, s *Schedule) *Display {
	w := uilive.New()
	w.Out = out
	w.Start()
	return &Display{w: w, schedule: s}
}

func (d *Display) Tick(tick uint, _ Level) error {
	bar, beat, _ := d.schedule.Position(tick)
	title := titleStyle.Render(fmt.Sprintf("%s  %d bpm", d.schedule.Signature, d.schedule.Tempo))
	_, err := fmt.Fprintf(d.w, "%s  bar %d  beat %d/%d  %s\n%s\n",
		title, bar, beat, d.schedule.BeatsPerBar(),
		barStyle.Render(BarLine(d.schedule, tick)),
		helpStyle.Render("[space] pause  [q] quit"))
	return err
}

func (d *Display) Stop() {
	d.w.Stop()
}

// handleKey applies a key press to m and reports whether it asks to quit.
func handleKey(ev keyboard.KeyEvent, m *Metronome) bool {
	switch {
	case ev.Key == keyboard.KeySpace:
		m.TogglePause()
	case ev.Key == keyboard.KeyEsc, ev.Key == keyboard.KeyCtrlC, ev.Rune == 'q', ev.Rune == 'Q':
		return true
	}
	return false
}

// ListenKeys reads the keyboard until ctx ends or a quit key cancels it.
// The returned function restores the terminal.
func ListenKeys(ctx context.Context, cancel context.CancelFunc, m *Metronome) (func(), error) {
	events, err := keyboard.GetKeys(10)
	if err != nil {
		return nil, err
	}
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-events:
				if !ok || ev.Err != nil {
					return
				}
				if handleKey(ev, m) {
					cancel()
					return
				}
			}
		}
	}()
	return func() { _ = keyboard.Close() }, nil
}
