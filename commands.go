package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/dimfu/rhythm/theory"
	"github.com/faiface/beep"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type meterFlags struct {
	tempo   int64
	timesig string
	sub     string
	groups  bool
	preset  string
}

func (mf *meterFlags) register(cmd *cobra.Command, withPreset bool) {
	flags := cmd.Flags()
	flags.Int64Var(&mf.tempo, "tempo", defaultTempo, "beats per minute")
	flags.StringVar(&mf.timesig, "timesig", defaultTimeSig, "time signature, e.g. 3/4 or 7/8")
	flags.StringVar(&mf.sub, "sub", "", "subdivision to click (name or staccato symbol), defaults to the beat")
	flags.BoolVar(&mf.groups, "groups", false, "accent the start of every group the bar splits into")
	if withPreset {
		flags.StringVar(&mf.preset, "preset", "", "start from a stored preset; explicit flags override it")
	}
}

func (mf *meterFlags) toPreset() Preset {
	return Preset{Tempo: mf.tempo, Timesig: mf.timesig, Subdivision: mf.sub, Groups: mf.groups}
}

func (mf *meterFlags) schedule(cmd *cobra.Command) (*Schedule, error) {
	p := mf.toPreset()
	if mf.preset != "" {
		pm, err := LoadPresets()
		if err != nil {
			return nil, err
		}
		stored := pm.Get(mf.preset)
		if stored == nil {
			return nil, fmt.Errorf("`%v` preset not found", mf.preset)
		}
		merged := *stored
		flags := cmd.Flags()
		if flags.Changed("tempo") {
			merged.Tempo = mf.tempo
		}
		if flags.Changed("timesig") {
			merged.Timesig = mf.timesig
		}
		if flags.Changed("sub") {
			merged.Subdivision = mf.sub
		}
		if flags.Changed("groups") {
			merged.Groups = mf.groups
		}
		p = merged
	}

	m, err := p.Meter()
	if err != nil {
		return nil, err
	}
	return NewSchedule(m)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rhythm",
		Short:         "Bar-aware metronome and note value calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newPlayCmd(),
		newRenderCmd(),
		newSplitCmd(),
		newBarCmd(),
		newNoteCmd(),
		newQualityCmd(),
		newPresetCmd(),
	)
	return root
}

func newPlayCmd() *cobra.Command {
	var (
		mf           meterFlags
		bars         uint
		midiOut      string
		accentSample string
		beatSample   string
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the metronome on the speaker",
		Long: `Play clicks on every subdivision of the bar.

The downbeat is accented; with --groups the starts of the groups the bar
splits into (4+2+1 for 7/8 in eighths) are accented too. On a terminal,
space pauses and q quits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := mf.schedule(cmd)
			if err != nil {
				return err
			}
			clicks, err := NewClickSet(beep.SampleRate(defaultSampleRate), accentSample, beatSample)
			if err != nil {
				return err
			}
			player, err := NewAudioPlayer(clicks)
			if err != nil {
				return err
			}
			defer player.Close()

			sinks := []TickSink{player}
			if midiOut != "" {
				f, err := os.Create(midiOut)
				if err != nil {
					return err
				}
				defer f.Close()
				mc, err := NewMidiClicker(f, s)
				if err != nil {
					return err
				}
				defer func() {
					if err := mc.Close(); err != nil {
						logger.Printf("write %s: %v", midiOut, err)
					}
				}()
				sinks = append(sinks, mc)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			interactive := isTerminal(os.Stdout) && isTerminal(os.Stdin)
			if interactive {
				if err := ClearTerminal(); err != nil {
					logger.Printf("clear terminal: %v", err)
				}
				display := NewDisplay(cmd.OutOrStdout(), s)
				defer display.Stop()
				sinks = append(sinks, display)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s at %d bpm, %d %s ticks per bar\n",
					s.Signature, s.Tempo, s.TicksPerBar, s.Subdivision.FullName())
			}

			metro := NewMetronome(s, bars*s.TicksPerBar, sinks...)
			if interactive {
				restore, err := ListenKeys(ctx, cancel, metro)
				if err != nil {
					logger.Printf("keyboard controls disabled: %v", err)
				} else {
					defer restore()
				}
			}

			_, err = metro.Run(ctx, StartTicker(ctx, s.TickInterval()))
			// let the last click ring out
			time.Sleep(clickLength)
			return err
		},
	}
	mf.register(cmd, true)
	cmd.Flags().UintVar(&bars, "bars", 0, "stop after this many bars (0 plays until interrupted)")
	cmd.Flags().StringVar(&midiOut, "midi-out", "", "also write the clicks as MIDI messages to this file")
	cmd.Flags().StringVar(&accentSample, "accent-sample", "", "WAV file for accented clicks")
	cmd.Flags().StringVar(&beatSample, "beat-sample", "", "WAV file for the other clicks")
	return cmd
}

func newRenderCmd() *cobra.Command {
	var (
		mf           meterFlags
		bars         uint
		out          string
		midiOut      string
		sampleRate   int
		accentSample string
		beatSample   string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write a click track to a WAV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return errors.New("--out is required")
			}
			if bars == 0 {
				return errors.New("--bars must be at least 1")
			}
			if sampleRate <= 0 {
				return errors.Errorf("--sample-rate must be positive, got %d", sampleRate)
			}
			s, err := mf.schedule(cmd)
			if err != nil {
				return err
			}
			clicks, err := NewClickSet(beep.SampleRate(sampleRate), accentSample, beatSample)
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := RenderWav(f, s, clicks, bars); err != nil {
				f.Close()
				return errors.Wrapf(err, "render %s", out)
			}
			if err := f.Close(); err != nil {
				return err
			}
			if midiOut != "" {
				if err := writeMidi(midiOut, s, bars); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bars of %s at %d bpm to %s\n", bars, s.Signature, s.Tempo, out)
			return nil
		},
	}
	mf.register(cmd, true)
	cmd.Flags().UintVar(&bars, "bars", 4, "number of bars to render")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output WAV file")
	cmd.Flags().StringVar(&midiOut, "midi-out", "", "also write the clicks to this MIDI file")
	cmd.Flags().IntVar(&sampleRate, "sample-rate", defaultSampleRate, "output sample rate")
	cmd.Flags().StringVar(&accentSample, "accent-sample", "", "WAV file for accented clicks")
	cmd.Flags().StringVar(&beatSample, "beat-sample", "", "WAV file for the other clicks")
	return cmd
}

func writeMidi(path string, s *Schedule, bars uint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := RenderMidi(f, s, bars); err != nil {
		f.Close()
		return errors.Wrapf(err, "render %s", path)
	}
	return f.Close()
}

func newSplitCmd() *cobra.Command {
	var unit string
	cmd := &cobra.Command{
		Use:   "split <time-units>",
		Short: "Split a number of time units into note values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shortest, err := theory.ParseDurationValue(unit)
			if err != nil {
				return err
			}
			units, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return errors.Wrapf(err, "invalid time unit count %q", args[0])
			}
			values, err := theory.SplitIntoDurationValues(uint(units), shortest)
			if err != nil {
				return err
			}

			symbols := make([]string, len(values))
			for i, v := range values {
				symbols[i] = v.Staccato()
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(symbols, " "))

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "VALUE\tNAME\tUNITS")
			for _, v := range values {
				n, _ := v.ToTimeUnit(shortest)
				fmt.Fprintf(w, "%s\t%s\t%d\n", v, v.FullName(), n)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&unit, "unit", "sixteenth", "duration value of one time unit")
	return cmd
}

func newBarCmd() *cobra.Command {
	var unit string
	cmd := &cobra.Command{
		Use:   "bar [time-signature]",
		Short: "Show how many time units fill a bar",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shortest, err := theory.ParseDurationValue(unit)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				ts, err := theory.ParseTimeSignature(args[0])
				if err != nil {
					return err
				}
				n, err := ts.GetNumTimeUnitsInABar(shortest)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", ts, n)
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "SIGNATURE\t%s\n", strings.ToUpper(shortest.FullName()))
			for _, ts := range COMMON_TIME_SIGNATURES {
				n, err := ts.GetNumTimeUnitsInABar(shortest)
				if err != nil {
					fmt.Fprintf(w, "%s\t-\n", ts)
					continue
				}
				fmt.Fprintf(w, "%s\t%d\n", ts, n)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&unit, "unit", "sixteenth", "duration value of one time unit")
	return cmd
}

func newNoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "note <name>",
		Short: "Show the letter, modifier and pitch class of a note name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			letter, modifier, err := ParseNoteName(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "letter %s (%d)  modifier %q (%+d)  pitch class %d\n",
				letter, letter.BasicSemitoneValue(), modifier.Symbol(), modifier.SemitoneModifier(),
				theory.PitchClass(letter, modifier))
			return nil
		},
	}
}

func newQualityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quality [symbol]",
		Short: "Look an interval quality up by symbol",
		Long:  "Look an interval quality up by symbol. Without a symbol, every quality is listed.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var found []theory.Quality
			if len(args) == 0 {
				for _, q := range theory.MajorMinorQualities() {
					found = append(found, q)
				}
				for _, q := range theory.PerfectDimAugQualities() {
					found = append(found, q)
				}
			} else {
				if q, err := theory.MajorMinorQualityFromSymbol(args[0]); err == nil {
					found = append(found, q)
				}
				if q, err := theory.PerfectDimAugQualityFromSymbol(args[0]); err == nil {
					found = append(found, q)
				}
				if len(found) == 0 {
					return errors.Wrapf(theory.ErrUnknownSymbol, "quality %q", args[0])
				}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSYMBOL\tSEMITONES")
			for _, q := range found {
				fmt.Fprintf(w, "%s\t%q\t%+g\n", q.FullName(), q.Symbol(), q.SemitoneModifier())
			}
			return w.Flush()
		},
	}
}

func newPresetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage stored meters",
	}

	var (
		mf  meterFlags
		key string
	)
	add := &cobra.Command{
		Use:   "add",
		Short: "Store a new preset",
		RunE: func(cmd *cobra.Command, args []string) error {
			pm, err := LoadPresets()
			if err != nil {
				return err
			}
			p := mf.toPreset()
			p.Key = key
			if err := pm.Create(p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved preset %s\n", key)
			return nil
		},
	}
	mf.register(add, false)
	add.Flags().StringVar(&key, "key", "", "preset name")

	rm := &cobra.Command{
		Use:   "rm <key>",
		Short: "Delete a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pm, err := LoadPresets()
			if err != nil {
				return err
			}
			if err := pm.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted preset %s\n", args[0])
			return nil
		},
	}

	ls := &cobra.Command{
		Use:   "ls",
		Short: "List presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			pm, err := LoadPresets()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tTEMPO\tTIMESIG\tSUB\tGROUPS")
			for _, p := range pm.Presets {
				sub := p.Subdivision
				if sub == "" {
					sub = "-"
				}
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%t\n", p.Key, p.Tempo, p.Timesig, sub, p.Groups)
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(add, rm, ls)
	return cmd
}
