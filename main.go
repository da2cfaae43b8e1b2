// Command rhythm is a bar-aware metronome built on the theory package.
//
// Usage:
//
//	rhythm play --tempo 96 --timesig 7/8 --sub sixteenth --groups
//	rhythm render --timesig 3/4 --bars 8 --out waltz.wav
//	rhythm split 12 --unit sixteenth
//	rhythm bar 7/8 --unit thirty-second
//	rhythm note Bb
//	rhythm quality dim
//	rhythm preset add --key waltz --tempo 90 --timesig 3/4
package main

import (
	"fmt"
	"log"
	"os"
)

var logger = log.New(os.Stderr, "rhythm: ", 0)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
