package main

import (
	"time"

	"github.com/dimfu/rhythm/theory"
)

const (
	MIN_TEMPO = 0
	MAX_TEMPO = 600

	defaultTempo      = 120
	defaultTimeSig    = "4/4"
	defaultSampleRate = 44100

	clickLength = 30 * time.Millisecond
)

// COMMON_TIME_SIGNATURES is listed by the bar command when no signature is
// given.
var COMMON_TIME_SIGNATURES = []theory.TimeSignature{
	{Numerator: 4, Denominator: 4},
	{Numerator: 3, Denominator: 4},
	{Numerator: 2, Denominator: 4},
	{Numerator: 2, Denominator: 2},
	{Numerator: 3, Denominator: 8},
	{Numerator: 6, Denominator: 8},
	{Numerator: 7, Denominator: 8},
	{Numerator: 9, Denominator: 8},
	{Numerator: 12, Denominator: 8},
	{Numerator: 5, Denominator: 4},
	{Numerator: 6, Denominator: 4},
}
