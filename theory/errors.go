package theory

import "github.com/pkg/errors"

var (
	ErrNotPowerOfTwo        = errors.New("time unit duration must be a power of 2")
	ErrRankOutOfRange       = errors.New("inverted rank outside of the duration catalog")
	ErrShorterThanReference = errors.New("duration value is shorter than reference duration")
	ErrUnknownNoteLetter    = errors.New("unknown note letter")
	ErrUnknownSymbol        = errors.New("unknown symbol")
	ErrUnevenBar            = errors.New("shortest duration cannot evenly subdivide a bar")
	ErrZeroTimeSignature    = errors.New("time signature parts must be non-zero")
	ErrInvalidTimeSignature = errors.New("invalid time signature format")
	ErrOverflow             = errors.New("time unit count overflows")
)
