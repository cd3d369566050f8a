/*
NAME
  detector.go

DESCRIPTION
  detector.go implements the coherent I/Q energy detector and the
  symbol decoder built on top of it: majority-vote decoding of a
  repetition-coded bit, and byte reassembly from a run of coded bits,
  MSB-first.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package modem

import (
	"math"

	"github.com/pkg/errors"
)

// errOutOfRange is returned internally when a symbol window would run
// past the end of the sample buffer.
var errOutOfRange = errors.New("symbol window out of range")

// detectBit evaluates the I/Q energy detector at start sample p over
// one symbol of spb samples, at sample rate fs. The basis starts at
// n=0 on every call (phase-local, not signal-global), which is what
// makes detection tolerant of arbitrary playback/record delay. If
// invert is true, the result is flipped.
func detectBit(x []float64, p int64, spb int, fs float64, invert bool) (int, error) {
	if p < 0 || p+int64(spb) > int64(len(x)) {
		return 0, errOutOfRange
	}

	w0 := 2 * math.Pi * F0 / fs
	w1 := 2 * math.Pi * F1 / fs

	var i0, q0, i1, q1 float64
	for n := 0; n < spb; n++ {
		xn := x[p+int64(n)]
		fn := float64(n)
		i0 += xn * math.Cos(w0*fn)
		q0 += xn * math.Sin(w0*fn)
		i1 += xn * math.Cos(w1*fn)
		q1 += xn * math.Sin(w1*fn)
	}

	p0 := i0*i0 + q0*q0
	p1 := i1*i1 + q1*q1

	bit := 0
	if p1 > p0 {
		bit = 1
	}
	if invert {
		bit ^= 1
	}
	return bit, nil
}

// decodeCodedBit calls detectBit Rep times at p, p+spb, p+2*spb, ...
// and returns the majority value, plus the cursor advanced past the
// Rep symbols.
func decodeCodedBit(x []float64, p int64, spb int, fs float64, invert bool) (bit int, next int64, err error) {
	var ones int
	for r := 0; r < Rep; r++ {
		b, err := detectBit(x, p+int64(r)*int64(spb), spb, fs, invert)
		if err != nil {
			return 0, p, err
		}
		ones += b
	}
	if ones*2 > Rep {
		bit = 1
	}
	return bit, p + int64(Rep)*int64(spb), nil
}

// decodeByte decodes 8 coded bits starting at cursor into a byte,
// MSB-first, returning the byte and the cursor advanced past it.
func decodeByte(x []float64, cursor int64, spb int, fs float64, invert bool) (b byte, next int64, err error) {
	for k := 0; k < 8; k++ {
		bit, n, err := decodeCodedBit(x, cursor, spb, fs, invert)
		if err != nil {
			return 0, cursor, err
		}
		b = b<<1 | byte(bit)
		cursor = n
	}
	return b, cursor, nil
}
