/*
NAME
  acquisition.go

DESCRIPTION
  acquisition.go implements the two-stage acquisition protocol:
  a coarse preamble correlation over candidate offsets and polarities,
  followed by a magic-anchored refinement that locks the exact bit
  grid and resolves the polarity ambiguity coarse search alone cannot.

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

	"github.com/Hossein-sfa/Robust-Audio-Link/codec/frame"
)

// earlyExitFraction is the fraction of a perfect preamble score at
// which stage 1 stops searching further offsets.
const earlyExitFraction = 0.93

// coarseSearchSeconds bounds how far into the buffer stage 1 looks
// for the preamble.
const coarseSearchSeconds = 3.0

// coarsePreambleSearch is stage 1: it scores candidate offsets against
// the expected alternating preamble pattern, both polarities, and
// returns the best (offset, invert, score) tuple found.
func coarsePreambleSearch(x []float64, fs float64, spb, preBits int) (off int64, invert bool, score int, err error) {
	searchMax := int64(len(x))
	if limit := int64(math.Round(coarseSearchSeconds * fs)); limit < searchMax {
		searchMax = limit
	}
	step := int64(spb / 6)
	if step < 1 {
		step = 1
	}

	bestScore := -1
	var bestOff int64
	var bestInvert bool
	tried := false

	for candidate := int64(0); candidate < searchMax; candidate += step {
		for _, inv := range [2]bool{false, true} {
			s := scorePreamble(x, candidate, spb, fs, preBits, inv)
			tried = true
			if s > bestScore {
				bestScore = s
				bestOff = candidate
				bestInvert = inv
			}
		}
		if float64(bestScore) > earlyExitFraction*float64(preBits) {
			break
		}
	}

	if !tried {
		return 0, false, 0, ErrSyncNotFound
	}
	return bestOff, bestInvert, bestScore, nil
}

// scorePreamble counts how many of the first preBits symbols starting
// at off match the expected alternating bit b%2, evaluated with the
// given polarity. It stops early if a symbol window runs past the
// buffer.
func scorePreamble(x []float64, off int64, spb int, fs float64, preBits int, invert bool) int {
	score := 0
	for b := 0; b < preBits; b++ {
		p := off + int64(b)*int64(spb)
		bit, err := detectBit(x, p, spb, fs, invert)
		if err != nil {
			break
		}
		if bit == b%2 {
			score++
		}
	}
	return score
}

// magicAnchoredRefine is stage 2: it searches a symmetric window
// around the estimated frame start for an offset and polarity whose
// first 4 decoded bytes equal the frame magic "STEG", accepting the
// first match found.
func magicAnchoredRefine(x []float64, fs float64, spb, preBits int, off int64) (bestPos int64, invert bool, err error) {
	base := off + int64(preBits)*int64(spb)
	step := spb / 24
	if step < 1 {
		step = 1
	}

	for delta := -spb; delta <= spb; delta += step {
		p := base + int64(delta)
		if p < 0 {
			continue
		}
		for _, inv := range [2]bool{false, true} {
			header, ok := tryDecodeHeader(x, p, spb, fs, inv)
			if !ok {
				continue
			}
			if header == frame.Magic {
				return p, inv, nil
			}
		}
	}
	return 0, false, ErrMagicNotFound
}

// tryDecodeHeader decodes the 4 magic bytes starting at p using the
// full repetition+I/Q path, returning false if the read would run past
// the buffer.
func tryDecodeHeader(x []float64, p int64, spb int, fs float64, invert bool) ([4]byte, bool) {
	var header [4]byte
	cursor := p
	for i := 0; i < 4; i++ {
		b, next, err := decodeByte(x, cursor, spb, fs, invert)
		if err != nil {
			return header, false
		}
		header[i] = b
		cursor = next
	}
	return header, true
}
