/*
NAME
  modulator.go

DESCRIPTION
  modulator.go generates the BFSK waveform a frame is carried as: a
  preamble of alternating symbols for timing acquisition, followed by
  the frame's bits, each repeated REP times and emitted as a
  Hann-windowed tone burst at F0 (bit 0) or F1 (bit 1).

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package modem implements the acoustic BFSK link layer: modulation,
// coherent I/Q demodulation, two-stage acquisition, and the frame
// extraction state machine tying them together.
package modem

import (
	"math"

	"github.com/mjibson/go-dsp/window"
)

// Wire-visible constants. Implementers must match these bit-for-bit
// for interop with a counterpart encoder/decoder.
const (
	F0               = 1200.0
	F1               = 2200.0
	BitDuration      = 0.015
	PreambleSeconds  = 1.5
	Rep              = 3
	SampleRateTX     = 44100
	Amplitude        = 0.87
	StegoStrength    = 0.2
	CoverGain        = 0.3
	minSamplesPerBit = 40
)

// DemoKey and DemoIV are the fixed demo key material embedded in both
// endpoints. Production use requires out-of-band IV provisioning,
// which is explicitly out of scope here.
var (
	DemoKey = []byte("01234567890123456789012345678901")
	DemoIV  = []byte("0123456789012345")
)

// samplesPerBit returns spb for the given sample rate.
func samplesPerBit(sampleRate float64) int {
	return int(math.Round(sampleRate * BitDuration))
}

// preambleBits returns pre_bits, independent of sample rate.
func preambleBits() int {
	b := int(math.Round(PreambleSeconds / BitDuration))
	if b < 32 {
		return 32
	}
	return b
}

// buildBitStream lays out the full transmitted bit sequence: pre_bits
// alternating preamble bits (no repetition), then each frame byte's
// bits MSB-first, each repeated Rep times.
func buildBitStream(frameBytes []byte, preBits int) []int {
	bits := make([]int, 0, preBits+8*len(frameBytes)*Rep)
	for i := 0; i < preBits; i++ {
		bits = append(bits, i%2)
	}
	for _, b := range frameBytes {
		for pos := 7; pos >= 0; pos-- {
			bit := int((b >> uint(pos)) & 1)
			for r := 0; r < Rep; r++ {
				bits = append(bits, bit)
			}
		}
	}
	return bits
}

// clamp restricts v to [-1, 1].
func clamp(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	default:
		return v
	}
}

// Modulate renders frameBytes as a BFSK waveform at sampleRate Hz. If
// cover is non-empty, each symbol is mixed with cover audio (looped)
// instead of transmitted at full strength: clamp(COVER_GAIN*cover +
// STEGO_STRENGTH*tone). Returns ErrConfig if the resulting spb is
// below the minimum required for reliable detection.
func Modulate(frameBytes []byte, sampleRate int, cover []float64) ([]float64, error) {
	fs := float64(sampleRate)
	spb := samplesPerBit(fs)
	if spb < minSamplesPerBit {
		return nil, wrapConfigErr(spb, sampleRate)
	}

	bits := buildBitStream(frameBytes, preambleBits())
	win := window.Hann(spb)

	out := make([]float64, 0, len(bits)*spb)
	var si int64
	for _, bit := range bits {
		freq := F0
		if bit == 1 {
			freq = F1
		}
		for k := 0; k < spb; k++ {
			t := float64(si+int64(k)) / fs
			tone := Amplitude * win[k] * math.Sin(2*math.Pi*freq*t)
			var s float64
			if len(cover) > 0 {
				idx := (si + int64(k)) % int64(len(cover))
				s = CoverGain*cover[idx] + StegoStrength*tone
			} else {
				s = tone
			}
			out = append(out, clamp(s))
		}
		si += int64(spb)
	}
	return out, nil
}
