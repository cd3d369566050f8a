/*
NAME
  frontend.go

DESCRIPTION
  frontend.go conditions a raw recorded waveform before acquisition:
  DC removal, RMS normalisation to a target level, then a band-pass
  chain (high-pass at 700 Hz followed by low-pass at 2600 Hz). This
  mirrors the AudioFilter "Apply over a buffer" shape of
  codec/pcm/filters.go, but built on the RBJ biquads in biquad.go
  instead of FIR convolution.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package dsp

import "math"

// Band-pass cutoffs for the receiver front-end.
const (
	HighPassHz = 700.0
	LowPassHz  = 2600.0
)

// rmsEpsilon is the minimum RMS below which normalisation is skipped
// to avoid dividing by (near) zero on silent input.
const rmsEpsilon = 1e-6

// targetRMS is the RMS level samples are scaled to during
// normalisation.
const targetRMS = 0.25

// Condition applies DC removal, RMS normalisation, and a high-pass +
// low-pass band-pass chain to x in place, at sample rate fs Hz.
func Condition(x []float64, fs float64) {
	removeDC(x)
	normaliseRMS(x)

	hp := NewHighPass(HighPassHz, fs)
	hp.Apply(x)
	lp := NewLowPass(LowPassHz, fs)
	lp.Apply(x)
}

// removeDC subtracts the arithmetic mean of x from every sample.
func removeDC(x []float64) {
	if len(x) == 0 {
		return
	}
	var sum float64
	for _, v := range x {
		sum += v
	}
	mean := sum / float64(len(x))
	for i := range x {
		x[i] -= mean
	}
}

// normaliseRMS scales x so its RMS is targetRMS, unless its RMS is
// already below rmsEpsilon, in which case scaling is skipped.
func normaliseRMS(x []float64) {
	if len(x) == 0 {
		return
	}
	var sumSq float64
	for _, v := range x {
		sumSq += v * v
	}
	rms := math.Sqrt(sumSq / float64(len(x)))
	if rms < rmsEpsilon {
		return
	}
	gain := targetRMS / rms
	for i := range x {
		x[i] *= gain
	}
}
