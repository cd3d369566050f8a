/*
NAME
  biquad.go

DESCRIPTION
  biquad.go implements the RBJ audio-EQ-cookbook high-pass and
  low-pass biquad sections used by the receiver's front-end band-pass
  chain. Both are Butterworth (Q=0.707), direct-form-II-transposed,
  matching the Configure/Filter/Reset shape of the mark/space/lowpass
  filters driving the ka9q_ubersdr FSK demodulator, but with RBJ
  cookbook coefficients rather than a narrowband tone filter.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package dsp provides the biquad filters and front-end conditioning
// chain used to prepare a recorded waveform for acquisition.
package dsp

import "math"

// ButterworthQ is the Q factor for a maximally-flat (Butterworth)
// second-order section, used by both the high-pass and low-pass
// sections of the receiver's band-pass chain.
const ButterworthQ = 0.70710678118 // 1/sqrt(2)

// Biquad is a direct-form-II-transposed second-order IIR section.
// State (z1, z2) is carried across samples within one filtering pass
// and must be zeroed at construction.
type Biquad struct {
	b0, b1, b2 float64
	a1, a2     float64
	z1, z2     float64
}

// NewHighPass returns a Butterworth high-pass Biquad with cutoff fc Hz
// at sample rate fs Hz, per the RBJ audio-EQ cookbook.
func NewHighPass(fc, fs float64) *Biquad {
	w0 := 2 * math.Pi * fc / fs
	alpha := math.Sin(w0) / (2 * ButterworthQ)
	cosw0 := math.Cos(w0)

	b0 := (1 + cosw0) / 2
	b1 := -(1 + cosw0)
	b2 := (1 + cosw0) / 2
	a0 := 1 + alpha
	a1 := -2 * cosw0
	a2 := 1 - alpha

	return newBiquad(b0, b1, b2, a0, a1, a2)
}

// NewLowPass returns a Butterworth low-pass Biquad with cutoff fc Hz
// at sample rate fs Hz, per the RBJ audio-EQ cookbook.
func NewLowPass(fc, fs float64) *Biquad {
	w0 := 2 * math.Pi * fc / fs
	alpha := math.Sin(w0) / (2 * ButterworthQ)
	cosw0 := math.Cos(w0)

	b0 := (1 - cosw0) / 2
	b1 := 1 - cosw0
	b2 := (1 - cosw0) / 2
	a0 := 1 + alpha
	a1 := -2 * cosw0
	a2 := 1 - alpha

	return newBiquad(b0, b1, b2, a0, a1, a2)
}

func newBiquad(b0, b1, b2, a0, a1, a2 float64) *Biquad {
	return &Biquad{
		b0: b0 / a0,
		b1: b1 / a0,
		b2: b2 / a0,
		a1: a1 / a0,
		a2: a2 / a0,
	}
}

// Filter processes a single sample through the direct-form-II-
// transposed structure, updating the filter's internal state.
func (f *Biquad) Filter(x float64) float64 {
	y := f.b0*x + f.z1
	f.z1 = f.b1*x - f.a1*y + f.z2
	f.z2 = f.b2*x - f.a2*y
	return y
}

// Apply filters every sample in x in place, in sample order.
func (f *Biquad) Apply(x []float64) {
	for i, v := range x {
		x[i] = f.Filter(v)
	}
}

// Reset zeroes the filter's running state without altering its
// coefficients.
func (f *Biquad) Reset() {
	f.z1, f.z2 = 0, 0
}
