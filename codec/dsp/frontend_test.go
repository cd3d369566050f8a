/*
NAME
  frontend_test.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package dsp

import (
	"math"
	"testing"
)

func TestConditionRemovesDCAndNormalises(t *testing.T) {
	const n = 8192
	x := generateTone(1500, n) // inside the 700-2600Hz band
	for i := range x {
		x[i] += 0.6 // DC offset
	}

	Condition(x, testSampleRate)

	// Mean should now be close to zero over the settled tail.
	settled := x[n/2:]
	var sum float64
	for _, v := range settled {
		sum += v
	}
	mean := sum / float64(len(settled))
	if math.Abs(mean) > 0.05 {
		t.Errorf("Condition left a DC offset: mean = %v", mean)
	}

	// An in-band tone should leave the band-pass near the normalised level.
	if got := rms(settled); math.Abs(got-targetRMS) > 0.05 {
		t.Errorf("Condition did not normalise to %v: settled rms = %v", targetRMS, got)
	}
}

func TestConditionSkipsNormaliseOnSilence(t *testing.T) {
	x := make([]float64, 1024)
	Condition(x, testSampleRate) // should not panic or divide by zero
	for i, v := range x {
		if v != 0 {
			t.Fatalf("expected silence to remain silent, got nonzero at %d: %v", i, v)
		}
	}
}
