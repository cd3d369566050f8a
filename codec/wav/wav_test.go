/*
NAME
  wav_test.go

DESCRIPTION
  wav_test.go contains functions for testing the wav package.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package wav

import (
	"math"
	"path/filepath"
	"testing"
)

func tone(freq float64, n int, rate int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 0.5 * math.Sin(2*math.Pi*freq*float64(i)/float64(rate))
	}
	return out
}

func TestWriteReadMonoRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		rate   int
		n      int
		freq   float64
	}{
		{name: "8kHz short", rate: 8000, n: 400, freq: 400},
		{name: "44.1kHz tone", rate: 44100, n: 4410, freq: 1200},
		{name: "48kHz tone", rate: 48000, n: 2400, freq: 2200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.wav")
			want := tone(tt.freq, tt.n, tt.rate)

			if err := WriteMonoPCM(path, want, tt.rate); err != nil {
				t.Fatalf("WriteMonoPCM: %v", err)
			}

			got, rate, err := ReadMonoPCM(path)
			if err != nil {
				t.Fatalf("ReadMonoPCM: %v", err)
			}
			if rate != tt.rate {
				t.Errorf("rate = %d, want %d", rate, tt.rate)
			}
			if len(got) != len(want) {
				t.Fatalf("len(got) = %d, want %d", len(got), len(want))
			}

			var maxDiff float64
			for i := range want {
				d := math.Abs(got[i] - want[i])
				if d > maxDiff {
					maxDiff = d
				}
			}
			// 16-bit quantisation error tolerance.
			if maxDiff > 1.0/(1<<14) {
				t.Errorf("round trip drifted too far: max diff = %v", maxDiff)
			}
		})
	}
}

func TestReadMonoPCMRejectsMissingFile(t *testing.T) {
	if _, _, err := ReadMonoPCM(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteMonoPCMRejectsBadPath(t *testing.T) {
	if err := WriteMonoPCM(filepath.Join(t.TempDir(), "nosuchdir", "out.wav"), []float64{0, 0}, 8000); err == nil {
		t.Error("expected error for unwritable path")
	}
}
