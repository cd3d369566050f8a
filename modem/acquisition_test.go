/*
NAME
  acquisition_test.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package modem

import (
	"testing"

	"github.com/Hossein-sfa/Robust-Audio-Link/codec/acousticenc"
	"github.com/Hossein-sfa/Robust-Audio-Link/codec/frame"
)

func TestCoarsePreambleSearchFindsOffset(t *testing.T) {
	const rate = 44100
	ciphertext, err := acousticenc.Encrypt(testKey, testIV, []byte("hi"))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	frameBytes, err := frame.Build(ciphertext)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	samples, err := Modulate(frameBytes, rate, nil)
	if err != nil {
		t.Fatalf("Modulate: %v", err)
	}

	fs := float64(rate)
	spb := samplesPerBit(fs)
	preBits := preambleBits()

	off, invert, score, err := coarsePreambleSearch(samples, fs, spb, preBits)
	if err != nil {
		t.Fatalf("coarsePreambleSearch: %v", err)
	}
	if invert {
		t.Error("expected invert=false for an un-negated signal")
	}
	if score < int(float64(preBits)*0.9) {
		t.Errorf("score = %d, want close to %d", score, preBits)
	}
	if off < 0 || off > int64(spb) {
		t.Errorf("off = %d, want close to 0", off)
	}
}

func TestMagicAnchoredRefineLocksFrameStart(t *testing.T) {
	const rate = 44100
	ciphertext, err := acousticenc.Encrypt(testKey, testIV, []byte("hi"))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	frameBytes, err := frame.Build(ciphertext)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	samples, err := Modulate(frameBytes, rate, nil)
	if err != nil {
		t.Fatalf("Modulate: %v", err)
	}

	fs := float64(rate)
	spb := samplesPerBit(fs)
	preBits := preambleBits()

	off, _, _, err := coarsePreambleSearch(samples, fs, spb, preBits)
	if err != nil {
		t.Fatalf("coarsePreambleSearch: %v", err)
	}

	bestPos, invert, err := magicAnchoredRefine(samples, fs, spb, preBits, off)
	if err != nil {
		t.Fatalf("magicAnchoredRefine: %v", err)
	}
	if invert {
		t.Error("expected invert=false")
	}

	header, ok := tryDecodeHeader(samples, bestPos, spb, fs, invert)
	if !ok {
		t.Fatal("tryDecodeHeader failed at the located bestPos")
	}
	if header != frame.Magic {
		t.Errorf("decoded header %v at bestPos does not match magic %v", header, frame.Magic)
	}
}

func TestMagicAnchoredRefineFailsWithoutPreamble(t *testing.T) {
	const rate = 44100
	fs := float64(rate)
	spb := samplesPerBit(fs)
	preBits := preambleBits()

	noise := make([]float64, spb*preBits+spb*100)
	if _, _, err := magicAnchoredRefine(noise, fs, spb, preBits, 0); err != ErrMagicNotFound {
		t.Errorf("got %v, want ErrMagicNotFound", err)
	}
}
