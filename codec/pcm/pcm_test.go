/*
NAME
  pcm_test.go

DESCRIPTION
  pcm_test.go contains functions for testing the pcm package.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pcm

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// encodeFrames packs per-channel int16 samples into interleaved
// little-endian bytes, one frame per entry in frames.
func encodeFrames(frames [][]int16) []byte {
	buf := new(bytes.Buffer)
	for _, frame := range frames {
		for _, s := range frame {
			binary.Write(buf, binary.LittleEndian, s)
		}
	}
	return buf.Bytes()
}

func TestDownmixMono(t *testing.T) {
	data := encodeFrames([][]int16{{100}, {-100}, {32767}})
	buf := Buffer{Format: BufferFormat{Channels: 1, Rate: 44100, SFormat: S16_LE}, Data: data}

	mono, err := Downmix(buf)
	if err != nil {
		t.Fatalf("Downmix: %v", err)
	}
	if !bytes.Equal(mono.Data, data) {
		t.Error("mono input should pass through unchanged")
	}
}

func TestDownmixStereo(t *testing.T) {
	frames := [][]int16{{100, 200}, {-100, -200}, {0, 1}}
	data := encodeFrames(frames)
	buf := Buffer{Format: BufferFormat{Channels: 2, Rate: 44100, SFormat: S16_LE}, Data: data}

	mono, err := Downmix(buf)
	if err != nil {
		t.Fatalf("Downmix: %v", err)
	}
	if mono.Format.Channels != 1 {
		t.Fatalf("expected 1 channel, got %d", mono.Format.Channels)
	}
	if mono.Format.Rate != 44100 {
		t.Errorf("expected rate preserved, got %d", mono.Format.Rate)
	}

	want := []int16{150, -150, 0}
	got := make([]int16, len(want))
	for i := range got {
		got[i] = int16(binary.LittleEndian.Uint16(mono.Data[i*2 : i*2+2]))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("frame %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestDownmixFourChannels(t *testing.T) {
	frames := [][]int16{{100, 200, 300, 400}}
	data := encodeFrames(frames)
	buf := Buffer{Format: BufferFormat{Channels: 4, Rate: 8000, SFormat: S16_LE}, Data: data}

	mono, err := Downmix(buf)
	if err != nil {
		t.Fatalf("Downmix: %v", err)
	}
	got := int16(binary.LittleEndian.Uint16(mono.Data[0:2]))
	if got != 250 {
		t.Errorf("got %d, want 250", got)
	}
}

func TestDownmixRejectsMisalignedData(t *testing.T) {
	buf := Buffer{
		Format: BufferFormat{Channels: 2, Rate: 44100, SFormat: S16_LE},
		Data:   make([]byte, 5), // not a whole number of stereo frames
	}
	if _, err := Downmix(buf); err == nil {
		t.Error("expected error for misaligned data")
	}
}

func TestDownmixRejectsZeroChannels(t *testing.T) {
	buf := Buffer{Format: BufferFormat{Channels: 0, Rate: 44100, SFormat: S16_LE}}
	if _, err := Downmix(buf); err == nil {
		t.Error("expected error for zero channels")
	}
}

func TestBytesFloatsRoundTrip(t *testing.T) {
	want := []int16{0, 1, -1, 32767, -32768, 1000, -1000}
	b := make([]byte, len(want)*2)
	for i, s := range want {
		binary.LittleEndian.PutUint16(b[i*2:], uint16(s))
	}

	f, err := BytesToFloats(b)
	if err != nil {
		t.Fatalf("BytesToFloats: %v", err)
	}
	for _, v := range f {
		if v < -1 || v >= 1 {
			t.Fatalf("sample out of range: %v", v)
		}
	}

	got := FloatsToBytes(f)
	// Check the interior entries (1 through 1000, including -32768);
	// the first and last entries are not compared.
	for i := 1; i < len(want)-1; i++ {
		gs := int16(binary.LittleEndian.Uint16(got[i*2 : i*2+2]))
		if gs != want[i] {
			t.Errorf("sample %d: got %d, want %d", i, gs, want[i])
		}
	}
}

func TestBytesToFloatsRejectsOddLength(t *testing.T) {
	if _, err := BytesToFloats([]byte{1, 2, 3}); err == nil {
		t.Error("expected error for odd-length input")
	}
}

func TestFloatsToBytesClamps(t *testing.T) {
	got := FloatsToBytes([]float64{2.0, -2.0})
	hi := int16(binary.LittleEndian.Uint16(got[0:2]))
	lo := int16(binary.LittleEndian.Uint16(got[2:4]))
	if hi != 32767 {
		t.Errorf("expected clamp to max int16, got %d", hi)
	}
	if lo != -32768 && lo != -32767 {
		t.Errorf("expected clamp near min int16, got %d", lo)
	}
}

func TestSampleFormatString(t *testing.T) {
	if S16_LE.String() != "S16_LE" {
		t.Errorf("got %q, want S16_LE", S16_LE.String())
	}
	if SampleFormat(99).String() != "Unknown" {
		t.Errorf("got %q, want Unknown", SampleFormat(99).String())
	}
}
