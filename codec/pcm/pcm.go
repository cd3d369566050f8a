/*
NAME
  pcm.go

DESCRIPTION
  pcm.go contains functions for processing pcm.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package pcm provides functions for processing and converting pcm audio.
package pcm

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// SampleFormat is the format that a PCM Buffer's samples can be in.
type SampleFormat int

// Sample formats that we use.
const (
	S16_LE SampleFormat = iota
	// There are many more:
	// https://linux.die.net/man/1/arecord
	// https://trac.ffmpeg.org/wiki/audio%20types
)

// BufferFormat contains the format for a PCM Buffer.
type BufferFormat struct {
	SFormat  SampleFormat
	Rate     uint
	Channels uint
}

// Buffer contains a buffer of PCM data and the format that it is in.
type Buffer struct {
	Format BufferFormat
	Data   []byte
}

// Downmix returns raw mono audio data generated by averaging all channels
// of the given Buffer. A mono Buffer is returned unchanged. This
// generalises the old left-channel-only stereo handling to an arbitrary
// channel count, since a recorded WAV may carry any number of channels.
func Downmix(c Buffer) (Buffer, error) {
	if c.Format.Channels == 0 {
		return Buffer{}, errors.New("buffer has zero channels")
	}
	if c.Format.Channels == 1 {
		return c, nil
	}
	if c.Format.SFormat != S16_LE {
		return Buffer{}, errors.Errorf("unhandled sample format %v", c.Format.SFormat)
	}

	const sampleBytes = 2
	channels := int(c.Format.Channels)
	frameBytes := sampleBytes * channels
	if len(c.Data)%frameBytes != 0 {
		return Buffer{}, errors.New("pcm data is not a whole number of multi-channel frames")
	}

	nFrames := len(c.Data) / frameBytes
	mono := make([]byte, nFrames*sampleBytes)
	for i := 0; i < nFrames; i++ {
		var sum int32
		base := i * frameBytes
		for ch := 0; ch < channels; ch++ {
			off := base + ch*sampleBytes
			sum += int32(int16(binary.LittleEndian.Uint16(c.Data[off : off+sampleBytes])))
		}
		avg := int16(sum / int32(channels))
		binary.LittleEndian.PutUint16(mono[i*sampleBytes:], uint16(avg))
	}

	// Return a new Buffer with downmixed data.
	return Buffer{
		Format: BufferFormat{
			Channels: 1,
			SFormat:  c.Format.SFormat,
			Rate:     c.Format.Rate,
		},
		Data: mono,
	}, nil
}

// BytesToFloats converts raw signed 16-bit little-endian PCM bytes into
// float64 samples in [-1, 1).
func BytesToFloats(b []byte) ([]float64, error) {
	if len(b)%2 != 0 {
		return nil, errors.New("pcm data has an odd number of bytes")
	}
	out := make([]float64, len(b)/2)
	for i := range out {
		s := int16(binary.LittleEndian.Uint16(b[i*2 : i*2+2]))
		out[i] = float64(s) / (math.MaxInt16 + 1)
	}
	return out, nil
}

// FloatsToBytes converts float64 samples into signed 16-bit
// little-endian PCM bytes, clamping any sample outside [-1, 1]. It is
// the inverse of BytesToFloats: samples are scaled by 32768 and
// rounded, with +1.0 saturating at 32767.
func FloatsToBytes(f []float64) []byte {
	out := make([]byte, len(f)*2)
	for i, v := range f {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		s := math.Round(v * (math.MaxInt16 + 1))
		if s > math.MaxInt16 {
			s = math.MaxInt16
		}
		binary.LittleEndian.PutUint16(out[i*2:], uint16(int16(s)))
	}
	return out
}

// String returns the string representation of a SampleFormat.
func (f SampleFormat) String() string {
	switch f {
	case S16_LE:
		return "S16_LE"
	default:
		return "Unknown"
	}
}
