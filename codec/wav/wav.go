/*
NAME
  wav.go

DESCRIPTION
  wav.go contains functions for processing wav.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package wav provides functions for reading and writing mono PCM audio
// as WAV files, the external collaborator the acoustic link layer uses
// for both its transmit output and its receive input.
package wav

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pkg/errors"

	"github.com/Hossein-sfa/Robust-Audio-Link/codec/pcm"
)

// PCMFormat defines the value for pcm audio as defined by the wav std.
const PCMFormat = 1

// bitDepth is the bit depth this package always reads and writes at;
// the link's modem operates on signed 16-bit PCM exclusively.
const bitDepth = 16

// ReadMonoPCM reads the WAV file at path and returns its audio as
// float64 samples in [-1, 1), downmixed to mono if the file carries
// more than one channel, along with the file's sample rate.
func ReadMonoPCM(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errors.Wrap(err, "could not open wav file")
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, errors.New("not a valid wav file")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, errors.Wrap(err, "could not decode wav file")
	}

	channels := uint(buf.Format.NumChannels)
	sampleRate := buf.Format.SampleRate

	raw := intsToPCMBytes(buf)

	mono, err := pcm.Downmix(pcm.Buffer{
		Format: pcm.BufferFormat{SFormat: pcm.S16_LE, Rate: uint(sampleRate), Channels: channels},
		Data:   raw,
	})
	if err != nil {
		return nil, 0, errors.Wrap(err, "could not downmix wav audio to mono")
	}

	samples, err := pcm.BytesToFloats(mono.Data)
	if err != nil {
		return nil, 0, errors.Wrap(err, "could not convert wav audio to float samples")
	}
	return samples, sampleRate, nil
}

// WriteMonoPCM writes samples (float64 in [-1, 1], clamped otherwise)
// as a single-channel 16-bit PCM WAV file at path, at the given sample
// rate.
func WriteMonoPCM(path string, samples []float64, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "could not create wav file")
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, 1, PCMFormat)
	defer enc.Close()

	raw := pcm.FloatsToBytes(samples)
	quantised, err := pcm.BytesToFloats(raw)
	if err != nil {
		return errors.Wrap(err, "could not re-quantise samples")
	}
	data := make([]int, len(quantised))
	for i, v := range quantised {
		data[i] = int(v * (1 << 15))
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return errors.Wrap(err, "could not write wav samples")
	}
	return nil
}

// intsToPCMBytes converts a decoded audio.IntBuffer's samples into
// signed 16-bit little-endian bytes, the wire shape codec/pcm expects.
func intsToPCMBytes(buf *audio.IntBuffer) []byte {
	floats := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		floats[i] = float64(v) / (1 << 15)
	}
	return pcm.FloatsToBytes(floats)
}
