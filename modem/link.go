/*
NAME
  link.go

DESCRIPTION
  link.go is the modem's top-level entry point: Encode renders a
  plaintext message into a BFSK waveform, and Decode runs front-end
  conditioning, two-stage acquisition, majority-vote demodulation,
  frame verification, and AES-256-CTR decryption over a recorded
  waveform to recover it, tracking the extraction state machine
  and producing diagnostics for the CLI.

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
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/Hossein-sfa/Robust-Audio-Link/codec/acousticenc"
	"github.com/Hossein-sfa/Robust-Audio-Link/codec/dsp"
	"github.com/Hossein-sfa/Robust-Audio-Link/codec/frame"
	"github.com/Hossein-sfa/Robust-Audio-Link/internal/logging"
)

// State names a step of the frame extraction state machine.
type State int

const (
	Idle State = iota
	CoarseSearching
	Refining
	DecodingHeader
	DecodingPayload
	Verifying
	Decrypting
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case CoarseSearching:
		return "COARSE_SEARCHING"
	case Refining:
		return "REFINING"
	case DecodingHeader:
		return "DECODING_HEADER"
	case DecodingPayload:
		return "DECODING_PAYLOAD"
	case Verifying:
		return "VERIFYING"
	case Decrypting:
		return "DECRYPTING"
	case Done:
		return "DONE"
	case Failed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// Diagnostics reports the acquisition results a decode attempt
// produced, for post-mortem CLI output, regardless of whether the
// attempt ultimately succeeded.
type Diagnostics struct {
	State         State
	Off           int64
	PreambleScore int
	PreambleBits  int
	BestPos       int64
	Invert        bool
}

// Encode builds a complete BFSK waveform carrying plaintext, encrypted
// with AES-256-CTR under key/iv, at sampleRate Hz. If cover is
// non-empty every symbol is mixed with it instead of transmitted at
// full strength.
func Encode(plaintext, key, iv []byte, sampleRate int, cover []float64) ([]float64, error) {
	if len(plaintext) == 0 {
		return nil, errors.Wrap(ErrInput, "empty message")
	}

	ciphertext, err := acousticenc.Encrypt(key, iv, plaintext)
	if err != nil {
		return nil, errors.Wrap(ErrDecryptFailed, err.Error())
	}

	frameBytes, err := frame.Build(ciphertext)
	if err != nil {
		return nil, mapFrameErr(err)
	}

	samples, err := Modulate(frameBytes, sampleRate, cover)
	if err != nil {
		return nil, err
	}
	return samples, nil
}

// Decode recovers the plaintext frame carried in x, a recorded
// waveform at sampleRate Hz, decrypting with key/iv. log receives
// structured diagnostics as acquisition proceeds; a nil log is
// replaced with a no-op logger. The returned Diagnostics are valid
// even when err is non-nil, reflecting how far acquisition got.
func Decode(x []float64, sampleRate int, key, iv []byte, log logging.Logger) ([]byte, Diagnostics, error) {
	if log == nil {
		log = nopLogger{}
	}

	diag := Diagnostics{State: Idle}
	if len(x) == 0 {
		diag.State = Failed
		return nil, diag, errors.Wrap(ErrInput, "empty audio")
	}

	fs := float64(sampleRate)
	spb := samplesPerBit(fs)
	if spb < minSamplesPerBit {
		diag.State = Failed
		return nil, diag, wrapConfigErr(spb, sampleRate)
	}
	preBits := preambleBits()
	diag.PreambleBits = preBits

	buf := make([]float64, len(x))
	copy(buf, x)
	dsp.Condition(buf, fs)

	diag.State = CoarseSearching
	off, invert, score, err := coarsePreambleSearch(buf, fs, spb, preBits)
	diag.Off = off
	diag.PreambleScore = score
	if err != nil {
		diag.State = Failed
		log.Warning("sync not found", "search_max_s", coarseSearchSeconds)
		return nil, diag, err
	}
	log.Info("coarse sync found", "off", off, "invert", invert, "score", score, "pre_bits", preBits)

	diag.State = Refining
	bestPos, invert, err := magicAnchoredRefine(buf, fs, spb, preBits, off)
	if err != nil {
		diag.State = Failed
		log.Warning("magic not found", "off", off)
		return nil, diag, err
	}
	diag.BestPos = bestPos
	diag.Invert = invert
	log.Info("magic anchored", "best_pos", bestPos, "invert", invert)

	diag.State = DecodingHeader
	header, cursor, ok := decodeHeaderBytes(buf, bestPos, spb, fs, invert)
	if !ok {
		diag.State = Failed
		return nil, diag, errors.Wrap(ErrInternalInconsistency, "header window ran past buffer")
	}
	var gotMagic [4]byte
	copy(gotMagic[:], header[:4])
	if gotMagic != frame.Magic {
		diag.State = Failed
		return nil, diag, errors.Wrap(ErrInternalInconsistency, "magic disagreed after refinement")
	}

	lenVal := binary.BigEndian.Uint32(header[4:8])
	if lenVal == 0 || lenVal > frame.MaxCiphertextLen {
		diag.State = Failed
		return nil, diag, errors.Wrapf(ErrInvalidLength, "len=%d", lenVal)
	}

	diag.State = DecodingPayload
	full := make([]byte, frame.Len(int(lenVal)))
	copy(full[:frame.HeaderSize], header[:])
	for i := 0; i < int(lenVal)+frame.CRCSize; i++ {
		b, next, err := decodeByte(buf, cursor, spb, fs, invert)
		if err != nil {
			diag.State = Failed
			return nil, diag, errors.Wrap(ErrInternalInconsistency, "payload/crc window ran past buffer")
		}
		full[frame.HeaderSize+i] = b
		cursor = next
	}

	diag.State = Verifying
	ciphertext, err := frame.Parse(full)
	if err != nil {
		diag.State = Failed
		return nil, diag, mapFrameErr(err)
	}

	diag.State = Decrypting
	plaintext, err := acousticenc.Decrypt(key, iv, ciphertext)
	if err != nil {
		diag.State = Failed
		return nil, diag, errors.Wrap(ErrDecryptFailed, err.Error())
	}

	diag.State = Done
	return plaintext, diag, nil
}

// decodeHeaderBytes decodes frame.HeaderSize bytes starting at pos,
// returning the advanced cursor and false if the window ran past buf.
func decodeHeaderBytes(buf []float64, pos int64, spb int, fs float64, invert bool) (header [frame.HeaderSize]byte, cursor int64, ok bool) {
	cursor = pos
	for i := 0; i < frame.HeaderSize; i++ {
		b, next, err := decodeByte(buf, cursor, spb, fs, invert)
		if err != nil {
			return header, cursor, false
		}
		header[i] = b
		cursor = next
	}
	return header, cursor, true
}

// mapFrameErr translates a codec/frame error into the modem's own
// error taxonomy, preserving the underlying message.
func mapFrameErr(err error) error {
	switch errors.Cause(err) {
	case frame.ErrInvalidLength:
		return errors.Wrap(ErrInvalidLength, err.Error())
	case frame.ErrCRCMismatch:
		return errors.Wrap(ErrCRCMismatch, err.Error())
	case frame.ErrBadMagic, frame.ErrTruncated:
		return errors.Wrap(ErrInternalInconsistency, err.Error())
	default:
		return err
	}
}

// nopLogger discards everything; used when Decode is called without a
// logger.
type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{})   {}
func (nopLogger) Info(string, ...interface{})    {}
func (nopLogger) Warning(string, ...interface{}) {}
func (nopLogger) Error(string, ...interface{})   {}
func (nopLogger) Fatal(string, ...interface{})   {}
