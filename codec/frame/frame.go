/*
NAME
  frame.go

DESCRIPTION
  frame.go builds and parses the self-delimiting STEG frame that
  carries an AES-256-CTR ciphertext over the acoustic link:

    offset 0..3        : ASCII 'S','T','E','G' (magic)
    offset 4..7        : LEN, ciphertext length, unsigned 32-bit BE
    offset 8..8+LEN-1  : CIPHERTEXT
    offset 8+LEN..+3   : CRC32, big-endian, over bytes [0, 8+LEN)

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package frame builds and parses the STEG/LEN/CIPHERTEXT/CRC32 frame
// that the modem transmits and recovers.
package frame

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/Hossein-sfa/Robust-Audio-Link/codec/crc32x"
)

// Magic is the 4-byte ASCII marker that opens every frame.
var Magic = [4]byte{'S', 'T', 'E', 'G'}

// HeaderSize is the size in bytes of the magic + LEN header.
const HeaderSize = 8

// CRCSize is the size in bytes of the trailing CRC32 field.
const CRCSize = 4

// MaxCiphertextLen is the largest LEN the wire format permits.
const MaxCiphertextLen = 2_000_000

var (
	// ErrInvalidLength is returned when LEN is zero or exceeds MaxCiphertextLen.
	ErrInvalidLength = errors.New("invalid length")
	// ErrCRCMismatch is returned when the computed and stored CRC32 disagree.
	ErrCRCMismatch = errors.New("CRC mismatch")
	// ErrBadMagic is returned when the header's first four bytes aren't "STEG".
	ErrBadMagic = errors.New("bad magic")
	// ErrTruncated is returned when fewer bytes are available than the
	// header or LEN field declares.
	ErrTruncated = errors.New("truncated frame")
)

// Build assembles a complete frame around ciphertext, computing LEN
// and the trailing CRC32. It returns ErrInvalidLength if ciphertext's
// length is zero or exceeds MaxCiphertextLen.
func Build(ciphertext []byte) ([]byte, error) {
	n := len(ciphertext)
	if n <= 0 || n > MaxCiphertextLen {
		return nil, errors.Wrapf(ErrInvalidLength, "len=%d", n)
	}

	out := make([]byte, HeaderSize+n+CRCSize)
	copy(out[0:4], Magic[:])
	binary.BigEndian.PutUint32(out[4:8], uint32(n))
	copy(out[HeaderSize:HeaderSize+n], ciphertext)

	crc := crc32x.Checksum(out[:HeaderSize+n])
	binary.BigEndian.PutUint32(out[HeaderSize+n:], crc)

	return out, nil
}

// Parse validates and extracts the ciphertext from a complete frame
// buffer. b must contain exactly one frame (no trailing bytes beyond
// the CRC32 field); the acquisition stage is responsible for slicing
// exactly HeaderSize+LEN+CRCSize bytes before calling Parse.
func Parse(b []byte) (ciphertext []byte, err error) {
	if len(b) < HeaderSize+CRCSize {
		return nil, ErrTruncated
	}
	if b[0] != Magic[0] || b[1] != Magic[1] || b[2] != Magic[2] || b[3] != Magic[3] {
		return nil, ErrBadMagic
	}

	n := int(binary.BigEndian.Uint32(b[4:8]))
	if n <= 0 || n > MaxCiphertextLen {
		return nil, errors.Wrapf(ErrInvalidLength, "len=%d", n)
	}
	if len(b) < HeaderSize+n+CRCSize {
		return nil, ErrTruncated
	}

	want := binary.BigEndian.Uint32(b[HeaderSize+n : HeaderSize+n+CRCSize])
	got := crc32x.Checksum(b[:HeaderSize+n])
	if got != want {
		return nil, errors.Wrapf(ErrCRCMismatch, "computed %#x, stored %#x", got, want)
	}

	ciphertext = make([]byte, n)
	copy(ciphertext, b[HeaderSize:HeaderSize+n])
	return ciphertext, nil
}

// Len returns the total wire length of a frame carrying a ciphertext
// of the given length.
func Len(ciphertextLen int) int {
	return HeaderSize + ciphertextLen + CRCSize
}
