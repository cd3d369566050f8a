/*
NAME
  errors.go

DESCRIPTION
  errors.go declares the sentinel error taxonomy a decode attempt can
  fail with. Most are wrapped with context via github.com/pkg/errors
  where they are returned, so a diagnostic chain survives to the CLI's
  stderr output; ErrSyncNotFound and ErrMagicNotFound are returned
  unwrapped.

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

import "github.com/pkg/errors"

var (
	// ErrInput covers unreadable/empty audio or a missing message.
	ErrInput = errors.New("input error")
	// ErrConfig covers spb < 40 (sample rate too low for BIT_DURATION).
	ErrConfig = errors.New("config error")
	// ErrSyncNotFound means stage 1 produced no candidate within search_max.
	ErrSyncNotFound = errors.New("sync not found")
	// ErrMagicNotFound means stage 2 exhausted its window without matching STEG.
	ErrMagicNotFound = errors.New("magic not found")
	// ErrInvalidLength means the LEN field is zero or exceeds the wire maximum.
	ErrInvalidLength = errors.New("invalid length")
	// ErrCRCMismatch means the computed and stored CRC32 disagree.
	ErrCRCMismatch = errors.New("crc mismatch")
	// ErrDecryptFailed means the AES primitive reported failure.
	ErrDecryptFailed = errors.New("decrypt failed")
	// ErrInternalInconsistency means refinement succeeded but the re-read
	// magic disagrees; this should never occur and indicates a bug.
	ErrInternalInconsistency = errors.New("internal inconsistency")
)

func wrapConfigErr(spb, sampleRate int) error {
	return errors.Wrapf(ErrConfig, "spb=%d too small at %d Hz (need >= %d)", spb, sampleRate, minSamplesPerBit)
}
