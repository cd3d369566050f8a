/*
NAME
  aes.go

DESCRIPTION
  aes.go wraps AES-256-CTR encryption/decryption, the external
  cryptographic primitive the frame codec's ciphertext payload is
  built around. Along with the WAV codec, it is one of this link's
  two external collaborators; it is deliberately a thin wrapper around
  the standard library rather than a reimplemented cipher.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package acousticenc provides the AES-256-CTR encrypt/decrypt
// primitive used to protect the acoustic link's frame payload.
package acousticenc

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/pkg/errors"
)

// KeySize is the required AES-256 key size in bytes.
const KeySize = 32

// IVSize is the required CTR-mode IV (nonce) size in bytes, matching
// AES's 16-byte block size.
const IVSize = aes.BlockSize

// Encrypt returns the AES-256-CTR keystream XOR of plaintext, using
// key (32 bytes) and iv (16 bytes).
func Encrypt(key, iv, plaintext []byte) ([]byte, error) {
	return xorCTR(key, iv, plaintext)
}

// Decrypt reverses Encrypt; CTR mode is its own inverse.
func Decrypt(key, iv, ciphertext []byte) ([]byte, error) {
	return xorCTR(key, iv, ciphertext)
}

func xorCTR(key, iv, in []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, errors.Errorf("acousticenc: key must be %d bytes, got %d", KeySize, len(key))
	}
	if len(iv) != IVSize {
		return nil, errors.Errorf("acousticenc: iv must be %d bytes, got %d", IVSize, len(iv))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "acousticenc: could not create AES cipher")
	}

	out := make([]byte, len(in))
	stream := cipher.NewCTR(block, iv)
	stream.XORKeyStream(out, in)
	return out, nil
}
