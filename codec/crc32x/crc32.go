/*
NAME
  crc32.go

DESCRIPTION
  crc32.go implements the table-driven, reflected IEEE 802.3 CRC-32
  used to verify the integrity of a transmitted frame. The table is
  built by hand rather than taken from hash/crc32, the same way
  container/mts/psi/crc.go hand rolls its own MPEG-style CRC rather
  than calling a library checksum function; this one is bit-for-bit
  the standard reflected polynomial (0xEDB88320), which counterpart
  implementations must reproduce exactly.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package crc32x provides the reflected IEEE 802.3 CRC-32 used by the
// frame codec to detect corruption in a recovered frame.
package crc32x

// polynomial is the reflected form of the standard IEEE 802.3
// CRC-32 polynomial.
const polynomial uint32 = 0xEDB88320

// table is built once at process start and is read-only thereafter.
var table = makeTable()

func makeTable() [256]uint32 {
	var t [256]uint32
	for i := range t {
		crc := uint32(i)
		for j := 0; j < 8; j++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ polynomial
			} else {
				crc >>= 1
			}
		}
		t[i] = crc
	}
	return t
}

// Checksum computes the CRC-32 (reflected IEEE 802.3 polynomial,
// initial register 0xFFFFFFFF, final XOR 0xFFFFFFFF) over b.
func Checksum(b []byte) uint32 {
	crc := uint32(0xFFFFFFFF)
	for _, v := range b {
		crc = table[byte(crc)^v] ^ (crc >> 8)
	}
	return crc ^ 0xFFFFFFFF
}
