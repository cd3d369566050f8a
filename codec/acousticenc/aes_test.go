/*
NAME
  aes_test.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package acousticenc

import (
	"bytes"
	"testing"
)

var (
	testKey = []byte("01234567890123456789012345678901")
	testIV  = []byte("0123456789012345")
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"hi",
		"hello, world",
		"a longer message with punctuation! 123...",
	}
	for _, pt := range tests {
		ct, err := Encrypt(testKey, testIV, []byte(pt))
		if err != nil {
			t.Fatalf("Encrypt(%q): %v", pt, err)
		}
		got, err := Decrypt(testKey, testIV, ct)
		if err != nil {
			t.Fatalf("Decrypt(%q): %v", pt, err)
		}
		if !bytes.Equal(got, []byte(pt)) {
			t.Errorf("round trip mismatch: got %q, want %q", got, pt)
		}
	}
}

func TestRejectsBadKeySize(t *testing.T) {
	if _, err := Encrypt([]byte("tooshort"), testIV, []byte("x")); err == nil {
		t.Error("expected error for short key")
	}
}

func TestRejectsBadIVSize(t *testing.T) {
	if _, err := Encrypt(testKey, []byte("short"), []byte("x")); err == nil {
		t.Error("expected error for short iv")
	}
}
