package hash

import "testing"

func TestSHA256Hex(t *testing.T) {
	// Known vector: sha256("abc")
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := SHA256Hex("abc"); got != want {
		t.Errorf("SHA256Hex(\"abc\") = %s, want %s", got, want)
	}
}

func TestSHA256Hex_Deterministic(t *testing.T) {
	a := SHA256Hex("192.168.1.1")
	b := SHA256Hex("192.168.1.1")
	if a != b {
		t.Error("same input must hash identically")
	}
	if SHA256Hex("192.168.1.2") == a {
		t.Error("different inputs must not collide trivially")
	}
}

func TestShortHash(t *testing.T) {
	full := SHA256Hex("input")

	if got := ShortHash("input", 12); got != full[:12] {
		t.Errorf("ShortHash = %s, want %s", got, full[:12])
	}
	if got := ShortHash("input", 1000); got != full {
		t.Errorf("oversized n should return the full hash, got %s", got)
	}
}
