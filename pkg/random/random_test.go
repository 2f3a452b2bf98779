package random

import (
	"encoding/hex"
	"testing"
)

func TestUUID(t *testing.T) {
	id := UUID()
	if len(id) != 32 {
		t.Fatalf("unexpected length %d", len(id))
	}
	b, err := hex.DecodeString(id)
	if err != nil {
		t.Fatal(err)
	}
	if b[6]>>4 != 4 {
		t.Fatalf("unexpected version %x", b[6]>>4)
	}
	if b[8]&0xC0 != 0x80 {
		t.Fatalf("unexpected variant %x", b[8])
	}
	if UUID() == id {
		t.Fatal("expected distinct ids")
	}
}

func TestHex(t *testing.T) {
	if s := Hex(8); len(s) != 16 {
		t.Fatalf("unexpected length %d", len(s))
	}
}
