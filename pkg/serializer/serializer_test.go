package serializer

import (
	"bytes"
	"testing"

	"txkernel/pkg/constants"
	"txkernel/pkg/types"

	"github.com/google/go-cmp/cmp"
)

func TestEncodeFelts(t *testing.T) {
	got := EncodeFelts([]types.Felt{1, 0x0102030405060708})
	want := []byte{
		1, 0, 0, 0, 0, 0, 0, 0,
		8, 7, 6, 5, 4, 3, 2, 1,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("EncodeFelts = %x, want %x", got, want)
	}
	if len(EncodeFelts(nil)) != 0 {
		t.Error("empty sequence should encode to no bytes")
	}
}

func TestDecodeFelts(t *testing.T) {
	felts := []types.Felt{0, 7, types.Felt(constants.FeltModulus - 1)}
	got, err := DecodeFelts(EncodeFelts(felts))
	if err != nil {
		t.Fatalf("DecodeFelts: %v", err)
	}
	if diff := cmp.Diff(felts, got); diff != "" {
		t.Errorf("DecodeFelts mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeFeltsErrors(t *testing.T) {
	if _, err := DecodeFelts(make([]byte, 9)); err == nil {
		t.Error("expected error for partial element")
	}
	if _, err := DecodeFelts(EncodeLittleEndian(8, constants.FeltModulus)); err == nil {
		t.Error("expected error for non-canonical element")
	}
}

func TestLittleEndianWidths(t *testing.T) {
	for _, octets := range []int{1, 2, 3, 4, 8} {
		x := uint64(0x0102030405060708) & (1<<(8*uint(octets)) - 1)
		if octets == 8 {
			x = 0x0102030405060708
		}
		enc := EncodeLittleEndian(octets, x)
		if len(enc) != octets {
			t.Fatalf("EncodeLittleEndian(%d) produced %d bytes", octets, len(enc))
		}
		if got := DecodeLittleEndian(enc); got != x {
			t.Errorf("octets %d: decoded %#x, want %#x", octets, got, x)
		}
	}
}
