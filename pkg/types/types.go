package types

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"txkernel/pkg/constants"
)

type Felt uint64

func NewFelt(value uint64) (Felt, error) {
	if value >= constants.FeltModulus {
		return 0, fmt.Errorf("invalid field element %d: must be less than %d", value, constants.FeltModulus)
	}
	return Felt(value), nil
}

func (f Felt) Uint64() uint64 {
	return uint64(f)
}

type Word [constants.WordSize]Felt

// Digest is a procedure commitment or an account code root.
type Digest Word

var ZeroDigest = Digest{}

func (d Digest) IsZero() bool {
	return d == ZeroDigest
}

// Bytes returns the little-endian encoding of each element, in order.
func (d Digest) Bytes() [constants.DigestSize]byte {
	var out [constants.DigestSize]byte
	for i, f := range d {
		binary.LittleEndian.PutUint64(out[i*constants.FeltSize:], uint64(f))
	}
	return out
}

func DigestFromBytes(b [constants.DigestSize]byte) (Digest, error) {
	var d Digest
	for i := range d {
		f, err := NewFelt(binary.LittleEndian.Uint64(b[i*constants.FeltSize:]))
		if err != nil {
			return ZeroDigest, fmt.Errorf("digest element %d: %w", i, err)
		}
		d[i] = f
	}
	return d, nil
}

func (d Digest) ToHex() string {
	b := d.Bytes()
	return "0x" + hex.EncodeToString(b[:])
}

func (d Digest) String() string {
	return d.ToHex()
}

// DigestFromHex parses a 32 byte hex string, with or without the 0x prefix.
func DigestFromHex(s string) (Digest, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return ZeroDigest, fmt.Errorf("failed to decode digest %q: %w", s, err)
	}
	if len(raw) != constants.DigestSize {
		return ZeroDigest, fmt.Errorf("invalid digest length: expected %d bytes, got %d", constants.DigestSize, len(raw))
	}
	var b [constants.DigestSize]byte
	copy(b[:], raw)
	return DigestFromBytes(b)
}

type ProcedureIndex uint8

const MockProcedureIndex ProcedureIndex = constants.MockProcedureIndex
