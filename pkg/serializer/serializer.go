package serializer

import (
	"encoding/binary"
	"fmt"

	"txkernel/pkg/constants"
	"txkernel/pkg/types"
)

// EncodeFelts returns the little-endian encoding of each element, back to back.
func EncodeFelts(felts []types.Felt) []byte {
	buf := make([]byte, 0, len(felts)*constants.FeltSize)
	for _, f := range felts {
		buf = append(buf, EncodeLittleEndian(constants.FeltSize, uint64(f))...)
	}
	return buf
}

// DecodeFelts is the inverse of EncodeFelts. It rejects trailing bytes and
// values outside the field.
func DecodeFelts(data []byte) ([]types.Felt, error) {
	if len(data)%constants.FeltSize != 0 {
		return nil, fmt.Errorf("invalid felt sequence length %d: not a multiple of %d", len(data), constants.FeltSize)
	}
	felts := make([]types.Felt, 0, len(data)/constants.FeltSize)
	for offset := 0; offset < len(data); offset += constants.FeltSize {
		f, err := types.NewFelt(DecodeLittleEndian(data[offset : offset+constants.FeltSize]))
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", offset/constants.FeltSize, err)
		}
		felts = append(felts, f)
	}
	return felts, nil
}

func EncodeLittleEndian(octets int, x uint64) []byte {
	switch octets {
	case 1:
		return []byte{byte(x)}
	case 2:
		var buf [2]byte
		binary.LittleEndian.PutUint16(buf[:], uint16(x))
		return buf[:]
	case 4:
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], uint32(x))
		return buf[:]
	case 8:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], x)
		return buf[:]
	default:
		result := make([]byte, octets)
		for i := 0; i < octets; i++ {
			result[i] = byte(x)
			x >>= 8
		}
		return result
	}
}

func DecodeLittleEndian(b []byte) uint64 {
	switch len(b) {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(b))
	case 4:
		return uint64(binary.LittleEndian.Uint32(b))
	case 8:
		return binary.LittleEndian.Uint64(b)
	default:
		var x uint64
		for i, v := range b {
			x |= uint64(v) << (8 * i)
		}
		return x
	}
}
