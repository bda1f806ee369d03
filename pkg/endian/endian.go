// Package endian holds the byte-order helpers used when marshalling KMS
// protocol messages: byte swaps, host/wire conversions and unaligned loads
// and stores.
package endian

import (
	"encoding/binary"
	"math/bits"
)

var littleEndianHost = binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 0x0001

// IsLittleEndian reports whether the host stores integers least significant byte first.
func IsLittleEndian() bool { return littleEndianHost }

// BS16 reverses the byte order of v.
func BS16(v uint16) uint16 { return bits.ReverseBytes16(v) }

// BS32 reverses the byte order of v.
func BS32(v uint32) uint32 { return bits.ReverseBytes32(v) }

// BS64 reverses the byte order of v.
func BS64(v uint64) uint64 { return bits.ReverseBytes64(v) }

// LE16 converts between host order and little-endian. It is its own inverse.
func LE16(v uint16) uint16 {
	if littleEndianHost {
		return v
	}
	return BS16(v)
}

// LE32 converts between host order and little-endian.
func LE32(v uint32) uint32 {
	if littleEndianHost {
		return v
	}
	return BS32(v)
}

// LE64 converts between host order and little-endian.
func LE64(v uint64) uint64 {
	if littleEndianHost {
		return v
	}
	return BS64(v)
}

// BE16 converts between host order and big-endian. It is its own inverse.
func BE16(v uint16) uint16 {
	if littleEndianHost {
		return BS16(v)
	}
	return v
}

// BE32 converts between host order and big-endian.
func BE32(v uint32) uint32 {
	if littleEndianHost {
		return BS32(v)
	}
	return v
}

// BE64 converts between host order and big-endian.
func BE64(v uint64) uint64 {
	if littleEndianHost {
		return BS64(v)
	}
	return v
}

// GetUA16LE reads a little-endian uint16 from the first 2 bytes of b, which need not be aligned.
func GetUA16LE(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }

// GetUA32LE reads a little-endian uint32 from the first 4 bytes of b, which need not be aligned.
func GetUA32LE(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }

// GetUA64LE reads a little-endian uint64 from the first 8 bytes of b, which need not be aligned.
func GetUA64LE(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }

// GetUA16BE reads a big-endian uint16 from the first 2 bytes of b, which need not be aligned.
func GetUA16BE(b []byte) uint16 { return binary.BigEndian.Uint16(b) }

// GetUA32BE reads a big-endian uint32 from the first 4 bytes of b, which need not be aligned.
func GetUA32BE(b []byte) uint32 { return binary.BigEndian.Uint32(b) }

// GetUA64BE reads a big-endian uint64 from the first 8 bytes of b, which need not be aligned.
func GetUA64BE(b []byte) uint64 { return binary.BigEndian.Uint64(b) }

// PutUA16LE stores v into the first 2 bytes of b in little-endian order.
func PutUA16LE(b []byte, v uint16) { binary.LittleEndian.PutUint16(b, v) }

// PutUA32LE stores v into the first 4 bytes of b in little-endian order.
func PutUA32LE(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }

// PutUA64LE stores v into the first 8 bytes of b in little-endian order.
func PutUA64LE(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) }

// PutUA16BE stores v into the first 2 bytes of b in big-endian order.
func PutUA16BE(b []byte, v uint16) { binary.BigEndian.PutUint16(b, v) }

// PutUA32BE stores v into the first 4 bytes of b in big-endian order.
func PutUA32BE(b []byte, v uint32) { binary.BigEndian.PutUint32(b, v) }

// PutUA64BE stores v into the first 8 bytes of b in big-endian order.
func PutUA64BE(b []byte, v uint64) { binary.BigEndian.PutUint64(b, v) }
