package flatbuffers

import "math"

// 本文件定义 FlatBuffers 线上格式使用的基础类型、常量，以及把这些类型与一段
// []byte 相互转换的编解码函数。Builder 和 Table 都只依赖这里的函数来读写字节，
// 不直接操作 encoding/binary ，这样可以在一个地方统一小端序与对齐规则。

// UOffsetT is an unsigned offset, relative to the end of the buffer, used to
// identify a just-written value ("handle"), and as the forward-pointing
// offset stored inside tables, vectors, and strings.
type UOffsetT uint32

// SOffsetT is a signed offset used exclusively by a table to locate its
// vtable (vtable position = table position - SOffsetT); positive when, as
// is the common case, the vtable was written after (i.e. at a lower address
// than) the table itself.
type SOffsetT int32

// VOffsetT is an unsigned offset used inside a vtable to locate a field
// within its table, or the sentinel value 0 to mean "field absent".
type VOffsetT uint16

// TableUnfinishedOffset identifies an object under construction: the
// Offset() that StartObject records (in Builder.objectEnd) before any field
// has been written. WriteVtable subtracts it from the table's start to get
// the object's inline size; field offsets are measured from the table's
// start instead.
type TableUnfinishedOffset = UOffsetT

// TableFinishedOffset identifies a table once EndObject has synthesized and
// (possibly deduplicated) its vtable. The Finish* methods take one as the
// root; since it is an alias of UOffsetT, any handle (a VectorOffset, for
// instance) is accepted there as well.
type TableFinishedOffset = UOffsetT

// VTableOffset identifies a written vtable region, as stored in
// Builder.vtables for deduplication.
type VTableOffset = UOffsetT

// VectorOffset identifies a finished vector (its length-prefix word).
type VectorOffset = UOffsetT

// StringOffset identifies a finished, NUL-terminated string (itself a byte
// vector under the hood).
type StringOffset = UOffsetT

// Byte widths of the wire types above, and of each scalar Prep/Place
// understands. Every Prep call aligns to one of these.
const (
	SizeBool  = 1
	SizeByte  = 1
	SizeUint8 = 1
	SizeInt8  = 1

	SizeUint16 = 2
	SizeInt16  = 2

	SizeUint32  = 4
	SizeInt32   = 4
	SizeFloat32 = 4

	SizeUint64  = 8
	SizeInt64   = 8
	SizeFloat64 = 8

	SizeUOffsetT = 4
	SizeSOffsetT = 4
	SizeVOffsetT = 2
)

// VtableMetadataFields is the count of u16 header fields every vtable
// carries ahead of its per-field slots: its own byte length, and the
// object's inline byte size.
const VtableMetadataFields = 2

// FileIdentifierLength is the fixed width, in bytes, of an optional file
// identifier pushed by Finish*WithFileIdentifier.
const FileIdentifierLength = 4

// MaxBufferSize is the largest buffer this format can describe: offsets are
// 32-bit, and the sign bit is reserved, so 2 GiB - 1 is the hard ceiling.
const MaxBufferSize = 1<<31 - 1

// GetBool decodes a bool from the first byte of buf.
func GetBool(buf []byte) bool {
	return buf[0] != 0
}

// WriteBool encodes a bool into the first byte of buf.
func WriteBool(buf []byte, x bool) {
	if x {
		buf[0] = 1
	} else {
		buf[0] = 0
	}
}

// GetByte decodes a byte from the first byte of buf.
func GetByte(buf []byte) byte { return buf[0] }

// WriteByte encodes a byte into the first byte of buf.
func WriteByte(buf []byte, x byte) { buf[0] = x }

// GetUint8 decodes a uint8 from the first byte of buf.
func GetUint8(buf []byte) uint8 { return buf[0] }

// WriteUint8 encodes a uint8 into the first byte of buf.
func WriteUint8(buf []byte, x uint8) { buf[0] = x }

// GetInt8 decodes an int8 from the first byte of buf.
func GetInt8(buf []byte) int8 { return int8(buf[0]) }

// WriteInt8 encodes an int8 into the first byte of buf.
func WriteInt8(buf []byte, x int8) { buf[0] = byte(x) }

// GetUint16 decodes a little-endian uint16 from the first two bytes of buf.
func GetUint16(buf []byte) uint16 {
	return uint16(buf[0]) | uint16(buf[1])<<8
}

// WriteUint16 encodes x little-endian into the first two bytes of buf.
func WriteUint16(buf []byte, x uint16) {
	buf[0] = byte(x)
	buf[1] = byte(x >> 8)
}

// GetInt16 decodes a little-endian int16 from the first two bytes of buf.
func GetInt16(buf []byte) int16 { return int16(GetUint16(buf)) }

// WriteInt16 encodes x little-endian into the first two bytes of buf.
func WriteInt16(buf []byte, x int16) { WriteUint16(buf, uint16(x)) }

// GetVOffsetT decodes a VOffsetT from the first two bytes of buf.
func GetVOffsetT(buf []byte) VOffsetT { return VOffsetT(GetUint16(buf)) }

// WriteVOffsetT encodes x into the first two bytes of buf.
func WriteVOffsetT(buf []byte, x VOffsetT) { WriteUint16(buf, uint16(x)) }

// GetUint32 decodes a little-endian uint32 from the first four bytes of buf.
func GetUint32(buf []byte) uint32 {
	return uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
}

// WriteUint32 encodes x little-endian into the first four bytes of buf.
func WriteUint32(buf []byte, x uint32) {
	buf[0] = byte(x)
	buf[1] = byte(x >> 8)
	buf[2] = byte(x >> 16)
	buf[3] = byte(x >> 24)
}

// GetInt32 decodes a little-endian int32 from the first four bytes of buf.
func GetInt32(buf []byte) int32 { return int32(GetUint32(buf)) }

// WriteInt32 encodes x little-endian into the first four bytes of buf.
func WriteInt32(buf []byte, x int32) { WriteUint32(buf, uint32(x)) }

// GetUOffsetT decodes a UOffsetT from the first four bytes of buf.
func GetUOffsetT(buf []byte) UOffsetT { return UOffsetT(GetUint32(buf)) }

// WriteUOffsetT encodes x into the first four bytes of buf.
func WriteUOffsetT(buf []byte, x UOffsetT) { WriteUint32(buf, uint32(x)) }

// GetSOffsetT decodes a SOffsetT from the first four bytes of buf.
func GetSOffsetT(buf []byte) SOffsetT { return SOffsetT(GetInt32(buf)) }

// WriteSOffsetT encodes x into the first four bytes of buf.
func WriteSOffsetT(buf []byte, x SOffsetT) { WriteInt32(buf, int32(x)) }

// GetFloat32 decodes a little-endian IEEE-754 float32 from the first four
// bytes of buf.
func GetFloat32(buf []byte) float32 {
	return math.Float32frombits(GetUint32(buf))
}

// WriteFloat32 encodes x little-endian into the first four bytes of buf.
func WriteFloat32(buf []byte, x float32) {
	WriteUint32(buf, math.Float32bits(x))
}

// GetUint64 decodes a little-endian uint64 from the first eight bytes of buf.
func GetUint64(buf []byte) uint64 {
	return uint64(buf[0]) | uint64(buf[1])<<8 | uint64(buf[2])<<16 | uint64(buf[3])<<24 |
		uint64(buf[4])<<32 | uint64(buf[5])<<40 | uint64(buf[6])<<48 | uint64(buf[7])<<56
}

// WriteUint64 encodes x little-endian into the first eight bytes of buf.
func WriteUint64(buf []byte, x uint64) {
	buf[0] = byte(x)
	buf[1] = byte(x >> 8)
	buf[2] = byte(x >> 16)
	buf[3] = byte(x >> 24)
	buf[4] = byte(x >> 32)
	buf[5] = byte(x >> 40)
	buf[6] = byte(x >> 48)
	buf[7] = byte(x >> 56)
}

// GetInt64 decodes a little-endian int64 from the first eight bytes of buf.
func GetInt64(buf []byte) int64 { return int64(GetUint64(buf)) }

// WriteInt64 encodes x little-endian into the first eight bytes of buf.
func WriteInt64(buf []byte, x int64) { WriteUint64(buf, uint64(x)) }

// GetFloat64 decodes a little-endian IEEE-754 float64 from the first eight
// bytes of buf.
func GetFloat64(buf []byte) float64 {
	return math.Float64frombits(GetUint64(buf))
}

// WriteFloat64 encodes x little-endian into the first eight bytes of buf.
func WriteFloat64(buf []byte, x float64) {
	WriteUint64(buf, math.Float64bits(x))
}

