package flatbuffers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode_RoundTrips(t *testing.T) {
	buf := make([]byte, 8)

	WriteBool(buf, true)
	assert.True(t, GetBool(buf))

	WriteUint16(buf, 0xBEEF)
	assert.EqualValues(t, 0xBEEF, GetUint16(buf))

	WriteInt16(buf, -1234)
	assert.EqualValues(t, -1234, GetInt16(buf))

	WriteUint32(buf, 0xDEADBEEF)
	assert.EqualValues(t, 0xDEADBEEF, GetUint32(buf))

	WriteInt32(buf, -123456)
	assert.EqualValues(t, -123456, GetInt32(buf))

	WriteUint64(buf, 0x0102030405060708)
	assert.EqualValues(t, 0x0102030405060708, GetUint64(buf))

	WriteInt64(buf, -9000000000)
	assert.EqualValues(t, -9000000000, GetInt64(buf))

	WriteFloat32(buf, 3.25)
	assert.EqualValues(t, float32(3.25), GetFloat32(buf))

	WriteFloat64(buf, math.Pi)
	assert.Equal(t, math.Pi, GetFloat64(buf))
}

func TestEncode_LittleEndianByteOrder(t *testing.T) {
	buf := make([]byte, 4)
	WriteUint32(buf, 0x01020304)
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf)
}
