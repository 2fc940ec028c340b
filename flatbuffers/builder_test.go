package flatbuffers

import (
	"errors"
	"testing"

	"github.com/dinneo/fbbuild/fberr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_EmptyTable(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(0)
	tab := b.EndObject()
	b.Finish(tab)

	buf := b.FinishedBytes()
	require.NotEmpty(t, buf)

	root := GetUOffsetT(buf)
	vtableOff := UOffsetT(SOffsetT(root) - GetSOffsetT(buf[root:]))
	vtableLen := GetVOffsetT(buf[vtableOff:])
	assert.EqualValues(t, VtableMetadataFields*SizeVOffsetT, vtableLen)
}

func TestBuilder_SingleField(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(1)
	b.PrependInt32Slot(0, 42, 0)
	tab := b.EndObject()
	b.Finish(tab)

	buf := b.FinishedBytes()
	root := GetUOffsetT(buf)
	tbl := &Table{Bytes: buf, Pos: root}
	fieldOff := tbl.Offset(VtableMetadataFields * SizeVOffsetT)
	require.NotZero(t, fieldOff)
	assert.EqualValues(t, 42, GetInt32(buf[root+UOffsetT(fieldOff):]))
}

func TestBuilder_DefaultValueOmitsSlot(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(1)
	b.PrependInt32Slot(0, 0, 0)
	tab := b.EndObject()
	b.Finish(tab)

	buf := b.FinishedBytes()
	root := GetUOffsetT(buf)
	tbl := &Table{Bytes: buf, Pos: root}
	assert.Zero(t, tbl.Offset(VtableMetadataFields*SizeVOffsetT))
}

func TestBuilder_VtableDeduplication(t *testing.T) {
	b := NewBuilder(0)

	b.StartObject(2)
	b.PrependInt32Slot(0, 42, 0)
	t1 := b.EndObject()

	b.StartObject(2)
	b.PrependInt32Slot(0, 7, 0)
	t2 := b.EndObject()

	assert.Equal(t, 1, b.NumWrittenVtables())
	assert.NotEqual(t, t1, t2)
}

func TestBuilder_DistinctVtablesNotMerged(t *testing.T) {
	b := NewBuilder(0)

	b.StartObject(2)
	b.PrependInt32Slot(0, 42, 0)
	b.EndObject()

	b.StartObject(2)
	b.PrependInt32Slot(1, 42, 0) // same value, different slot -> different vtable
	b.EndObject()

	assert.Equal(t, 2, b.NumWrittenVtables())
}

func TestBuilder_VectorOfUint8(t *testing.T) {
	b := NewBuilder(0)
	v := b.CreateByteVector([]byte{1, 2, 3, 4, 5})
	b.Finish(v)

	buf := b.FinishedBytes()
	root := GetUOffsetT(buf)
	length := GetUOffsetT(buf[root:])
	assert.EqualValues(t, 5, length)
	data := buf[root+UOffsetT(SizeUOffsetT) : root+UOffsetT(SizeUOffsetT)+UOffsetT(length)]
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, data)
}

func TestBuilder_VectorOfOffsets(t *testing.T) {
	b := NewBuilder(0)

	b.StartObject(0)
	a := b.EndObject()
	b.StartObject(0)
	c := b.EndObject()

	v := CreateVectorOfOffsets(b, []UOffsetT{a, c})
	b.Finish(v)

	buf := b.FinishedBytes()
	root := GetUOffsetT(buf)
	length := GetUOffsetT(buf[root:])
	assert.EqualValues(t, 2, length)
}

func TestBuilder_CreateVectorOfStrings(t *testing.T) {
	b := NewBuilder(0)
	v := b.CreateVectorOfStrings([]string{"alpha", "beta", "gamma"})
	b.Finish(v)

	buf := b.FinishedBytes()
	root := GetUOffsetT(buf)
	length := GetUOffsetT(buf[root:])
	assert.EqualValues(t, 3, length)
}

func TestBuilder_FinishSizePrefixed(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(0)
	tab := b.EndObject()
	b.FinishSizePrefixed(tab)

	buf := b.FinishedBytes()
	size := GetUint32(buf)
	assert.EqualValues(t, len(buf)-SizeUOffsetT, size)
}

func TestBuilder_FinishWithFileIdentifier(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(0)
	tab := b.EndObject()
	fid := []byte("NAME")
	b.FinishWithFileIdentifier(tab, fid)

	buf := b.FinishedBytes()
	// The identifier sits at a fixed location right after the root
	// offset word, not through any indirection.
	assert.Equal(t, fid, buf[SizeUOffsetT:SizeUOffsetT+FileIdentifierLength])
}

func TestBuilder_FinishSizePrefixedWithFileIdentifier(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(0)
	tab := b.EndObject()
	fid := []byte("ABCD")
	b.FinishSizePrefixedWithFileIdentifier(tab, fid)

	buf := b.FinishedBytes()
	size := GetUint32(buf)
	assert.EqualValues(t, len(buf)-SizeUOffsetT, size)

	// [size(4)][root offset(4)][file identifier(4)][body...]
	assert.Equal(t, fid, buf[2*SizeUOffsetT:2*SizeUOffsetT+FileIdentifierLength])
}

func TestBuilder_BadFileIdentifierLength(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(0)
	tab := b.EndObject()

	recovered := func() (r interface{}) {
		defer func() { r = recover() }()
		b.FinishWithFileIdentifier(tab, []byte("short"))
		return nil
	}()

	require.NotNil(t, recovered)
	err, ok := recovered.(error)
	require.True(t, ok)

	var protoErr *fberr.ProtocolError
	require.True(t, errors.As(err, &protoErr))
	assert.Equal(t, fberr.BadFileIdentifierLength, protoErr.Kind)
}

func TestBuilder_GrowthPreservesOffsets(t *testing.T) {
	b := NewBuilder(1) // tiny initial size forces several growByteBuffer calls
	var handles []UOffsetT
	for i := 0; i < 64; i++ {
		handles = append(handles, b.CreateString("same-size"))
	}
	for _, h := range handles {
		assert.NotZero(t, h)
	}

	// The real property spec.md's growth scenario cares about: every handle
	// captured before the grows still decodes to the right bytes after
	// Finish. growByteBuffer's copy-and-zero must have carried every one of
	// them forward untouched.
	vec := CreateVectorOfOffsets(b, handles)
	b.Finish(vec)
	buf := b.FinishedBytes()

	root := GetUOffsetT(buf)
	length := GetUOffsetT(buf[root:])
	require.EqualValues(t, len(handles), length)

	for i := 0; i < len(handles); i++ {
		elemPos := root + UOffsetT(SizeUOffsetT) + UOffsetT(i*SizeUOffsetT)
		strPos := elemPos + GetUOffsetT(buf[elemPos:])
		strLen := GetUOffsetT(buf[strPos:])
		require.EqualValues(t, len("same-size"), strLen)
		got := string(buf[strPos+UOffsetT(SizeUOffsetT) : strPos+UOffsetT(SizeUOffsetT)+strLen])
		assert.Equal(t, "same-size", got)
	}
}

// TestBuilder_EmptyTableGoldenLayout pins the exact wire bytes of the
// smallest possible finished buffer: a table with no fields. Any of
// growByteBuffer's copy/zero bookkeeping, WriteVtable's metadata fields, or
// finish's padding could drift this by a byte without any other test
// noticing, since every other assertion here decodes through an offset
// rather than comparing raw bytes.
func TestBuilder_EmptyTableGoldenLayout(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(0)
	tab := b.EndObject()
	b.Finish(tab)

	want := []byte{
		0x08, 0x00, 0x00, 0x00, // root offset -> table at byte 8
		0x04, 0x00, 0x04, 0x00, // vtable: vtable_size=4, object_size=4
		0x04, 0x00, 0x00, 0x00, // table: SOffsetT to vtable
	}
	assert.Equal(t, want, b.FinishedBytes())
}

// TestBuilder_ByteVectorGoldenLayout pins the exact wire bytes of a
// finished buffer holding nothing but a byte vector, chosen so its length
// (3) needs one padding byte to keep the length prefix 4-byte aligned.
func TestBuilder_ByteVectorGoldenLayout(t *testing.T) {
	b := NewBuilder(0)
	v := b.CreateByteVector([]byte{0x0A, 0x14, 0x1E})
	b.Finish(v)

	want := []byte{
		0x04, 0x00, 0x00, 0x00, // root offset -> vector length prefix at byte 4
		0x03, 0x00, 0x00, 0x00, // vector length = 3
		0x0A, 0x14, 0x1E, // vector data
		0x00, // alignment padding
	}
	assert.Equal(t, want, b.FinishedBytes())
}

func TestBuilder_ResetReusesBuffer(t *testing.T) {
	b := NewBuilder(64)
	b.StartObject(0)
	tab := b.EndObject()
	b.Finish(tab)
	require.NotPanics(t, func() { b.FinishedBytes() })

	cap1 := cap(b.Bytes)
	b.Reset()
	assert.Equal(t, cap1, cap(b.Bytes))

	require.Panics(t, func() { b.FinishedBytes() })

	b.StartObject(0)
	tab2 := b.EndObject()
	b.Finish(tab2)
	require.NotPanics(t, func() { b.FinishedBytes() })
}

func TestBuilder_DoubleFinishPanics(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(0)
	tab := b.EndObject()
	b.Finish(tab)

	require.Panics(t, func() { b.Finish(tab) })
}

func TestBuilder_FinishWhileNestedPanics(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(1)
	require.Panics(t, func() { b.Finish(0) })
}

func TestBuilder_DuplicateSlotPanics(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(1)
	b.PrependInt32Slot(0, 1, 0)
	require.Panics(t, func() { b.Slot(0) })
}

func TestBuilder_RequiredMissingFieldPanics(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(1)
	tab := b.EndObject()

	require.Panics(t, func() {
		b.Required(tab, VtableMetadataFields*SizeVOffsetT, "name")
	})
}

func TestBuilder_RequiredPresentFieldOK(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(1)
	b.PrependInt32Slot(0, 1, 0)
	tab := b.EndObject()

	require.NotPanics(t, func() {
		b.Required(tab, VtableMetadataFields*SizeVOffsetT, "name")
	})
}

func TestBuilder_CollapseTransfersOwnership(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(0)
	tab := b.EndObject()
	b.Finish(tab)

	want := b.FinishedBytes()
	wantCopy := append([]byte(nil), want...)

	buf, head := b.Collapse()
	assert.Equal(t, wantCopy, buf[head:])
	assert.Nil(t, b.Bytes)
}

func TestBuilder_LoggerObservesGrowthAndDedup(t *testing.T) {
	var events []Event
	b := NewBuilder(1)
	b.Logger = func(e Event) { events = append(events, e) }

	b.StartObject(1)
	b.PrependInt32Slot(0, 1, 0)
	b.EndObject()

	b.StartObject(1)
	b.PrependInt32Slot(0, 2, 0)
	b.EndObject()

	var sawGrow, sawNew, sawReused bool
	for _, e := range events {
		switch e.Kind {
		case EventGrow:
			sawGrow = true
		case EventVtableNew:
			sawNew = true
		case EventVtableReused:
			sawReused = true
		}
	}
	assert.True(t, sawGrow, "expected at least one growth event from a 1-byte initial buffer")
	assert.True(t, sawNew, "expected the first table to write a fresh vtable")
	assert.True(t, sawReused, "expected the second table to reuse the first vtable")
}

func TestBuilder_UnfinishedDataBeforeFinish(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(0)
	b.EndObject()
	assert.NotEmpty(t, b.UnfinishedData())
}
