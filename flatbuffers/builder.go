package flatbuffers

import "github.com/dinneo/fbbuild/fberr"

// Builder is a state machine for creating FlatBuffer objects.
// Use a Builder to construct object(s) starting from leaf nodes.
//
// A Builder constructs byte buffers in a last-first manner for simplicity
// and performance: writes always happen at the current head of the buffer,
// moving backwards, so that every offset recorded along the way (a "handle")
// is known for good the instant it's returned — nothing gets patched later
// except the one vtable offset per table, and only once, during EndObject.
//
// minalign（对齐因子）记录了 Builder 迄今为止要求过的最大对齐边界，Finish
// 最终按它对齐，保证整份 buffer 末尾（也就是开头，读取是反方向的）对齐到
// 最挑剔的那个字段的要求。
type Builder struct {
	// Bytes gives raw access to the buffer. Most users will want
	// FinishedBytes or UnfinishedData instead.
	Bytes []byte

	// Logger, if set, receives diagnostic events (buffer growth, vtable
	// dedup hits/misses). Nil by default.
	Logger Logger

	minalign  int
	vtable    []UOffsetT // in-progress vtable slots for the table currently under construction
	objectEnd UOffsetT
	vtables   []UOffsetT // revpos of every distinct vtable written so far, for dedup
	head      UOffsetT
	nested    bool
	finished  bool
}

// NewBuilder initializes a Builder of size initialSize. The internal buffer
// grows as needed; initialSize is just a head start to avoid early
// reallocation when the final size is roughly known.
func NewBuilder(initialSize int) *Builder {
	if initialSize <= 0 {
		initialSize = 0
	}

	b := &Builder{}
	b.Bytes = make([]byte, initialSize)
	b.head = UOffsetT(initialSize)
	b.minalign = 1
	b.vtables = make([]UOffsetT, 0, 16) // sensible default capacity

	return b
}

// Reset truncates the underlying Builder buffer, facilitating alloc-free
// reuse of a Builder across documents. It also resets bookkeeping data.
func (b *Builder) Reset() {
	if b.Bytes != nil {
		b.Bytes = b.Bytes[:cap(b.Bytes)]
		for i := range b.Bytes {
			b.Bytes[i] = 0
		}
	}

	if b.vtables != nil {
		b.vtables = b.vtables[:0]
	}

	if b.vtable != nil {
		b.vtable = b.vtable[:0]
	}

	b.head = UOffsetT(len(b.Bytes))
	b.minalign = 1
	b.nested = false
	b.finished = false
}

// Collapse consumes the Builder, handing ownership of its backing buffer to
// the caller. The caller reads buf[head:]; the Builder must not be used
// again afterwards.
func (b *Builder) Collapse() (buf []byte, head int) {
	buf, head = b.Bytes, int(b.head)
	b.Bytes = nil
	return buf, head
}

// FinishedBytes returns the written data in the byte buffer. Panics if the
// builder is not in a finished state (caused by calling one of the Finish*
// methods).
func (b *Builder) FinishedBytes() []byte {
	b.assertFinished()
	return b.Bytes[b.head:]
}

// UnfinishedData returns the byte slice for the data that has been written
// so far, regardless of whether Finish has been called.
func (b *Builder) UnfinishedData() []byte {
	return b.Bytes[b.head:]
}

// NumWrittenVtables reports how many distinct vtables have been serialized
// into the buffer so far. Mostly useful to assert deduplication behavior in
// tests: two tables with byte-identical vtables share one entry.
func (b *Builder) NumWrittenVtables() int {
	return len(b.vtables)
}

// StartObject initializes bookkeeping for writing a new table with
// numfields fields (including deprecated ones; vtable slots are always
// allocated by position, not by name).
func (b *Builder) StartObject(numfields int) {
	b.assertNotNested("StartObject can not be called when a table or vector is under construction")
	b.nested = true

	// use 32-bit offsets so that arithmetic doesn't overflow.
	if cap(b.vtable) < numfields || b.vtable == nil {
		b.vtable = make([]UOffsetT, numfields)
	} else {
		b.vtable = b.vtable[:numfields]
		for i := 0; i < len(b.vtable); i++ {
			b.vtable[i] = 0
		}
	}

	b.objectEnd = b.Offset()
}

// WriteVtable serializes the vtable for the current object, if applicable.
//
// Before writing out the vtable, this checks pre-existing vtables for
// equality to this one. If an equal vtable is found, the object points at
// the existing vtable instead and no new vtable bytes are written.
//
// The equality check compares the vtable length and the per-field slots
// only; the object-size header is not compared, so a table whose inline
// size differs (e.g. by trailing alignment padding) can reuse a vtable that
// records the other table's object size.
//
// Because vtable values are sensitive to the alignment of the object data,
// not all logically-equal vtables end up deduplicated.
//
// A vtable has the following format:
//
//	<VOffsetT: size of the vtable in bytes, including this value>
//	<VOffsetT: size of the object in bytes, including the vtable offset>
//	<VOffsetT: offset for a field> * N, where N counts the slots up to and
//	       including the highest slot written; trailing absent slots are
//	       trimmed.
//
// Thus, a vtable is made of 2 + N elements, each SizeVOffsetT bytes wide.
//
// An object has the following format:
//
//	<SOffsetT: offset to this object's vtable (may be negative)>
//	<byte: data>+
func (b *Builder) WriteVtable() (n TableFinishedOffset) {
	// Reserve the SOffsetT slot at the start of the object. Its placeholder
	// value is overwritten later in this function with the offset that
	// points to the object's vtable.
	b.PrependSOffsetT(0)

	objectOffset := b.Offset()
	existingVtable := VTableOffset(0)

	// Trim vtable of trailing zeroes.
	i := len(b.vtable) - 1
	for ; i >= 0 && b.vtable[i] == 0; i-- {
	}
	b.vtable = b.vtable[:i+1]

	// Search backwards through existing vtables, because similar vtables
	// are likely to have been recently appended. This heuristic is why
	// dedup is a flat newest-first scan rather than a hash index.
	for i := len(b.vtables) - 1; i >= 0; i-- {
		vt2Offset := b.vtables[i]
		vt2Start := len(b.Bytes) - int(vt2Offset)
		vt2Len := GetVOffsetT(b.Bytes[vt2Start:])

		metadata := VtableMetadataFields * SizeVOffsetT
		vt2End := vt2Start + int(vt2Len)
		vt2 := b.Bytes[vt2Start+metadata : vt2End]

		if vtableEqual(b.vtable, objectOffset, vt2) {
			existingVtable = vt2Offset
			break
		}
	}

	if existingVtable == 0 {
		// Did not find a vtable, so write this one to the buffer, in
		// reverse, because serialization occurs in last-first order.
		for i := len(b.vtable) - 1; i >= 0; i-- {
			var off UOffsetT
			if b.vtable[i] != 0 {
				off = objectOffset - b.vtable[i]
			}
			b.PrependVOffsetT(VOffsetT(off))
		}

		// The two metadata fields are written last.
		objectSize := objectOffset - b.objectEnd
		if objectSize >= 0x10000 {
			panic(fberr.New(fberr.ObjectTooLarge, "table inline size %d exceeds the 16-bit vtable offset range", objectSize))
		}
		b.PrependVOffsetT(VOffsetT(objectSize))

		vBytes := (len(b.vtable) + VtableMetadataFields) * SizeVOffsetT
		b.PrependVOffsetT(VOffsetT(vBytes))

		// Next, write the offset to the new vtable in the
		// already-allocated SOffsetT at the beginning of this object.
		objectStart := SOffsetT(len(b.Bytes)) - SOffsetT(objectOffset)
		WriteSOffsetT(b.Bytes[objectStart:], SOffsetT(b.Offset())-SOffsetT(objectOffset))

		// Finally, store this vtable in memory for future dedup.
		b.vtables = append(b.vtables, b.Offset())
		b.log(Event{Kind: EventVtableNew, Revpos: b.Offset()})
	} else {
		// Found a duplicate vtable; nothing new was written, so just
		// point the object at the existing one.
		objectStart := SOffsetT(len(b.Bytes)) - SOffsetT(objectOffset)
		b.head = UOffsetT(objectStart)

		WriteSOffsetT(b.Bytes[b.head:], SOffsetT(existingVtable)-SOffsetT(objectOffset))
		b.log(Event{Kind: EventVtableReused, Revpos: existingVtable})
	}

	b.vtable = b.vtable[:0]
	return objectOffset
}

// EndObject writes data necessary to finish object construction.
func (b *Builder) EndObject() TableFinishedOffset {
	b.assertNested("EndObject must be called after a call to StartObject")
	n := b.WriteVtable()
	b.nested = false
	return n
}

// growByteBuffer doubles the size of the byte slice, copying the old data
// towards the end of the new slice (since the buffer builds backwards).
func (b *Builder) growByteBuffer() {
	oldCap := len(b.Bytes)
	if int64(oldCap)&int64(0xC0000000) != 0 {
		panic(fberr.New(fberr.BufferTooLarge, "cannot grow buffer beyond %d bytes", MaxBufferSize))
	}
	newLen := oldCap * 2
	if newLen == 0 {
		newLen = 1
	}

	if cap(b.Bytes) >= newLen {
		b.Bytes = b.Bytes[:newLen]
	} else {
		extension := make([]byte, newLen-len(b.Bytes))
		b.Bytes = append(b.Bytes, extension...)
	}

	middle := newLen / 2
	copy(b.Bytes[middle:], b.Bytes[:middle])
	for i := 0; i < middle; i++ {
		b.Bytes[i] = 0
	}

	b.log(Event{Kind: EventGrow, OldCap: oldCap, NewCap: newLen})
}

// Head gives the start of useful data in the underlying byte buffer. Note:
// unlike other functions, this value is interpreted as from the left.
func (b *Builder) Head() UOffsetT {
	return b.head
}

// Offset reports the distance from the current head to the end of the
// buffer — i.e. how much has been written so far. A handle returned by a
// push is always an Offset() reading taken immediately after that push.
func (b *Builder) Offset() UOffsetT {
	return UOffsetT(len(b.Bytes)) - b.head
}

// Pad places n zero bytes at the current head.
func (b *Builder) Pad(n int) {
	for i := 0; i < n; i++ {
		b.PlaceByte(0)
	}
}

// Prep prepares to write an element of `size` after `additionalBytes` have
// been written, e.g. if you write a string, you need to align such that the
// u32 length field is aligned to SizeUint32, and the string data follows it
// directly. If all you need to do is align, additionalBytes is 0.
func (b *Builder) Prep(size, additionalBytes int) {
	// Track the biggest thing we've ever aligned to.
	if size > b.minalign {
		b.minalign = size
	}

	// Find the amount of alignment needed such that size is properly
	// aligned after additionalBytes.
	alignSize := (^(len(b.Bytes) - int(b.Head()) + additionalBytes)) + 1
	alignSize &= size - 1

	// Reallocate the buffer if needed.
	for int(b.head) <= alignSize+size+additionalBytes {
		oldBufSize := len(b.Bytes)
		b.growByteBuffer()
		b.head += UOffsetT(len(b.Bytes) - oldBufSize)
	}

	b.Pad(alignSize)
}

// PrependSOffsetT prepends an SOffsetT, relative to where it will be
// written.
func (b *Builder) PrependSOffsetT(off SOffsetT) {
	b.Prep(SizeSOffsetT, 0)
	if !(UOffsetT(off) <= b.Offset()) {
		panic(fberr.New(fberr.NestedViolation, "unreachable: off <= b.Offset()"))
	}
	off2 := SOffsetT(b.Offset()) - off + SOffsetT(SizeSOffsetT)
	b.PlaceSOffsetT(off2)
}

// PrependUOffsetT prepends an UOffsetT, relative to where it will be
// written.
func (b *Builder) PrependUOffsetT(off UOffsetT) {
	b.Prep(SizeUOffsetT, 0)
	if !(off <= b.Offset()) {
		panic(fberr.New(fberr.NestedViolation, "unreachable: off <= b.Offset()"))
	}
	off2 := b.Offset() - off + UOffsetT(SizeUOffsetT)
	b.PlaceUOffsetT(off2)
}

// StartVector initializes bookkeeping for writing a new vector.
//
// A vector has the following format:
//
//	<UOffsetT: number of elements in this vector>
//	<T: data>+, where T is the type of elements of this vector.
func (b *Builder) StartVector(elemSize, numElems, alignment int) UOffsetT {
	b.assertNotNested("StartVector can not be called when a table or vector is under construction")
	b.nested = true

	b.Prep(SizeUint32, elemSize*numElems)
	b.Prep(alignment, elemSize*numElems) // Just in case alignment > int.
	return b.Offset()
}

// EndVector writes data necessary to finish vector construction, returning
// a handle to the length prefix.
func (b *Builder) EndVector(vectorNumElems int) VectorOffset {
	b.assertNested("EndVector must be called after a call to StartVector")

	// we already made space for this, so write without PrependUint32
	b.PlaceUOffsetT(UOffsetT(vectorNumElems))

	b.nested = false
	return b.Offset()
}

// CreateString writes a NUL-terminated UTF-8 string as a byte vector.
func (b *Builder) CreateString(s string) StringOffset {
	b.assertNotNested("CreateString can not be called when a table or vector is under construction")
	b.nested = true

	b.Prep(SizeUOffsetT, (len(s)+1)*SizeByte)
	b.PlaceByte(0) // trailing NUL, not counted in the length prefix

	l := UOffsetT(len(s))
	b.head -= l
	copy(b.Bytes[b.head:b.head+l], s)

	return b.EndVector(len(s))
}

// CreateByteString writes a byte slice as a NUL-terminated string.
func (b *Builder) CreateByteString(s []byte) StringOffset {
	b.assertNotNested("CreateByteString can not be called when a table or vector is under construction")
	b.nested = true

	b.Prep(SizeUOffsetT, (len(s)+1)*SizeByte)
	b.PlaceByte(0)

	l := UOffsetT(len(s))
	b.head -= l
	copy(b.Bytes[b.head:b.head+l], s)

	return b.EndVector(len(s))
}

// CreateByteVector writes a ubyte vector, with no trailing NUL.
func (b *Builder) CreateByteVector(v []byte) VectorOffset {
	b.assertNotNested("CreateByteVector can not be called when a table or vector is under construction")
	b.nested = true

	b.Prep(SizeUOffsetT, len(v)*SizeByte)

	l := UOffsetT(len(v))
	b.head -= l
	copy(b.Bytes[b.head:b.head+l], v)

	return b.EndVector(len(v))
}

// offsetLike is any named uint32 offset type this package hands out as a
// handle (UOffsetT itself, or one of its phantom-tagged aliases).
type offsetLike interface {
	~uint32
}

// CreateVectorOfOffsets builds a vector of forward-relative UOffsetT
// offsets, e.g. a vector of tables or a vector of strings whose handles
// were already produced. Elements are pushed in reverse index order so
// that, once built, they read back in natural order.
func CreateVectorOfOffsets[T offsetLike](b *Builder, offsets []T) VectorOffset {
	b.StartVector(SizeUOffsetT, len(offsets), SizeUOffsetT)
	for i := len(offsets) - 1; i >= 0; i-- {
		b.PrependUOffsetT(UOffsetT(offsets[i]))
	}
	return b.EndVector(len(offsets))
}

// CreateVectorOfStrings builds each string first, in reverse order (so the
// returned offsets index naturally), then wraps them in a vector of
// offsets.
func (b *Builder) CreateVectorOfStrings(xs []string) VectorOffset {
	b.assertNotNested("CreateVectorOfStrings can not be called when a table or vector is under construction")
	offsets := make([]StringOffset, len(xs))
	for i := len(xs) - 1; i >= 0; i-- {
		offsets[i] = b.CreateString(xs[i])
	}
	return CreateVectorOfOffsets(b, offsets)
}

func (b *Builder) assertNested(msg string) {
	// If you get this assert, you're trying to write data that belongs
	// inside an object (like a vtable Slot) while not under construction.
	if !b.nested {
		panic(fberr.New(fberr.NotNestedViolation, "%s", msg))
	}
}

func (b *Builder) assertNotNested(msg string) {
	// If you hit this, you're trying to construct a table/vector/string
	// during the construction of its parent table. Move the creation of
	// these sub-objects to before StartObject to avoid this.
	if b.nested {
		panic(fberr.New(fberr.NestedViolation, "%s", msg))
	}
}

func (b *Builder) assertFinished() {
	// If you get this assert, you're attempting to access a buffer which
	// hasn't been finished yet. Call one of the Finish* methods first.
	if !b.finished {
		panic(fberr.New(fberr.NotFinished, "must call Finish before FinishedBytes"))
	}
}

func (b *Builder) assertNotFinished() {
	if b.finished {
		panic(fberr.New(fberr.AlreadyFinished, "buffer cannot be finished twice without an intervening Reset"))
	}
}

// PrependBoolSlot prepends a bool onto the object at vtable slot o. If
// value x equals default d, the slot is left at zero and nothing else is
// written.
func (b *Builder) PrependBoolSlot(o int, x, d bool) {
	val := byte(0)
	if x {
		val = 1
	}
	def := byte(0)
	if d {
		def = 1
	}
	b.PrependByteSlot(o, val, def)
}

// PrependByteSlot prepends a byte onto the object at vtable slot o. If
// value x equals default d, the slot is left at zero and nothing else is
// written.
func (b *Builder) PrependByteSlot(o int, x, d byte) {
	if x != d {
		b.PrependByte(x)
		b.Slot(o)
	}
}

// PrependUint8Slot prepends a uint8 onto the object at vtable slot o.
func (b *Builder) PrependUint8Slot(o int, x, d uint8) {
	if x != d {
		b.PrependUint8(x)
		b.Slot(o)
	}
}

// PrependUint16Slot prepends a uint16 onto the object at vtable slot o.
func (b *Builder) PrependUint16Slot(o int, x, d uint16) {
	if x != d {
		b.PrependUint16(x)
		b.Slot(o)
	}
}

// PrependUint32Slot prepends a uint32 onto the object at vtable slot o.
func (b *Builder) PrependUint32Slot(o int, x, d uint32) {
	if x != d {
		b.PrependUint32(x)
		b.Slot(o)
	}
}

// PrependUint64Slot prepends a uint64 onto the object at vtable slot o.
func (b *Builder) PrependUint64Slot(o int, x, d uint64) {
	if x != d {
		b.PrependUint64(x)
		b.Slot(o)
	}
}

// PrependInt8Slot prepends an int8 onto the object at vtable slot o.
func (b *Builder) PrependInt8Slot(o int, x, d int8) {
	if x != d {
		b.PrependInt8(x)
		b.Slot(o)
	}
}

// PrependInt16Slot prepends an int16 onto the object at vtable slot o.
func (b *Builder) PrependInt16Slot(o int, x, d int16) {
	if x != d {
		b.PrependInt16(x)
		b.Slot(o)
	}
}

// PrependInt32Slot prepends an int32 onto the object at vtable slot o.
func (b *Builder) PrependInt32Slot(o int, x, d int32) {
	if x != d {
		b.PrependInt32(x)
		b.Slot(o)
	}
}

// PrependInt64Slot prepends an int64 onto the object at vtable slot o.
func (b *Builder) PrependInt64Slot(o int, x, d int64) {
	if x != d {
		b.PrependInt64(x)
		b.Slot(o)
	}
}

// PrependFloat32Slot prepends a float32 onto the object at vtable slot o.
func (b *Builder) PrependFloat32Slot(o int, x, d float32) {
	if x != d {
		b.PrependFloat32(x)
		b.Slot(o)
	}
}

// PrependFloat64Slot prepends a float64 onto the object at vtable slot o.
func (b *Builder) PrependFloat64Slot(o int, x, d float64) {
	if x != d {
		b.PrependFloat64(x)
		b.Slot(o)
	}
}

// PrependUOffsetTSlot prepends a UOffsetT onto the object at vtable slot o.
func (b *Builder) PrependUOffsetTSlot(o int, x, d UOffsetT) {
	if x != d {
		b.PrependUOffsetT(x)
		b.Slot(o)
	}
}

// PrependStructSlot prepends a struct onto the object at vtable slot o.
// Structs are stored inline, so nothing additional is written; x must
// already equal the current offset (in generated code d is always 0).
func (b *Builder) PrependStructSlot(voffset int, x, d UOffsetT) {
	if x != d {
		b.assertNested("PrependStructSlot must be called after StartObject")
		if x != b.Offset() {
			panic(fberr.New(fberr.NestedViolation, "inline struct data written outside of its object"))
		}
		b.Slot(voffset)
	}
}

// Slot records the current buffer position as the location of the field at
// vtable slot slotnum. Every PrependXSlot calls it after writing a
// non-default value.
func (b *Builder) Slot(slotnum int) {
	b.assertNested("Slot must be called after StartObject")
	if b.vtable[slotnum] != 0 {
		panic(fberr.New(fberr.DuplicateVtableField, "slot %d already written", slotnum))
	}
	b.vtable[slotnum] = UOffsetT(b.Offset())
}

// Required asserts that the vtable of the just-finished table at tab
// contains a non-zero entry for slot — i.e. that a schema-required field
// was actually written. This is a post-condition the generated accessor
// layer (out of scope for this package) would otherwise check; callers
// that hand-roll table construction can call it directly.
func (b *Builder) Required(tab TableFinishedOffset, slot VOffsetT, name string) {
	idx := b.Offset() - tab
	t := &Table{Bytes: b.Bytes[b.head:], Pos: idx}
	if t.Offset(slot) == 0 {
		panic(fberr.New(fberr.MissingRequiredField, "missing required field %q", name))
	}
}

// FinishWithFileIdentifier finalizes a buffer, pointing to the given
// rootTable, and prepends a 4-byte file identifier.
func (b *Builder) FinishWithFileIdentifier(rootTable TableFinishedOffset, fid []byte) {
	b.finish(rootTable, fid, false)
}

// Finish finalizes a buffer, pointing to the given rootTable.
func (b *Builder) Finish(rootTable TableFinishedOffset) {
	b.finish(rootTable, nil, false)
}

// FinishSizePrefixed finalizes a buffer the same way Finish does, but also
// prepends a 4-byte total-size prefix ahead of the root offset.
func (b *Builder) FinishSizePrefixed(rootTable TableFinishedOffset) {
	b.finish(rootTable, nil, true)
}

// FinishSizePrefixedWithFileIdentifier combines FinishSizePrefixed and
// FinishWithFileIdentifier.
func (b *Builder) FinishSizePrefixedWithFileIdentifier(rootTable TableFinishedOffset, fid []byte) {
	b.finish(rootTable, fid, true)
}

// FinishMinimal is an alias for Finish, named to mirror the three-way split
// (minimal / with-identifier / size-prefixed) the format distinguishes.
func (b *Builder) FinishMinimal(rootTable TableFinishedOffset) {
	b.finish(rootTable, nil, false)
}

func (b *Builder) finish(root TableFinishedOffset, fileIdentifier []byte, sizePrefixed bool) {
	b.assertNotNested("buffer cannot be finished when a table or vector is under construction")
	b.assertNotFinished()
	b.vtables = b.vtables[:0] // no further dedup once finishing starts

	toAlign := SizeUOffsetT
	if sizePrefixed {
		toAlign += SizeUOffsetT
	}
	if fileIdentifier != nil {
		toAlign += FileIdentifierLength
	}

	b.Prep(b.minalign, toAlign)

	if fileIdentifier != nil {
		if len(fileIdentifier) != FileIdentifierLength {
			panic(fberr.New(fberr.BadFileIdentifierLength, "file identifier must be exactly %d bytes, got %d", FileIdentifierLength, len(fileIdentifier)))
		}
		for i := FileIdentifierLength - 1; i >= 0; i-- {
			b.PlaceByte(fileIdentifier[i])
		}
	}

	b.PrependUOffsetT(root)

	if sizePrefixed {
		b.PrependUint32(uint32(b.Offset()))
	}

	b.finished = true
}

// vtableEqual compares an unwritten vtable to an already-written one.
func vtableEqual(a []UOffsetT, objectStart UOffsetT, b []byte) bool {
	if len(a)*SizeVOffsetT != len(b) {
		return false
	}

	for i := 0; i < len(a); i++ {
		x := GetVOffsetT(b[i*SizeVOffsetT : (i+1)*SizeVOffsetT])

		// Skip vtable entries that indicate a default value.
		if x == 0 && a[i] == 0 {
			continue
		}

		y := SOffsetT(objectStart) - SOffsetT(a[i])
		if SOffsetT(x) != y {
			return false
		}
	}
	return true
}

// PrependBool prepends a bool to the Builder buffer. Aligns and checks for
// space.
func (b *Builder) PrependBool(x bool) {
	b.Prep(SizeBool, 0)
	b.PlaceBool(x)
}

// PrependUint8 prepends a uint8 to the Builder buffer.
func (b *Builder) PrependUint8(x uint8) {
	b.Prep(SizeUint8, 0)
	b.PlaceUint8(x)
}

// PrependUint16 prepends a uint16 to the Builder buffer.
func (b *Builder) PrependUint16(x uint16) {
	b.Prep(SizeUint16, 0)
	b.PlaceUint16(x)
}

// PrependUint32 prepends a uint32 to the Builder buffer.
func (b *Builder) PrependUint32(x uint32) {
	b.Prep(SizeUint32, 0)
	b.PlaceUint32(x)
}

// PrependUint64 prepends a uint64 to the Builder buffer.
func (b *Builder) PrependUint64(x uint64) {
	b.Prep(SizeUint64, 0)
	b.PlaceUint64(x)
}

// PrependInt8 prepends an int8 to the Builder buffer.
func (b *Builder) PrependInt8(x int8) {
	b.Prep(SizeInt8, 0)
	b.PlaceInt8(x)
}

// PrependInt16 prepends an int16 to the Builder buffer.
func (b *Builder) PrependInt16(x int16) {
	b.Prep(SizeInt16, 0)
	b.PlaceInt16(x)
}

// PrependInt32 prepends an int32 to the Builder buffer.
func (b *Builder) PrependInt32(x int32) {
	b.Prep(SizeInt32, 0)
	b.PlaceInt32(x)
}

// PrependInt64 prepends an int64 to the Builder buffer.
func (b *Builder) PrependInt64(x int64) {
	b.Prep(SizeInt64, 0)
	b.PlaceInt64(x)
}

// PrependFloat32 prepends a float32 to the Builder buffer.
func (b *Builder) PrependFloat32(x float32) {
	b.Prep(SizeFloat32, 0)
	b.PlaceFloat32(x)
}

// PrependFloat64 prepends a float64 to the Builder buffer.
func (b *Builder) PrependFloat64(x float64) {
	b.Prep(SizeFloat64, 0)
	b.PlaceFloat64(x)
}

// PrependByte prepends a byte to the Builder buffer.
func (b *Builder) PrependByte(x byte) {
	b.Prep(SizeByte, 0)
	b.PlaceByte(x)
}

// PrependVOffsetT prepends a VOffsetT to the Builder buffer.
func (b *Builder) PrependVOffsetT(x VOffsetT) {
	b.Prep(SizeVOffsetT, 0)
	b.PlaceVOffsetT(x)
}

// PlaceBool prepends a bool to the Builder, without checking for space.
func (b *Builder) PlaceBool(x bool) {
	b.head -= UOffsetT(SizeBool)
	WriteBool(b.Bytes[b.head:], x)
}

// PlaceUint8 prepends a uint8 to the Builder, without checking for space.
func (b *Builder) PlaceUint8(x uint8) {
	b.head -= UOffsetT(SizeUint8)
	WriteUint8(b.Bytes[b.head:], x)
}

// PlaceUint16 prepends a uint16 to the Builder, without checking for space.
func (b *Builder) PlaceUint16(x uint16) {
	b.head -= UOffsetT(SizeUint16)
	WriteUint16(b.Bytes[b.head:], x)
}

// PlaceUint32 prepends a uint32 to the Builder, without checking for space.
func (b *Builder) PlaceUint32(x uint32) {
	b.head -= UOffsetT(SizeUint32)
	WriteUint32(b.Bytes[b.head:], x)
}

// PlaceUint64 prepends a uint64 to the Builder, without checking for space.
func (b *Builder) PlaceUint64(x uint64) {
	b.head -= UOffsetT(SizeUint64)
	WriteUint64(b.Bytes[b.head:], x)
}

// PlaceInt8 prepends an int8 to the Builder, without checking for space.
func (b *Builder) PlaceInt8(x int8) {
	b.head -= UOffsetT(SizeInt8)
	WriteInt8(b.Bytes[b.head:], x)
}

// PlaceInt16 prepends an int16 to the Builder, without checking for space.
func (b *Builder) PlaceInt16(x int16) {
	b.head -= UOffsetT(SizeInt16)
	WriteInt16(b.Bytes[b.head:], x)
}

// PlaceInt32 prepends an int32 to the Builder, without checking for space.
func (b *Builder) PlaceInt32(x int32) {
	b.head -= UOffsetT(SizeInt32)
	WriteInt32(b.Bytes[b.head:], x)
}

// PlaceInt64 prepends an int64 to the Builder, without checking for space.
func (b *Builder) PlaceInt64(x int64) {
	b.head -= UOffsetT(SizeInt64)
	WriteInt64(b.Bytes[b.head:], x)
}

// PlaceFloat32 prepends a float32 to the Builder, without checking for
// space.
func (b *Builder) PlaceFloat32(x float32) {
	b.head -= UOffsetT(SizeFloat32)
	WriteFloat32(b.Bytes[b.head:], x)
}

// PlaceFloat64 prepends a float64 to the Builder, without checking for
// space.
func (b *Builder) PlaceFloat64(x float64) {
	b.head -= UOffsetT(SizeFloat64)
	WriteFloat64(b.Bytes[b.head:], x)
}

// PlaceByte prepends a byte to the Builder, without checking for space.
func (b *Builder) PlaceByte(x byte) {
	b.head -= UOffsetT(SizeByte)
	WriteByte(b.Bytes[b.head:], x)
}

// PlaceVOffsetT prepends a VOffsetT to the Builder, without checking for
// space.
func (b *Builder) PlaceVOffsetT(x VOffsetT) {
	b.head -= UOffsetT(SizeVOffsetT)
	WriteVOffsetT(b.Bytes[b.head:], x)
}

// PlaceSOffsetT prepends a SOffsetT to the Builder, without checking for
// space.
func (b *Builder) PlaceSOffsetT(x SOffsetT) {
	b.head -= UOffsetT(SizeSOffsetT)
	WriteSOffsetT(b.Bytes[b.head:], x)
}

// PlaceUOffsetT prepends a UOffsetT to the Builder, without checking for
// space.
func (b *Builder) PlaceUOffsetT(x UOffsetT) {
	b.head -= UOffsetT(SizeUOffsetT)
	WriteUOffsetT(b.Bytes[b.head:], x)
}
