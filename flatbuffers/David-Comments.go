package flatbuffers

// Worked example: two tables with the same shape produce one vtable.
//
//	b := NewBuilder(0)
//	b.StartObject(2)
//	b.PrependInt32Slot(0, 42, 0)
//	t1 := b.EndObject()
//
//	b.StartObject(2)
//	b.PrependInt32Slot(0, 7, 0)
//	t2 := b.EndObject()
//
// t1's vtable is [vtable_size=6][object_size=8][field0_off=4]. t2 also
// writes field 0 only, at the same distance (4) from its start; its inline
// size is 10, because t1's 6-byte vtable left the head 2 bytes short of
// 4-byte alignment. WriteVtable compares the vtable length and field slots,
// not the object size, so its backwards scan over b.vtables finds t1's
// vtable while serializing t2, and t2's SOffsetT points at the reused bytes
// instead of a fresh copy. NumWrittenVtables() reports 1 after both EndObject calls, not
// 2 — see TestBuilder_VtableDeduplication.
