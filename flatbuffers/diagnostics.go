package flatbuffers

// EventKind classifies a structural event a Builder's Logger can observe.
// None of this changes wire output; it exists purely so a caller can watch
// buffer growth and WriteVtable's dedup scan at work.
type EventKind int

const (
	// EventGrow fires whenever growByteBuffer doubles the backing buffer.
	EventGrow EventKind = iota
	// EventVtableNew fires when WriteVtable serializes a vtable that did
	// not match any previously written one.
	EventVtableNew
	// EventVtableReused fires when WriteVtable finds a vtable in
	// b.vtables with the same length and field slots (the object-size
	// header is not compared) and reuses it instead.
	EventVtableReused
)

// Event is the payload delivered to a Builder's Logger.
type Event struct {
	Kind EventKind

	// OldCap/NewCap are set for EventGrow.
	OldCap, NewCap int

	// Revpos is set for EventVtableNew (the new vtable's revpos) and
	// EventVtableReused (the existing vtable's revpos that was reused).
	Revpos UOffsetT
}

// Logger receives Builder diagnostic events. A nil Logger (the default)
// costs nothing beyond a nil check at each call site.
type Logger func(Event)

func (b *Builder) log(e Event) {
	if b.Logger != nil {
		b.Logger(e)
	}
}
