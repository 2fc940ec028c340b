// Package flatbuffers provides a builder for constructing FlatBuffers-style
// binary objects: vtables, tables, vectors and strings written back-to-front
// into a growable buffer. It deliberately stops at the wire; there is no
// schema compiler, no generated accessor code, and only the sliver of
// read-back (Table.Offset) that Required needs.
package flatbuffers

// Builder 把数据写入一段 []byte ，但写入方向和通常的 append 相反：head 从
// buffer 末尾开始，每次写入都让 head 向左（向低地址）移动。这样做的好处是，
// 一个值一旦写入就不再移动——调用方拿到的 handle（各个 PrependX 方法的返回值，
// 或 EndObject/EndVector/CreateString 的返回值）永远是"已写入内容的字节数"，
// 不会因为后续写入而失效。
//
// StartObject/EndObject 之间积累的是 vtable 草稿（b.vtable），并非表本身的数据；
// 真正写入 buffer 的表数据（字段值）在每次 PrependXSlot 调用时就已经写完，
// EndObject 只是把 vtable 草稿序列化出来（或者发现一份字节相同的旧 vtable 并复用），
// 然后把指向它的 SOffsetT 回填到表头部那个预留的位置。
//
// 因此一份 finish 之后的 buffer ，从前往后读，紧跟在根偏移（以及可选的大小
// 前缀和文件标识）之后的，通常是根对象的 vtable 摘要（vtable 字节长度、对象
// 大小），而不是字段数据本身；只有当根对象复用了更早写入的 vtable 时，紧跟
// 其后的才是根对象自身的数据（可能先有对齐填充）——这是 FlatBuffers 故意反转
// 写入方向换来的读取端好处，本包虽然不提供读取 API ，但 WriteVtable 的字节
// 布局仍然严格遵循这一点，方便另一端的读者（不在此包范围内）按标准格式解析。
