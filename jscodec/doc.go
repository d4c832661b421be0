// Package jscodec emits JavaScript encoder and decoder source for the
// binding wire format.
//
// # Wire Format
//
//	bool, u8, s8       one byte
//	u16..u128          unsigned LEB128 varint
//	s16..s128          zig-zag, then varint
//	f32, f64           IEEE 754 little endian
//	char, string       varint byte length + UTF-8
//	list<T>            varint count + elements
//	tuple, record      members in declaration order
//	option<T>          byte 0 (none) or 1 + payload
//	result<T, E>       varint 0 + ok payload, or 1 + err payload
//	variant, union     varint case ordinal + payload
//	enum               varint case ordinal
//	flags              varint of the bit set (u32 up to 31 fields, else u64)
//	resource           varint u32 handle
//
// Field i of a flags set is bit i+1. Sets are limited to idl.MaxFlagsFields
// fields so every bit survives the round trip through a JavaScript number.
//
// A Printer tracks which runtime helpers the emitted code references;
// Utils returns only those helpers plus their dependencies, in a fixed
// order, so the output carries no dead helper code.
package jscodec
