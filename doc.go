// Package uacodec implements a little-endian binary codec for fixed-width
// scalars and length-prefixed arrays.
//
// Wire format:
//
//	u8/i8/bool          1 byte
//	i16/u16             2 bytes LE
//	i32/u32/f32         4 bytes LE
//	i64/u64/f64         8 bytes LE
//	array               len(i32 LE) | elem * len     len = -1 => null
//	string/bytestring   len(i32 LE) | bytes(len)     len = -1 => null
//
// Errors collapse to two values, BadEncoding and BadDecoding. The I/O error
// behind them is logged at debug level through the Logger installed with
// SetLogger and is never returned.
//
// Any type implementing Codable can be an array element, including Array
// itself:
//
//	a := uacodec.ArrayOf[uacodec.UInt16](1, 256)
//	n, err := uacodec.WriteArray(w, a) // 02 00 00 00 01 00 00 01
//
//	b, err := uacodec.ReadArray[uacodec.UInt16](r)
//	if b.IsNull() { ... }
//
// Functions are synchronous and keep no state between calls; concurrent use
// is safe as long as each caller has its own stream.
package uacodec
