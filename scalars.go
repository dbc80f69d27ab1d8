package uacodec

import "io"

// Named scalar types implement Codable so they can be used as array
// elements. Each maps one-to-one onto a primitive Write/Read pair.

// Byte is an unsigned 8-bit integer.
type Byte uint8

func (Byte) ByteLen() int                      { return 1 }
func (v Byte) Encode(w io.Writer) (int, error) { return WriteU8(w, uint8(v)) }

func (Byte) Decode(r io.Reader) (Byte, error) {
	v, err := ReadU8(r)
	return Byte(v), err
}

// SByte is a signed 8-bit integer.
type SByte int8

func (SByte) ByteLen() int                      { return 1 }
func (v SByte) Encode(w io.Writer) (int, error) { return WriteI8(w, int8(v)) }

func (SByte) Decode(r io.Reader) (SByte, error) {
	v, err := ReadI8(r)
	return SByte(v), err
}

// Boolean is one byte on the wire; any non-zero byte decodes as true.
type Boolean bool

func (Boolean) ByteLen() int                      { return 1 }
func (v Boolean) Encode(w io.Writer) (int, error) { return WriteBool(w, bool(v)) }

func (Boolean) Decode(r io.Reader) (Boolean, error) {
	v, err := ReadBool(r)
	return Boolean(v), err
}

type Int16 int16

func (Int16) ByteLen() int                      { return 2 }
func (v Int16) Encode(w io.Writer) (int, error) { return WriteI16(w, int16(v)) }

func (Int16) Decode(r io.Reader) (Int16, error) {
	v, err := ReadI16(r)
	return Int16(v), err
}

type UInt16 uint16

func (UInt16) ByteLen() int                      { return 2 }
func (v UInt16) Encode(w io.Writer) (int, error) { return WriteU16(w, uint16(v)) }

func (UInt16) Decode(r io.Reader) (UInt16, error) {
	v, err := ReadU16(r)
	return UInt16(v), err
}

type Int32 int32

func (Int32) ByteLen() int                      { return 4 }
func (v Int32) Encode(w io.Writer) (int, error) { return WriteI32(w, int32(v)) }

func (Int32) Decode(r io.Reader) (Int32, error) {
	v, err := ReadI32(r)
	return Int32(v), err
}

type UInt32 uint32

func (UInt32) ByteLen() int                      { return 4 }
func (v UInt32) Encode(w io.Writer) (int, error) { return WriteU32(w, uint32(v)) }

func (UInt32) Decode(r io.Reader) (UInt32, error) {
	v, err := ReadU32(r)
	return UInt32(v), err
}

type Int64 int64

func (Int64) ByteLen() int                      { return 8 }
func (v Int64) Encode(w io.Writer) (int, error) { return WriteI64(w, int64(v)) }

func (Int64) Decode(r io.Reader) (Int64, error) {
	v, err := ReadI64(r)
	return Int64(v), err
}

type UInt64 uint64

func (UInt64) ByteLen() int                      { return 8 }
func (v UInt64) Encode(w io.Writer) (int, error) { return WriteU64(w, uint64(v)) }

func (UInt64) Decode(r io.Reader) (UInt64, error) {
	v, err := ReadU64(r)
	return UInt64(v), err
}

// Float is an IEEE-754 single precision value.
type Float float32

func (Float) ByteLen() int                      { return 4 }
func (v Float) Encode(w io.Writer) (int, error) { return WriteF32(w, float32(v)) }

func (Float) Decode(r io.Reader) (Float, error) {
	v, err := ReadF32(r)
	return Float(v), err
}

// Double is an IEEE-754 double precision value.
type Double float64

func (Double) ByteLen() int                      { return 8 }
func (v Double) Encode(w io.Writer) (int, error) { return WriteF64(w, float64(v)) }

func (Double) Decode(r io.Reader) (Double, error) {
	v, err := ReadF64(r)
	return Double(v), err
}
