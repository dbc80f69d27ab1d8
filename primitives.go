package uacodec

import (
	"encoding/binary"
	"io"
	"math"
)

// write emits buf with a single Write. A writer that reports fewer bytes
// than requested without an error violates io.Writer and is treated as a
// short write.
func write(w io.Writer, buf []byte) (int, error) {
	n, err := w.Write(buf)
	if err == nil && n < len(buf) {
		err = io.ErrShortWrite
	}
	return EncodeIOResult(n, err)
}

func read(r io.Reader, buf []byte) error {
	n, err := io.ReadFull(r, buf)
	_, err = DecodeIOResult(n, err)
	return err
}

func WriteU8(w io.Writer, v uint8) (int, error) {
	buf := [1]byte{v}
	return write(w, buf[:])
}

func WriteI8(w io.Writer, v int8) (int, error) {
	return WriteU8(w, uint8(v))
}

// WriteBool writes 0x01 for true and 0x00 for false.
func WriteBool(w io.Writer, v bool) (int, error) {
	if v {
		return WriteU8(w, 1)
	}
	return WriteU8(w, 0)
}

func WriteI16(w io.Writer, v int16) (int, error) {
	return WriteU16(w, uint16(v))
}

func WriteU16(w io.Writer, v uint16) (int, error) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	return write(w, buf[:])
}

func WriteI32(w io.Writer, v int32) (int, error) {
	return WriteU32(w, uint32(v))
}

func WriteU32(w io.Writer, v uint32) (int, error) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return write(w, buf[:])
}

func WriteI64(w io.Writer, v int64) (int, error) {
	return WriteU64(w, uint64(v))
}

func WriteU64(w io.Writer, v uint64) (int, error) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return write(w, buf[:])
}

// WriteF32 writes the IEEE-754 bit pattern of v, NaN payloads included.
func WriteF32(w io.Writer, v float32) (int, error) {
	return WriteU32(w, math.Float32bits(v))
}

func WriteF64(w io.Writer, v float64) (int, error) {
	return WriteU64(w, math.Float64bits(v))
}

// ReadBytes fills buf completely. Anything short of len(buf) bytes is
// BadDecoding.
func ReadBytes(r io.Reader, buf []byte) (int, error) {
	if err := read(r, buf); err != nil {
		return 0, err
	}
	return len(buf), nil
}

func ReadU8(r io.Reader) (uint8, error) {
	var buf [1]byte
	if err := read(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func ReadI8(r io.Reader) (int8, error) {
	v, err := ReadU8(r)
	return int8(v), err
}

// ReadBool decodes any non-zero byte as true.
func ReadBool(r io.Reader) (bool, error) {
	v, err := ReadU8(r)
	return v != 0, err
}

func ReadI16(r io.Reader) (int16, error) {
	v, err := ReadU16(r)
	return int16(v), err
}

func ReadU16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if err := read(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

func ReadI32(r io.Reader) (int32, error) {
	v, err := ReadU32(r)
	return int32(v), err
}

func ReadU32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if err := read(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func ReadI64(r io.Reader) (int64, error) {
	v, err := ReadU64(r)
	return int64(v), err
}

func ReadU64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if err := read(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

func ReadF32(r io.Reader) (float32, error) {
	v, err := ReadU32(r)
	return math.Float32frombits(v), err
}

func ReadF64(r io.Reader) (float64, error) {
	v, err := ReadU64(r)
	return math.Float64frombits(v), err
}
