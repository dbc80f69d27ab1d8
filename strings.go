package uacodec

import (
	"bytes"
	"io"
	"math"
)

// ByteString is an opaque byte sequence framed like an array: an int32
// length, -1 for null, then the raw bytes. A nil ByteString is null; an
// empty non-nil one is the zero-length string.
type ByteString []byte

func (b ByteString) ByteLen() int { return 4 + len(b) }

func (b ByteString) Encode(w io.Writer) (int, error) {
	if b == nil {
		return WriteI32(w, nullLength)
	}
	return writeLengthPrefixed(w, b)
}

func (ByteString) Decode(r io.Reader) (ByteString, error) {
	b, ok, err := readLengthPrefixed(r)
	if err != nil || !ok {
		return nil, err
	}
	return ByteString(b), nil
}

// String is UTF-8 text with the ByteString framing. Valid distinguishes the
// null string from "". No UTF-8 validation is done on decode.
type String struct {
	Value string
	Valid bool
}

// StringOf returns a present String holding s.
func StringOf(s string) String { return String{Value: s, Valid: true} }

func (s String) IsNull() bool { return !s.Valid }

func (s String) ByteLen() int {
	if !s.Valid {
		return 4
	}
	return 4 + len(s.Value)
}

func (s String) Encode(w io.Writer) (int, error) {
	if !s.Valid {
		return WriteI32(w, nullLength)
	}
	return writeLengthPrefixed(w, []byte(s.Value))
}

func (String) Decode(r io.Reader) (String, error) {
	b, ok, err := readLengthPrefixed(r)
	if err != nil || !ok {
		return String{}, err
	}
	return String{Value: string(b), Valid: true}, nil
}

func writeLengthPrefixed(w io.Writer, b []byte) (int, error) {
	if len(b) > math.MaxInt32 {
		logger().Debug("byte string too long", Fields{"length": len(b)})
		return 0, BadEncoding
	}
	size, err := WriteI32(w, int32(len(b)))
	if err != nil {
		return 0, err
	}
	if len(b) == 0 {
		return size, nil
	}
	n, err := write(w, b)
	if err != nil {
		return 0, err
	}
	return size + n, nil
}

// readLengthPrefixed returns ok=false for the null encoding. A present
// zero-length value comes back as a non-nil empty slice.
func readLengthPrefixed(r io.Reader) ([]byte, bool, error) {
	n, err := ReadI32(r)
	if err != nil {
		return nil, false, err
	}
	if n == nullLength {
		return nil, false, nil
	}
	if n < 0 {
		logger().Debug("invalid byte string length", Fields{"length": n})
		return nil, false, BadDecoding
	}
	if int(n) <= maxPrealloc {
		buf := make([]byte, n)
		if _, err := ReadBytes(r, buf); err != nil {
			return nil, false, err
		}
		return buf, true, nil
	}

	// grow with the data actually received rather than trusting n up front
	var buf bytes.Buffer
	copied, err := io.CopyN(&buf, r, int64(n))
	if _, err := DecodeIOResult(copied, err); err != nil {
		return nil, false, err
	}
	return buf.Bytes(), true, nil
}
