package uacodec

import (
	"io"
	"math"
)

// Codable is implemented by every type that takes part in the wire format.
// ByteLen must report exactly the number of bytes Encode writes. Decode is
// called on the zero value and returns a freshly decoded instance.
type Codable[T any] interface {
	ByteLen() int
	Encode(w io.Writer) (int, error)
	Decode(r io.Reader) (T, error)
}

// nullLength is the length prefix of an absent array.
const nullLength int32 = -1

// maxPrealloc caps the capacity reserved from an untrusted length prefix.
// Larger arrays still decode, they just grow as elements arrive.
const maxPrealloc = 1024

// Array is an optional sequence of T. The zero value is the null (absent)
// array; Valid with no values is the empty array.
//
// Array is itself Codable, so arrays nest.
type Array[T Codable[T]] struct {
	Values []T
	Valid  bool
}

var _ Codable[Array[UInt16]] = Array[UInt16]{}

// NullArray returns the absent array.
func NullArray[T Codable[T]]() Array[T] { return Array[T]{} }

// ArrayOf returns a present array holding values. With no arguments it is
// the empty array, not the null one.
func ArrayOf[T Codable[T]](values ...T) Array[T] {
	if values == nil {
		values = []T{}
	}
	return Array[T]{Values: values, Valid: true}
}

func (a Array[T]) IsNull() bool { return !a.Valid }
func (a Array[T]) Len() int     { return len(a.Values) }

func (a Array[T]) ByteLen() int                       { return ByteLenArray(a) }
func (a Array[T]) Encode(w io.Writer) (int, error)    { return WriteArray(w, a) }
func (Array[T]) Decode(r io.Reader) (Array[T], error) { return ReadArray[T](r) }

// ByteLenArray returns the encoded size of a: the 4-byte length prefix plus
// every element's ByteLen.
func ByteLenArray[T Codable[T]](a Array[T]) int {
	size := 4
	if !a.Valid {
		return size
	}
	for _, v := range a.Values {
		size += v.ByteLen()
	}
	return size
}

// WriteArray writes the length prefix (-1 when a is null) followed by each
// element in order. It stops at the first failing element.
func WriteArray[T Codable[T]](w io.Writer, a Array[T]) (int, error) {
	if !a.Valid {
		return WriteI32(w, nullLength)
	}
	if len(a.Values) > math.MaxInt32 {
		logger().Debug("array too long", Fields{"length": len(a.Values)})
		return 0, BadEncoding
	}
	size, err := WriteI32(w, int32(len(a.Values)))
	if err != nil {
		return 0, err
	}
	for _, v := range a.Values {
		n, err := v.Encode(w)
		if err != nil {
			return 0, encodeFailure(err)
		}
		size += n
	}
	return size, nil
}

// ReadArray reads an array written by WriteArray. A length of -1 yields the
// null array; any other negative length is BadDecoding. If an element fails
// to decode, the elements read so far are discarded.
func ReadArray[T Codable[T]](r io.Reader) (Array[T], error) {
	n, err := ReadI32(r)
	if err != nil {
		return Array[T]{}, err
	}
	if n == nullLength {
		return Array[T]{}, nil
	}
	if n < 0 {
		logger().Debug("invalid array length", Fields{"length": n})
		return Array[T]{}, BadDecoding
	}

	var zero T
	values := make([]T, 0, min(int(n), maxPrealloc))
	for i := int32(0); i < n; i++ {
		v, err := zero.Decode(r)
		if err != nil {
			return Array[T]{}, decodeFailure(err)
		}
		values = append(values, v)
	}
	return Array[T]{Values: values, Valid: true}, nil
}
