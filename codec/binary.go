package codec

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/unkn0wn-root/uacodec"
)

// ErrTrailingBytes is returned (wrapped together with uacodec.BadDecoding)
// when input remains after a complete value has been decoded.
var ErrTrailingBytes = errors.New("codec: trailing bytes after value")

// Binary is a Codec for Codable types using the uacodec little-endian wire
// format. The zero value is ready to use.
//
//	c := codec.Binary[uacodec.Array[uacodec.UInt16]]{}
//	b, _ := c.Encode(uacodec.ArrayOf[uacodec.UInt16](1, 256))
type Binary[T uacodec.Codable[T]] struct{}

var _ Codec[uacodec.Array[uacodec.Int32]] = Binary[uacodec.Array[uacodec.Int32]]{}

func (Binary[T]) Encode(v T) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(v.ByteLen())
	if _, err := v.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode requires b to hold exactly one value.
func (Binary[T]) Decode(b []byte) (T, error) {
	var zero T
	r := bytes.NewReader(b)
	v, err := zero.Decode(r)
	if err != nil {
		return zero, err
	}
	if r.Len() != 0 {
		return zero, fmt.Errorf("%w (%d bytes): %w", ErrTrailingBytes, r.Len(), uacodec.BadDecoding)
	}
	return v, nil
}
