package codec

import (
	"errors"

	"google.golang.org/protobuf/proto"
)

var ErrNoConstructor = errors.New("codec: protobuf codec has no message constructor")

type Protobuf[T proto.Message] struct {
	new func() T
}

// NewProtobuf takes the constructor Decode uses for fresh messages, e.g.
// func() *pb.Reading { return &pb.Reading{} }.
func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.MarshalOptions{Deterministic: true}.Marshal(v)
}

func (c Protobuf[T]) Decode(b []byte) (T, error) {
	var zero T
	if c.new == nil {
		return zero, ErrNoConstructor
	}
	m := c.new()
	if err := proto.Unmarshal(b, m); err != nil {
		return zero, err
	}
	return m, nil
}
