// Package codec converts values to and from []byte.
//
// Binary speaks the uacodec wire format for any Codable type (arrays
// included). Msgpack, CBOR, JSON and Protobuf cover values that do not
// implement Codable. LimitCodec guards Decode against oversized input.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
