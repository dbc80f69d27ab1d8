package uacodec

import (
	"bytes"
	"encoding/json"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// Array keeps the null/empty distinction in the self-describing formats
// too: JSON null vs [], msgpack nil vs a zero-length array, CBOR null vs [].

// cborNull and cborUndefined are the CBOR simple values 0xf6 and 0xf7.
var (
	jsonNull      = []byte("null")
	cborNull      = []byte{0xf6}
	cborUndefined = []byte{0xf7}
)

func (a Array[T]) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(a.nonNilValues())
}

func (a *Array[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), jsonNull) {
		*a = Array[T]{}
		return nil
	}
	var values []T
	if err := json.Unmarshal(b, &values); err != nil {
		return err
	}
	*a = ArrayOf(values...)
	return nil
}

var (
	_ msgpack.CustomEncoder = Array[Int32]{}
	_ msgpack.CustomDecoder = (*Array[Int32])(nil)
)

func (a Array[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if !a.Valid {
		return enc.EncodeNil()
	}
	if err := enc.EncodeArrayLen(len(a.Values)); err != nil {
		return err
	}
	for i := range a.Values {
		if err := enc.Encode(a.Values[i]); err != nil {
			return err
		}
	}
	return nil
}

func (a *Array[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n == -1 {
		*a = Array[T]{}
		return nil
	}
	values := make([]T, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		var v T
		if err := dec.Decode(&v); err != nil {
			return err
		}
		values = append(values, v)
	}
	*a = ArrayOf(values...)
	return nil
}

func (a Array[T]) MarshalCBOR() ([]byte, error) {
	if !a.Valid {
		return []byte{0xf6}, nil
	}
	return cbor.Marshal(a.nonNilValues())
}

func (a *Array[T]) UnmarshalCBOR(b []byte) error {
	if bytes.Equal(b, cborNull) || bytes.Equal(b, cborUndefined) {
		*a = Array[T]{}
		return nil
	}
	var values []T
	if err := cbor.Unmarshal(b, &values); err != nil {
		return err
	}
	*a = ArrayOf(values...)
	return nil
}

// nonNilValues keeps encoders that map nil slices to null from turning a
// present empty array into a null one.
func (a Array[T]) nonNilValues() []T {
	if a.Values == nil {
		return []T{}
	}
	return a.Values
}
