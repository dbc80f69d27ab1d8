package codec

import (
	"bytes"
	"encoding/json"
)

// JSON decodes numbers held in interface values as json.Number, so int64
// readings inside map[string]any survive without float rounding.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }

func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return v, err
	}
	if dec.More() {
		return v, ErrTrailingBytes
	}
	return v, nil
}
