package codec

// Bytes passes []byte through unchanged on Encode. Decode returns a copy, so
// callers cannot mutate a buffer a provider still holds.
type Bytes struct{}

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }

func (Bytes) Decode(b []byte) ([]byte, error) {
	if b == nil {
		return nil, nil
	}
	return append([]byte{}, b...), nil
}

// String does no UTF-8 validation.
type String struct{}

func (String) Encode(s string) ([]byte, error) { return []byte(s), nil }
func (String) Decode(b []byte) (string, error) { return string(b), nil }
