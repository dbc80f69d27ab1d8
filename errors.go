package uacodec

import "errors"

// Error classifies a failed encode or decode. It only says which direction
// failed; the underlying cause is logged at debug level and dropped.
type Error uint8

const (
	BadEncoding Error = iota + 1
	BadDecoding
)

func (e Error) Error() string {
	switch e {
	case BadEncoding:
		return "uacodec: bad encoding"
	case BadDecoding:
		return "uacodec: bad decoding"
	default:
		return "uacodec: unknown error"
	}
}

// encodeFailure collapses err into BadEncoding unless it already is a
// classified Error.
func encodeFailure(err error) error {
	var e Error
	if errors.As(err, &e) {
		return e
	}
	_, err = EncodeIOResult(0, err)
	return err
}

func decodeFailure(err error) error {
	var e Error
	if errors.As(err, &e) {
		return e
	}
	_, err = DecodeIOResult(0, err)
	return err
}
