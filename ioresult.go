package uacodec

// EncodeIOResult converts the outcome of a raw stream write into an encoding
// result. A failed write is logged and reported as BadEncoding; otherwise the
// number of bytes written is passed through.
func EncodeIOResult(n int, err error) (int, error) {
	if err != nil {
		logger().Debug("encoding error", Fields{"err": err})
		return 0, BadEncoding
	}
	return n, nil
}

// DecodeIOResult is the read-side counterpart of EncodeIOResult. A failed
// read is logged and reported as BadDecoding with the zero value of T.
func DecodeIOResult[T any](v T, err error) (T, error) {
	if err != nil {
		logger().Debug("decoding error", Fields{"err": err})
		var zero T
		return zero, BadDecoding
	}
	return v, nil
}
