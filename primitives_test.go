package uacodec

import (
	"bytes"
	"errors"
	"io"
	"math"
	"sync"
	"testing"
)

type logEntry struct {
	level string
	msg   string
	f     Fields
}

type recordLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordLogger) add(level, msg string, f Fields) {
	l.mu.Lock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, f: f})
	l.mu.Unlock()
}

func (l *recordLogger) Debug(msg string, f Fields) { l.add("debug", msg, f) }
func (l *recordLogger) Info(msg string, f Fields)  { l.add("info", msg, f) }
func (l *recordLogger) Warn(msg string, f Fields)  { l.add("warn", msg, f) }
func (l *recordLogger) Error(msg string, f Fields) { l.add("error", msg, f) }

func (l *recordLogger) all() []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]logEntry(nil), l.entries...)
}

func useRecordLogger(t *testing.T) *recordLogger {
	t.Helper()
	rl := &recordLogger{}
	SetLogger(rl)
	t.Cleanup(func() { SetLogger(nil) })
	return rl
}

type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

// shortWriter breaks the io.Writer contract by dropping a byte silently.
type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) { return len(p) - 1, nil }

type failReader struct{ err error }

func (r failReader) Read([]byte) (int, error) { return 0, r.err }

func roundTrip[T any](t *testing.T, width int, v T,
	enc func(io.Writer, T) (int, error),
	dec func(io.Reader) (T, error),
	same func(a, b T) bool,
) {
	t.Helper()
	var buf bytes.Buffer
	n, err := enc(&buf, v)
	if err != nil {
		t.Fatalf("encode %v: %v", v, err)
	}
	if n != width || buf.Len() != width {
		t.Fatalf("encode %v: n=%d len=%d want %d", v, n, buf.Len(), width)
	}
	got, err := dec(&buf)
	if err != nil {
		t.Fatalf("decode %v: %v", v, err)
	}
	if !same(got, v) {
		t.Fatalf("round trip mismatch: got %v want %v", got, v)
	}
	if buf.Len() != 0 {
		t.Fatalf("decode left %d bytes", buf.Len())
	}
}

func eq[T comparable](a, b T) bool { return a == b }

func sameF32(a, b float32) bool { return math.Float32bits(a) == math.Float32bits(b) }
func sameF64(a, b float64) bool { return math.Float64bits(a) == math.Float64bits(b) }

func TestScalarRoundTrip(t *testing.T) {
	for _, v := range []uint8{0, 1, 0x7F, 0x80, math.MaxUint8} {
		roundTrip(t, 1, v, WriteU8, ReadU8, eq[uint8])
	}
	for _, v := range []int8{0, 1, -1, math.MinInt8, math.MaxInt8} {
		roundTrip(t, 1, v, WriteI8, ReadI8, eq[int8])
	}
	for _, v := range []bool{false, true} {
		roundTrip(t, 1, v, WriteBool, ReadBool, eq[bool])
	}
	for _, v := range []int16{0, 1, -1, math.MinInt16, math.MaxInt16} {
		roundTrip(t, 2, v, WriteI16, ReadI16, eq[int16])
	}
	for _, v := range []uint16{0, 1, 256, math.MaxUint16} {
		roundTrip(t, 2, v, WriteU16, ReadU16, eq[uint16])
	}
	for _, v := range []int32{0, 1, -1, math.MinInt32, math.MaxInt32} {
		roundTrip(t, 4, v, WriteI32, ReadI32, eq[int32])
	}
	for _, v := range []uint32{0, 1, 0xDEADBEEF, math.MaxUint32} {
		roundTrip(t, 4, v, WriteU32, ReadU32, eq[uint32])
	}
	for _, v := range []int64{0, 1, -1, math.MinInt64, math.MaxInt64} {
		roundTrip(t, 8, v, WriteI64, ReadI64, eq[int64])
	}
	for _, v := range []uint64{0, 1, 0x0102030405060708, math.MaxUint64} {
		roundTrip(t, 8, v, WriteU64, ReadU64, eq[uint64])
	}

	f32s := []float32{
		0,
		math.Float32frombits(0x80000000), // -0
		1.5,
		-math.MaxFloat32,
		math.MaxFloat32,
		math.SmallestNonzeroFloat32,
		float32(math.Inf(1)),
		float32(math.Inf(-1)),
		math.Float32frombits(0x7FC00000), // quiet NaN
		math.Float32frombits(0x7F800001), // signalling NaN with payload
		math.Float32frombits(0xFFC00123), // negative NaN with payload
	}
	for _, v := range f32s {
		roundTrip(t, 4, v, WriteF32, ReadF32, sameF32)
	}

	f64s := []float64{
		0,
		math.Copysign(0, -1),
		-2.25,
		-math.MaxFloat64,
		math.MaxFloat64,
		math.SmallestNonzeroFloat64,
		math.Inf(1),
		math.Inf(-1),
		math.NaN(),
		math.Float64frombits(0x7FF0000000000001),
		math.Float64frombits(0xFFF8000000000ABC),
	}
	for _, v := range f64s {
		roundTrip(t, 8, v, WriteF64, ReadF64, sameF64)
	}
}

func TestScalarWireBytes(t *testing.T) {
	cases := []struct {
		name string
		enc  func(w io.Writer) (int, error)
		want []byte
	}{
		{"i32 -1", func(w io.Writer) (int, error) { return WriteI32(w, -1) }, []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{"u16 0x0102", func(w io.Writer) (int, error) { return WriteU16(w, 0x0102) }, []byte{0x02, 0x01}},
		{"i16 min", func(w io.Writer) (int, error) { return WriteI16(w, math.MinInt16) }, []byte{0x00, 0x80}},
		{"u32", func(w io.Writer) (int, error) { return WriteU32(w, 0x04030201) }, []byte{1, 2, 3, 4}},
		{"i64 min", func(w io.Writer) (int, error) { return WriteI64(w, math.MinInt64) }, []byte{0, 0, 0, 0, 0, 0, 0, 0x80}},
		{"f32 1.0", func(w io.Writer) (int, error) { return WriteF32(w, 1) }, []byte{0x00, 0x00, 0x80, 0x3F}},
		{"f64 1.0", func(w io.Writer) (int, error) { return WriteF64(w, 1) }, []byte{0, 0, 0, 0, 0, 0, 0xF0, 0x3F}},
		{"f64 -0", func(w io.Writer) (int, error) { return WriteF64(w, math.Copysign(0, -1)) }, []byte{0, 0, 0, 0, 0, 0, 0, 0x80}},
		{"bool true", func(w io.Writer) (int, error) { return WriteBool(w, true) }, []byte{0x01}},
		{"i8 -2", func(w io.Writer) (int, error) { return WriteI8(w, -2) }, []byte{0xFE}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			n, err := tc.enc(&buf)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if n != len(tc.want) || !bytes.Equal(buf.Bytes(), tc.want) {
				t.Fatalf("got n=%d % X, want % X", n, buf.Bytes(), tc.want)
			}
		})
	}
}

func TestReadBoolNonZeroIsTrue(t *testing.T) {
	v, err := ReadBool(bytes.NewReader([]byte{0x02}))
	if err != nil || !v {
		t.Fatalf("got %v, %v; want true", v, err)
	}
}

func TestTruncatedScalarsFailWithBadDecoding(t *testing.T) {
	readers := []struct {
		name  string
		width int
		read  func(io.Reader) (any, error)
	}{
		{"u8", 1, func(r io.Reader) (any, error) { return ReadU8(r) }},
		{"i8", 1, func(r io.Reader) (any, error) { return ReadI8(r) }},
		{"bool", 1, func(r io.Reader) (any, error) { return ReadBool(r) }},
		{"i16", 2, func(r io.Reader) (any, error) { return ReadI16(r) }},
		{"u16", 2, func(r io.Reader) (any, error) { return ReadU16(r) }},
		{"i32", 4, func(r io.Reader) (any, error) { return ReadI32(r) }},
		{"u32", 4, func(r io.Reader) (any, error) { return ReadU32(r) }},
		{"i64", 8, func(r io.Reader) (any, error) { return ReadI64(r) }},
		{"u64", 8, func(r io.Reader) (any, error) { return ReadU64(r) }},
		{"f32", 4, func(r io.Reader) (any, error) { return ReadF32(r) }},
		{"f64", 8, func(r io.Reader) (any, error) { return ReadF64(r) }},
	}
	for _, tc := range readers {
		t.Run(tc.name, func(t *testing.T) {
			for avail := 0; avail < tc.width; avail++ {
				src := bytes.Repeat([]byte{0xAB}, avail)
				v, err := tc.read(bytes.NewReader(src))
				if !errors.Is(err, BadDecoding) {
					t.Fatalf("avail=%d: got err %v, want BadDecoding", avail, err)
				}
				if v != nil && !isZero(v) {
					t.Fatalf("avail=%d: partial value %v returned", avail, v)
				}
			}
		})
	}
}

func isZero(v any) bool {
	switch x := v.(type) {
	case uint8:
		return x == 0
	case int8:
		return x == 0
	case bool:
		return !x
	case int16:
		return x == 0
	case uint16:
		return x == 0
	case int32:
		return x == 0
	case uint32:
		return x == 0
	case int64:
		return x == 0
	case uint64:
		return x == 0
	case float32:
		return math.Float32bits(x) == 0
	case float64:
		return math.Float64bits(x) == 0
	}
	return false
}

func TestReadBytesExact(t *testing.T) {
	r := bytes.NewReader([]byte{1, 2, 3, 4, 5})
	buf := make([]byte, 3)
	n, err := ReadBytes(r, buf)
	if err != nil || n != 3 || !bytes.Equal(buf, []byte{1, 2, 3}) {
		t.Fatalf("ReadBytes: n=%d err=%v buf=%v", n, err, buf)
	}

	n, err = ReadBytes(r, make([]byte, 3))
	if !errors.Is(err, BadDecoding) || n != 0 {
		t.Fatalf("short ReadBytes: n=%d err=%v, want 0 BadDecoding", n, err)
	}
}

func TestWriteFailureIsBadEncodingAndLogged(t *testing.T) {
	rl := useRecordLogger(t)
	cause := errors.New("disk full")

	n, err := WriteU64(failWriter{err: cause}, 42)
	if err != BadEncoding || n != 0 {
		t.Fatalf("got n=%d err=%v, want 0 BadEncoding", n, err)
	}
	if errors.Is(err, cause) {
		t.Fatalf("underlying error leaked to caller")
	}

	entries := rl.all()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].level != "debug" || entries[0].msg != "encoding error" || entries[0].f["err"] != cause {
		t.Fatalf("unexpected log entry: %+v", entries[0])
	}
}

func TestShortWriteIsBadEncoding(t *testing.T) {
	useRecordLogger(t)
	if _, err := WriteU32(shortWriter{}, 7); err != BadEncoding {
		t.Fatalf("got %v, want BadEncoding", err)
	}
}

func TestReadFailureIsBadDecodingAndLogged(t *testing.T) {
	rl := useRecordLogger(t)
	cause := errors.New("connection reset")

	v, err := ReadI32(failReader{err: cause})
	if err != BadDecoding || v != 0 {
		t.Fatalf("got v=%d err=%v, want 0 BadDecoding", v, err)
	}
	entries := rl.all()
	if len(entries) != 1 || entries[0].msg != "decoding error" || entries[0].f["err"] != cause {
		t.Fatalf("unexpected log entries: %+v", entries)
	}
}

func TestSuccessDoesNotLog(t *testing.T) {
	rl := useRecordLogger(t)
	var buf bytes.Buffer
	if _, err := WriteF64(&buf, 3.5); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadF64(&buf); err != nil {
		t.Fatal(err)
	}
	if got := rl.all(); len(got) != 0 {
		t.Fatalf("expected no log output, got %+v", got)
	}
}

func TestErrorStrings(t *testing.T) {
	if BadEncoding.Error() == BadDecoding.Error() {
		t.Fatalf("sentinels must be distinguishable")
	}
	if Error(0).Error() != "uacodec: unknown error" {
		t.Fatalf("unexpected zero Error string %q", Error(0).Error())
	}
}
