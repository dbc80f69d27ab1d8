package wire

import (
	"bytes"
	"errors"
	"io"

	"github.com/unkn0wn-root/uacodec"
)

const (
	version    byte = 1
	kindSingle byte = 1
	kindBulk   byte = 2
)

var (
	ErrCorrupt = errors.New("uacodec: corrupt entry")
	magic4     = [...]byte{'U', 'A', 'C', 'B'}
)

const headerLen = 4 + 1 + 1

func writeHeader(buf *bytes.Buffer, kind byte) {
	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(kind)
}

func readHeader(r io.Reader, kind byte) error {
	var hdr [headerLen]byte
	if _, err := uacodec.ReadBytes(r, hdr[:]); err != nil {
		return ErrCorrupt
	}
	if !bytes.Equal(hdr[:4], magic4[:]) || hdr[4] != version || hdr[5] != kind {
		return ErrCorrupt
	}
	return nil
}

// Single: magic(4) | ver(1) | kind(1=single) | payload(bytestring)
func EncodeSingle(payload []byte) ([]byte, error) {
	if payload == nil {
		payload = []byte{}
	}
	p := uacodec.ByteString(payload)

	var buf bytes.Buffer
	buf.Grow(headerLen + p.ByteLen())
	writeHeader(&buf, kindSingle)
	if _, err := p.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeSingle rejects null payloads and trailing bytes.
func DecodeSingle(b []byte) ([]byte, error) {
	r := bytes.NewReader(b)
	if err := readHeader(r, kindSingle); err != nil {
		return nil, err
	}
	p, err := uacodec.ByteString(nil).Decode(r)
	if err != nil || p == nil || r.Len() != 0 {
		return nil, ErrCorrupt
	}
	return p, nil
}

// Bulk:
//
//	magic(4) | ver(1) | kind(2=bulk) | items(array)
//	item = key(string) | payload(bytestring)
type BulkItem struct {
	Key     string
	Payload []byte
}

// bulkItem is the Codable form of BulkItem.
type bulkItem struct {
	key     uacodec.String
	payload uacodec.ByteString
}

func (it bulkItem) ByteLen() int { return it.key.ByteLen() + it.payload.ByteLen() }

func (it bulkItem) Encode(w io.Writer) (int, error) {
	n, err := it.key.Encode(w)
	if err != nil {
		return 0, err
	}
	m, err := it.payload.Encode(w)
	if err != nil {
		return 0, err
	}
	return n + m, nil
}

func (bulkItem) Decode(r io.Reader) (bulkItem, error) {
	key, err := uacodec.String{}.Decode(r)
	if err != nil {
		return bulkItem{}, err
	}
	payload, err := uacodec.ByteString(nil).Decode(r)
	if err != nil {
		return bulkItem{}, err
	}
	return bulkItem{key: key, payload: payload}, nil
}

var errInvalidKey = errors.New("uacodec: invalid key in bulk")

func EncodeBulk(items []BulkItem) ([]byte, error) {
	arr := uacodec.ArrayOf(make([]bulkItem, 0, len(items))...)
	for _, it := range items {
		if it.Key == "" {
			return nil, errInvalidKey
		}
		payload := it.Payload
		if payload == nil {
			payload = []byte{}
		}
		arr.Values = append(arr.Values, bulkItem{
			key:     uacodec.StringOf(it.Key),
			payload: payload,
		})
	}

	var buf bytes.Buffer
	buf.Grow(headerLen + arr.ByteLen())
	writeHeader(&buf, kindBulk)
	if _, err := uacodec.WriteArray(&buf, arr); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func DecodeBulk(b []byte) ([]BulkItem, error) {
	r := bytes.NewReader(b)
	if err := readHeader(r, kindBulk); err != nil {
		return nil, err
	}
	arr, err := uacodec.ReadArray[bulkItem](r)
	if err != nil || arr.IsNull() || r.Len() != 0 {
		return nil, ErrCorrupt
	}

	items := make([]BulkItem, 0, arr.Len())
	for _, it := range arr.Values {
		if it.key.IsNull() || it.key.Value == "" || it.payload == nil {
			return nil, ErrCorrupt
		}
		items = append(items, BulkItem{Key: it.key.Value, Payload: it.payload})
	}
	return items, nil
}
