package serializer

import (
	"github.com/hyp3rd/ewrap"
	"github.com/ugorji/go/codec"
)

// CBORSerializer encodes reports as CBOR through `ugorji/go/codec`.
type CBORSerializer struct {
	handle codec.CborHandle
}

// Marshal serializes the given value into a byte slice.
func (s *CBORSerializer) Marshal(v any) ([]byte, error) {
	var data []byte

	err := codec.NewEncoderBytes(&data, &s.handle).Encode(v)
	if err != nil {
		return nil, ewrap.Wrap(err, "cbor encode")
	}

	return data, nil
}

// Unmarshal deserializes the given byte slice into the given value.
func (s *CBORSerializer) Unmarshal(data []byte, v any) error {
	err := codec.NewDecoderBytes(data, &s.handle).Decode(v)
	if err != nil {
		return ewrap.Wrap(err, "cbor decode")
	}

	return nil
}
