// Package serializer provides serialization interfaces and implementations for converting
// reports to and from byte slices.
//
// The package includes a default JSON serializer implementation that uses the goccy/go-json
// library, a msgpack serializer and a CBOR serializer.
package serializer

import (
	"github.com/goccy/go-json"
	"github.com/hyp3rd/ewrap"
)

// DefaultJSONSerializer leverages `goccy/go-json` to encode reports.
type DefaultJSONSerializer struct{}

// Marshal serializes the given value into a byte slice.
func (*DefaultJSONSerializer) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, ewrap.Wrap(err, "json encode")
	}

	return data, nil
}

// Unmarshal deserializes the given byte slice into the given value.
func (*DefaultJSONSerializer) Unmarshal(data []byte, v any) error {
	err := json.Unmarshal(data, v)
	if err != nil {
		return ewrap.Wrap(err, "json decode")
	}

	return nil
}
