package serializer

import (
	"errors"
	"testing"

	"github.com/longbridgeapp/assert"

	"github.com/hyp3rd/neurketa/internal/sentinel"
)

func TestRegistry_New(t *testing.T) {
	tests := []struct {
		name    string
		kind    string
		wantErr error
	}{
		{name: "json", kind: "default"},
		{name: "msgpack", kind: "msgpack"},
		{name: "cbor", kind: "cbor"},
		{name: "empty name", kind: "", wantErr: sentinel.ErrParamCannotBeEmpty},
		{name: "unknown", kind: "yaml", wantErr: sentinel.ErrSerializerNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.kind)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}

			if tt.wantErr == nil {
				assert.True(t, s != nil)
			}
		})
	}
}

func TestEmptyRegistry(t *testing.T) {
	r := NewEmptySerializerRegistry()

	_, err := r.New("default")
	assert.True(t, errors.Is(err, sentinel.ErrSerializerNotFound))

	r.Register("default", func() ISerializer { return &DefaultJSONSerializer{} })

	s, err := r.New("default")
	assert.Nil(t, err)

	data, err := s.Marshal(map[string]int{"n": 3})
	assert.Nil(t, err)
	assert.Equal(t, `{"n":3}`, string(data))
}

func TestRegistry_RegisterReplacesBuiltin(t *testing.T) {
	r := NewSerializerRegistry()
	r.Register("cbor", func() ISerializer { return &MsgpackSerializer{} })

	s, err := r.New("cbor")
	assert.Nil(t, err)

	_, ok := s.(*MsgpackSerializer)
	assert.True(t, ok)

	// the package-level registry is rebuilt on every call
	s, err = New("cbor")
	assert.Nil(t, err)

	_, ok = s.(*CBORSerializer)
	assert.True(t, ok)
}
