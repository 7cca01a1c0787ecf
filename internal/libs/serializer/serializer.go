package serializer

import (
	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/neurketa/internal/constants"
	"github.com/hyp3rd/neurketa/internal/sentinel"
)

// ISerializer converts reports to and from bytes.
type ISerializer interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// Registry maps format names to serializer constructors.
type Registry struct {
	serializers map[string]func() ISerializer
}

// builtin lists the formats every report can be exported in.
func builtin() map[string]func() ISerializer {
	return map[string]func() ISerializer{
		constants.DefaultSerializer: func() ISerializer { return &DefaultJSONSerializer{} },
		constants.MsgpackSerializer: func() ISerializer { return &MsgpackSerializer{} },
		constants.CBORSerializer:    func() ISerializer { return &CBORSerializer{} },
	}
}

// NewSerializerRegistry returns a registry holding the json, msgpack and cbor formats.
func NewSerializerRegistry() *Registry {
	return &Registry{serializers: builtin()}
}

// NewEmptySerializerRegistry returns a registry with no formats.
func NewEmptySerializerRegistry() *Registry {
	return &Registry{serializers: make(map[string]func() ISerializer)}
}

// Register adds or replaces the format called name.
func (r *Registry) Register(name string, createFunc func() ISerializer) {
	r.serializers[name] = createFunc
}

// New builds the serializer of the format called name.
func (r *Registry) New(name string) (ISerializer, error) {
	if name == "" {
		return nil, ewrap.Wrap(sentinel.ErrParamCannotBeEmpty, "serializer name")
	}

	createFunc, ok := r.serializers[name]
	if !ok {
		return nil, ewrap.Wrapf(sentinel.ErrSerializerNotFound, "format %q", name)
	}

	return createFunc(), nil
}

// New builds a builtin serializer by format name.
func New(name string) (ISerializer, error) {
	return NewSerializerRegistry().New(name)
}
