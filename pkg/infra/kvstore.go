package infra

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
)

// KVStore is the key-value abstraction the journal cache is written against.
type KVPair struct {
	Key   string
	Value []byte
}

type KVStore interface {
	GetName() string
	Set(k string, v string) error
	Get(k string) (v string, err error)
	// SetAny and GetAny store structured values through the store's Codec.
	SetAny(k string, v any) error
	GetAny(k string, v any) (found bool, err error)

	List(prefix string) ([]*KVPair, error)
	Delete(k string) error
	Close() error
}

// Codec encodes/decodes Go values to/from slices of bytes.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

var (
	JSON = JSONcodec{}
	Gob  = GobCodec{}
)

type JSONcodec struct{}

func (c JSONcodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (c JSONcodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// GobCodec is more compact than JSON but only readable from Go.
type GobCodec struct{}

func (c GobCodec) Marshal(v any) ([]byte, error) {
	buffer := new(bytes.Buffer)
	if err := gob.NewEncoder(buffer).Encode(v); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func (c GobCodec) Unmarshal(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

// CodecByName resolves the kvstore codec setting; empty means JSON.
func CodecByName(name string) (Codec, bool) {
	switch name {
	case "", "json":
		return JSON, true
	case "gob":
		return Gob, true
	}
	return nil, false
}
