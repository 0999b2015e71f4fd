package grpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// jsonCodec serializes the hand-declared wire structs in proto.go. It is
// registered under the "json" content subtype and goes away together with
// proto.go once the buf-generated protobuf types land.
type jsonCodec struct{}

var _ encoding.Codec = jsonCodec{}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return "json"
}
