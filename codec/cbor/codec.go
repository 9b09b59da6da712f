// Package cbor implements a catch-all CBOR codec using Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. Same logical data always produces identical
// bytes.
package cbor

import (
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/teenjuna/muxcodec/codec"
)

// Header is the on-wire header of the CBOR codec.
const Header = "/cbor/"

var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("cbor: encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// When the decode target is any, the CBOR default map type is
		// map[interface{}]interface{} (CBOR allows non-string keys), which
		// is incompatible with most Go code expecting map[string]any. This
		// only affects any-typed targets.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("cbor: decoder initialization failed: " + err.Error())
	}
}

// Codec encodes any value as deterministic CBOR.
type Codec struct{}

var _ codec.Codec = (*Codec)(nil)

func New() *Codec {
	return &Codec{}
}

func (c *Codec) Header() string {
	return Header
}

func (c *Codec) Encodable(v any) bool {
	return true
}

func (c *Codec) Encode(w io.Writer, v any) error {
	return encMode.NewEncoder(w).Encode(v)
}

func (c *Codec) Decodable(header string) bool {
	return header == Header
}

func (c *Codec) Decode(r io.Reader) (any, error) {
	var v any
	if err := decMode.NewDecoder(r).Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
