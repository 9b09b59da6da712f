// Package msgp implements a MessagePack codec backed by tinylib/msgp.
//
// Encodable accepts any value implementing [msgp.Encodable], which msgp's
// code generator produces. Decode returns the payload as [msgp.Raw], one
// complete MessagePack object copied from the stream, to be unmarshaled
// into a concrete type by the caller.
package msgp

import (
	"fmt"
	"io"

	"github.com/tinylib/msgp/msgp"

	"github.com/teenjuna/muxcodec/codec"
)

// Header is the on-wire header of the MessagePack codec.
const Header = "/msgpack/"

type Codec struct{}

var _ codec.Codec = (*Codec)(nil)

func New() *Codec {
	return &Codec{}
}

func (c *Codec) Header() string {
	return Header
}

func (c *Codec) Encodable(v any) bool {
	_, ok := v.(msgp.Encodable)
	return ok
}

func (c *Codec) Encode(w io.Writer, v any) error {
	e, ok := v.(msgp.Encodable)
	if !ok {
		return fmt.Errorf("msgp: cannot encode %T", v)
	}
	return msgp.Encode(w, e)
}

func (c *Codec) Decodable(header string) bool {
	return header == Header
}

func (c *Codec) Decode(r io.Reader) (any, error) {
	var raw msgp.Raw
	if err := msgp.Decode(r, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
