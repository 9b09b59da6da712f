// Package gob implements a codec backed by encoding/gob.
//
// Values travel through the mux as any, so concrete types must be
// registered with [encoding/gob.Register] before encoding.
package gob

import (
	"encoding/gob"
	"io"

	"github.com/teenjuna/muxcodec/codec"
)

// Header is the on-wire header of the gob codec.
const Header = "/gob/"

type Codec struct{}

var _ codec.Codec = (*Codec)(nil)

func New() *Codec {
	return &Codec{}
}

func (c *Codec) Header() string {
	return Header
}

func (c *Codec) Encodable(v any) bool {
	return v != nil
}

func (c *Codec) Encode(w io.Writer, v any) error {
	return gob.NewEncoder(w).Encode(&v)
}

func (c *Codec) Decodable(header string) bool {
	return header == Header
}

func (c *Codec) Decode(r io.Reader) (any, error) {
	var v any
	if err := gob.NewDecoder(r).Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
