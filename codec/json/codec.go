// Package json implements a catch-all JSON codec.
//
// Encodable accepts every value, so a mux entry using this codec acts as a
// fallback and should be registered last.
package json

import (
	"encoding/json"
	"io"

	"github.com/teenjuna/muxcodec/codec"
)

// Header is the on-wire header of the JSON codec.
const Header = "/json/"

// Codec encodes any value with encoding/json. Decoded values use the
// generic JSON types: map[string]any, []any, float64, string, bool, nil.
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
	return json.NewEncoder(w).Encode(v)
}

func (c *Codec) Decodable(header string) bool {
	return header == Header
}

func (c *Codec) Decode(r io.Reader) (any, error) {
	var v any
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
