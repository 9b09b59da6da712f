// Package text implements a codec for plain UTF-8 strings.
package text

import (
	"fmt"
	"io"

	"github.com/teenjuna/muxcodec/codec"
)

// Header is the on-wire header of the text codec.
const Header = "/text/UTF-8"

// Codec encodes string values as their raw UTF-8 bytes.
type Codec struct{}

var _ codec.Codec = (*Codec)(nil)

func New() *Codec {
	return &Codec{}
}

func (c *Codec) Header() string {
	return Header
}

func (c *Codec) Encodable(v any) bool {
	_, ok := v.(string)
	return ok
}

func (c *Codec) Encode(w io.Writer, v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("text: cannot encode %T", v)
	}
	_, err := io.WriteString(w, s)
	return err
}

func (c *Codec) Decodable(header string) bool {
	return header == Header
}

func (c *Codec) Decode(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}
