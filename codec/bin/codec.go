// Package bin implements a codec for raw byte slices.
package bin

import (
	"fmt"
	"io"

	"github.com/teenjuna/muxcodec/codec"
)

// Header is the on-wire header of the binary codec.
const Header = "/bin/"

// Codec passes byte slices through unchanged.
type Codec struct{}

var _ codec.Codec = (*Codec)(nil)

func New() *Codec {
	return &Codec{}
}

func (c *Codec) Header() string {
	return Header
}

func (c *Codec) Encodable(v any) bool {
	_, ok := v.([]byte)
	return ok
}

func (c *Codec) Encode(w io.Writer, v any) error {
	b, ok := v.([]byte)
	if !ok {
		return fmt.Errorf("bin: cannot encode %T", v)
	}
	_, err := w.Write(b)
	return err
}

func (c *Codec) Decodable(header string) bool {
	return header == Header
}

func (c *Codec) Decode(r io.Reader) (any, error) {
	return io.ReadAll(r)
}
