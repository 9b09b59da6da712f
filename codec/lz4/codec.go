// Package lz4 implements a codec that wraps around a concrete codec
// implementation to provide fast LZ4 compression of its payload.
package lz4

import (
	"io"

	"github.com/pierrec/lz4/v4"

	"github.com/teenjuna/muxcodec/codec"
)

// Header is the on-wire header of the LZ4 wrapper codec.
const Header = "/lz4/"

// Codec compresses the payload of an inner codec with the LZ4 frame
// format. The inner codec's own header is not written; on the wire the
// frame is identified by the wrapper's header alone.
type Codec struct {
	inner codec.Codec
}

var _ codec.Codec = (*Codec)(nil)

func New(inner codec.Codec) *Codec {
	return &Codec{inner: inner}
}

func (c *Codec) Header() string {
	return Header
}

func (c *Codec) Encodable(v any) bool {
	return c.inner.Encodable(v)
}

func (c *Codec) Encode(w io.Writer, v any) error {
	zw := lz4.NewWriter(w)
	if err := c.inner.Encode(zw, v); err != nil {
		return err
	}
	return zw.Close()
}

func (c *Codec) Decodable(header string) bool {
	return header == Header
}

func (c *Codec) Decode(r io.Reader) (any, error) {
	return c.inner.Decode(lz4.NewReader(r))
}
