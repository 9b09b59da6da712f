// Package zstd implements a codec that wraps around a concrete codec
// implementation to provide zstandard compression of its payload.
package zstd

import (
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/teenjuna/muxcodec/codec"
)

// Header is the on-wire header of the zstd wrapper codec.
const Header = "/zstd/"

// Codec compresses the payload of an inner codec with the zstd stream
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
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if err := c.inner.Encode(zw, v); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

func (c *Codec) Decodable(header string) bool {
	return header == Header
}

func (c *Codec) Decode(r io.Reader) (any, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	return c.inner.Decode(zr)
}
