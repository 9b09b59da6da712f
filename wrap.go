package muxcodec

import (
	"fmt"
	"io"
)

// Wrap adapts a bare codec into a complete encode/decode unit that writes
// its own framed header before the payload and validates the header on
// read-back. [Mux.Select] uses it to expose one sub-codec standalone.
func Wrap(c Codec) Codec {
	return &headered{inner: c}
}

type headered struct {
	inner Codec
}

var _ Codec = (*headered)(nil)

func (h *headered) Header() string {
	return h.inner.Header()
}

func (h *headered) Encodable(v any) bool {
	return h.inner.Encodable(v)
}

func (h *headered) Encode(w io.Writer, v any) error {
	return EncodeWithHeader(w, h.inner, v)
}

func (h *headered) Decodable(header string) bool {
	return h.inner.Decodable(header)
}

func (h *headered) Decode(r io.Reader) (any, error) {
	header, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	if !h.inner.Decodable(header) {
		return nil, fmt.Errorf(
			"muxcodec: unexpected header %q for codec %q",
			header, h.inner.Header(),
		)
	}
	return h.inner.Decode(r)
}
