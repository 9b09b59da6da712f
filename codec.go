// Package muxcodec multiplexes several codecs behind a single encode/decode
// API. Every payload is prefixed with a short human-readable header that
// identifies its encoding, so heterogeneous data can be stored or streamed
// without out-of-band type information.
package muxcodec

import "io"

// Encoder is the encode half of a codec.
//
// Encodable is a pure predicate: implementations must not touch the value or
// any shared state when answering it.
type Encoder interface {
	// Encodable reports whether the codec can encode v.
	Encodable(v any) bool
	// Encode writes the encoded form of v to w. It must not write a header;
	// header framing belongs to the caller.
	Encode(w io.Writer, v any) error
}

// Decoder is the decode half of a codec.
type Decoder interface {
	// Decodable reports whether the codec recognizes the given header.
	Decodable(header string) bool
	// Decode reads an encoded value from r. The header has already been
	// consumed by the caller; r is positioned at the first payload byte.
	Decode(r io.Reader) (any, error)
}

// Codec encodes and decodes values of one serialization format, identified
// on the wire by its header string.
type Codec interface {
	// Header returns the codec's header string, e.g. "/text/UTF-8".
	Header() string

	Encoder
	Decoder
}

// EncodeWithHeader writes the codec's framed header followed immediately by
// the encoded payload of v. This is the complete on-wire form of a value.
func EncodeWithHeader(w io.Writer, c Codec, v any) error {
	if err := WriteHeader(w, c.Header()); err != nil {
		return err
	}
	return c.Encode(w, v)
}
