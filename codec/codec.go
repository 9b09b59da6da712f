// This package contains the main [Codec] interface and several
// implementations inside subpackages.
package codec

import "io"

// Codec encodes and decodes values of one serialization format, identified
// on the wire by its header string.
//
// Implementations never read or write their own header inside Encode or
// Decode; header framing belongs to the caller.
type Codec interface {
	// Header returns the codec's header string, e.g. "/text/UTF-8".
	Header() string
	// Encodable reports whether the codec can encode v.
	Encodable(v any) bool
	// Encode writes the encoded form of v to w.
	Encode(w io.Writer, v any) error
	// Decodable reports whether the codec recognizes the given header.
	Decodable(header string) bool
	// Decode reads an encoded value from the payload bytes of r.
	Decode(r io.Reader) (any, error)
}
