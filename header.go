package muxcodec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// MaxHeaderLength is the maximum length in bytes of a framed header,
// including the trailing newline. Keeping it under 128 means the length
// prefix always fits in a single varint byte.
const MaxHeaderLength = 127

var (
	// ErrEmptyHeader is returned by WriteHeader for an empty header string.
	ErrEmptyHeader = errors.New("muxcodec: empty header")
	// ErrHeaderTooLong is returned by WriteHeader when the header exceeds
	// [MaxHeaderLength].
	ErrHeaderTooLong = errors.New("muxcodec: header too long")
	// ErrMalformedHeader is returned by ReadHeader when the framed header
	// has an invalid length prefix or is missing its newline terminator.
	ErrMalformedHeader = errors.New("muxcodec: malformed header")
)

// WriteHeader writes a framed header to w: a varint byte count followed by
// the header text and a newline. The payload is expected to follow
// immediately with no separator.
func WriteHeader(w io.Writer, header string) error {
	if header == "" {
		return ErrEmptyHeader
	}
	if len(header)+1 > MaxHeaderLength {
		return fmt.Errorf("%w: %d bytes", ErrHeaderTooLong, len(header))
	}

	buf := make([]byte, 0, len(header)+2)
	buf = binary.AppendUvarint(buf, uint64(len(header)+1))
	buf = append(buf, header...)
	buf = append(buf, '\n')

	_, err := w.Write(buf)
	return err
}

// ReadHeader reads one framed header from the front of r and returns the
// header string without its newline terminator. It consumes exactly the
// framing bytes and the header text, leaving r positioned at the first
// payload byte.
func ReadHeader(r io.Reader) (string, error) {
	length, err := binary.ReadUvarint(oneByteReader{r})
	if err != nil {
		return "", fmt.Errorf("muxcodec: read header length: %w", err)
	}
	if length == 0 || length > MaxHeaderLength {
		return "", fmt.Errorf("%w: length %d", ErrMalformedHeader, length)
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("muxcodec: read header: %w", err)
	}
	if buf[length-1] != '\n' {
		return "", fmt.Errorf("%w: missing newline", ErrMalformedHeader)
	}

	return string(buf[:length-1]), nil
}

// oneByteReader adapts an io.Reader to io.ByteReader without buffering, so
// reading the varint length prefix never consumes payload bytes.
type oneByteReader struct {
	r io.Reader
}

func (b oneByteReader) ReadByte() (byte, error) {
	var p [1]byte
	if _, err := io.ReadFull(b.r, p[:]); err != nil {
		return 0, err
	}
	return p[0], nil
}
