package muxcodec_test

import (
	"bytes"
	"testing"

	"github.com/teenjuna/muxcodec"
	"github.com/teenjuna/muxcodec/codec/bin"
	"github.com/teenjuna/muxcodec/codec/text"
	"github.com/teenjuna/muxcodec/internal/testing/require"
)

func TestWrapRoundTrip(t *testing.T) {
	wrapped := muxcodec.Wrap(text.New())

	require.Equal(t, wrapped.Header(), text.Header)
	require.True(t, wrapped.Encodable("hello"))
	require.True(t, wrapped.Decodable(text.Header))

	var buf bytes.Buffer
	require.Nil(t, wrapped.Encode(&buf, "hello"))

	var manual bytes.Buffer
	require.Nil(t, muxcodec.EncodeWithHeader(&manual, text.New(), "hello"))
	require.Equal(t, buf.Bytes(), manual.Bytes())

	v, err := wrapped.Decode(&buf)
	require.Nil(t, err)
	require.Equal(t, v, "hello")
}

func TestWrapRejectsForeignHeader(t *testing.T) {
	var buf bytes.Buffer
	require.Nil(t, muxcodec.Wrap(bin.New()).Encode(&buf, []byte{1, 2, 3}))

	_, err := muxcodec.Wrap(text.New()).Decode(&buf)
	require.NotNil(t, err)
}
