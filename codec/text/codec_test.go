package text_test

import (
	"bytes"
	"testing"

	"github.com/teenjuna/muxcodec/codec/text"
	"github.com/teenjuna/muxcodec/internal/testing/require"
)

func TestCodec(t *testing.T) {
	codec := text.New()

	require.True(t, codec.Encodable("abc 123!"))
	require.False(t, codec.Encodable([]byte("abc")))
	require.True(t, codec.Decodable(text.Header))
	require.False(t, codec.Decodable("/bin/"))

	var buf bytes.Buffer
	require.Nil(t, codec.Encode(&buf, "abc 123!"))
	require.Equal(t, buf.String(), "abc 123!")

	v, err := codec.Decode(&buf)
	require.Nil(t, err)
	require.Equal(t, v, "abc 123!")
}

func TestCodecRejectsNonString(t *testing.T) {
	codec := text.New()

	var buf bytes.Buffer
	require.NotNil(t, codec.Encode(&buf, 42))
	require.Equal(t, buf.Len(), 0)
}
