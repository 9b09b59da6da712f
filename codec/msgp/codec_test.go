package msgp_test

import (
	"bytes"
	"testing"

	codec "github.com/teenjuna/muxcodec/codec/msgp"
	"github.com/teenjuna/muxcodec/internal/testing/require"
	"github.com/tinylib/msgp/msgp"
)

func TestCodec(t *testing.T) {
	c := codec.New()

	raw := msgp.Raw(msgp.AppendString(nil, "abc 123!"))

	require.True(t, c.Encodable(raw))
	require.False(t, c.Encodable("abc"))
	require.True(t, c.Decodable(codec.Header))
	require.False(t, c.Decodable("/json/"))

	var buf bytes.Buffer
	require.Nil(t, c.Encode(&buf, raw))

	v, err := c.Decode(&buf)
	require.Nil(t, err)
	require.Equal(t, v, raw)
}

func TestCodecRejectsPlainValue(t *testing.T) {
	c := codec.New()

	var buf bytes.Buffer
	require.NotNil(t, c.Encode(&buf, 42))
	require.Equal(t, buf.Len(), 0)
}
