package json_test

import (
	"bytes"
	"testing"

	"github.com/teenjuna/muxcodec/codec/json"
	"github.com/teenjuna/muxcodec/internal/testing/require"
)

func TestCodec(t *testing.T) {
	codec := json.New()

	// The JSON codec is a catch-all.
	require.True(t, codec.Encodable("abc"))
	require.True(t, codec.Encodable(struct{ X int }{X: 1}))
	require.True(t, codec.Decodable(json.Header))
	require.False(t, codec.Decodable("/cbor/"))

	value := map[string]any{
		"name":  "frame",
		"count": float64(3),
		"tags":  []any{"a", "b"},
	}

	var buf bytes.Buffer
	require.Nil(t, codec.Encode(&buf, value))

	v, err := codec.Decode(&buf)
	require.Nil(t, err)
	require.Equal(t, v, value)
}
