package gob_test

import (
	"bytes"
	stdgob "encoding/gob"
	"testing"

	"github.com/teenjuna/muxcodec/codec/gob"
	"github.com/teenjuna/muxcodec/internal/testing/require"
)

type Item struct {
	ID string
	N1 int
	N2 float64
}

func init() {
	stdgob.Register(Item{})
}

func TestCodec(t *testing.T) {
	codec := gob.New()

	require.True(t, codec.Encodable("abc"))
	require.False(t, codec.Encodable(nil))
	require.True(t, codec.Decodable(gob.Header))
	require.False(t, codec.Decodable("/json/"))

	item := Item{ID: "42", N1: 1, N2: 2.5}

	var buf bytes.Buffer
	require.Nil(t, codec.Encode(&buf, item))

	v, err := codec.Decode(&buf)
	require.Nil(t, err)
	require.Equal(t, v, item)
}
