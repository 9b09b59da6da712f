package store_test

import (
	"path"
	"testing"

	"github.com/teenjuna/muxcodec"
	"github.com/teenjuna/muxcodec/codec/bin"
	"github.com/teenjuna/muxcodec/codec/text"
	"github.com/teenjuna/muxcodec/internal/testing/require"
	"github.com/teenjuna/muxcodec/store"
)

func newMux(t *testing.T) *muxcodec.Mux {
	t.Helper()

	mux, err := muxcodec.New(
		"text", text.New(),
		"bin", bin.New(),
	)
	require.Nil(t, err)

	return mux
}

func TestStoreRoundTrip(t *testing.T) {
	s, err := store.New(newMux(t))
	require.Nil(t, err)
	defer s.Close()

	textID, err := s.Put("abc 123!")
	require.Nil(t, err)

	payload := []byte{0xDE, 0xAD}
	binID, err := s.Put(payload)
	require.Nil(t, err)

	v, err := s.Get(textID)
	require.Nil(t, err)
	require.Equal(t, v, "abc 123!")

	v, err = s.Get(binID)
	require.Nil(t, err)
	require.Equal(t, v, payload)

	key, err := s.Key(textID)
	require.Nil(t, err)
	require.Equal(t, key, "text")

	key, err = s.Key(binID)
	require.Nil(t, err)
	require.Equal(t, key, "bin")

	ids, err := s.List()
	require.Nil(t, err)
	require.Equal(t, ids, []store.FrameID{textID, binID})

	stats, err := s.Stats()
	require.Nil(t, err)
	require.Equal(t, stats.Frames, 2)
	require.True(t, stats.Bytes > 0)

	require.Nil(t, s.Delete(textID, binID))

	_, err = s.Get(textID)
	require.ErrorIs(t, err, store.ErrNotFound)

	stats, err = s.Stats()
	require.Nil(t, err)
	require.Equal(t, stats.Frames, 0)
}

func TestStoreNoCodec(t *testing.T) {
	s, err := store.New(newMux(t))
	require.Nil(t, err)
	defer s.Close()

	_, err = s.Put(struct{ X int }{X: 1})

	var noCodec *muxcodec.NoCodecError
	require.ErrorAs(t, err, &noCodec)

	ids, err := s.List()
	require.Nil(t, err)
	require.Equal(t, len(ids), 0)
}

func TestStoreUnknownID(t *testing.T) {
	s, err := store.New(newMux(t))
	require.Nil(t, err)
	defer s.Close()

	_, err = s.Get("missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Key("missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestStoreFile(t *testing.T) {
	file := path.Join(t.TempDir(), "frames.db")
	mux := newMux(t)

	s, err := store.New(mux, func(c *store.Config) {
		c.File(file)
		c.Durable(true)
	})
	require.Nil(t, err)

	id, err := s.Put("persisted")
	require.Nil(t, err)
	require.Nil(t, s.Close())

	// The frame survives a reopen.
	s, err = store.New(mux, func(c *store.Config) {
		c.File(file)
	})
	require.Nil(t, err)
	defer s.Close()

	v, err := s.Get(id)
	require.Nil(t, err)
	require.Equal(t, v, "persisted")
}

func TestStoreClosed(t *testing.T) {
	s, err := store.New(newMux(t))
	require.Nil(t, err)
	require.Nil(t, s.Close())

	_, err = s.Put("abc")
	require.ErrorIs(t, err, store.ErrClosed)

	_, err = s.Get("abc")
	require.ErrorIs(t, err, store.ErrClosed)

	_, err = s.List()
	require.ErrorIs(t, err, store.ErrClosed)

	_, err = s.Stats()
	require.ErrorIs(t, err, store.ErrClosed)
}
