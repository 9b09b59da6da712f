package muxcodec

import (
	"fmt"
	"io"
)

// Entry is a single keyed codec in a mux registry.
type Entry struct {
	// Key identifies the codec within the mux, e.g. "text".
	Key string
	// Codec handles values and headers matched to this entry.
	Codec Codec
}

// Mux dispatches encode and decode operations to the first matching codec
// in its registry.
//
// The registry order is the dispatch priority: selection is strictly
// first-match-wins, so a fallback codec that accepts everything must be
// registered last. A Mux is immutable after construction and safe for
// concurrent use.
type Mux struct {
	entries []Entry
	report  *Report
	metrics *metrics
}

var (
	_ Encoder = (*Mux)(nil)
	_ Decoder = (*Mux)(nil)
)

// New constructs a mux from a flat alternating list of string keys and
// codecs:
//
//	mux, err := muxcodec.New(
//		"text", text.New(),
//		"bin", bin.New(),
//	)
//
// It returns a [ConfigError] if the list is empty, has an odd number of
// elements, or contains anything other than alternating keys and codecs.
func New(args ...any) (*Mux, error) {
	if len(args)%2 != 0 {
		return nil, &ConfigError{Reason: "odd number of key/codec arguments"}
	}

	entries := make([]Entry, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			return nil, &ConfigError{
				Reason: fmt.Sprintf("argument %d: expected string key, got %T", i, args[i]),
			}
		}
		codec, ok := args[i+1].(Codec)
		if !ok {
			return nil, &ConfigError{
				Reason: fmt.Sprintf("argument %d: expected Codec, got %T", i+1, args[i+1]),
			}
		}
		entries = append(entries, Entry{Key: key, Codec: codec})
	}

	return NewEntries(entries...)
}

// NewEntries constructs a mux from pre-paired entries. It returns a
// [ConfigError] if no entries are given or an entry is incomplete.
// Registration order is preserved verbatim as dispatch priority.
func NewEntries(entries ...Entry) (*Mux, error) {
	if len(entries) == 0 {
		return nil, &ConfigError{Reason: "at least one codec is required"}
	}
	for i, e := range entries {
		if e.Key == "" {
			return nil, &ConfigError{Reason: fmt.Sprintf("entry %d: empty key", i)}
		}
		if e.Codec == nil {
			return nil, &ConfigError{Reason: fmt.Sprintf("entry %d (%s): nil codec", i, e.Key)}
		}
	}

	registry := make([]Entry, len(entries))
	copy(registry, entries)

	return &Mux{entries: registry}, nil
}

// WithReport returns a mux sharing this mux's registry that records the key
// of every dispatched codec into r. The receiver is not modified, so the
// report's scope is exactly the lifetime of the returned mux. Each
// concurrent caller should attach its own Report.
func (m *Mux) WithReport(r *Report) *Mux {
	derived := *m
	derived.report = r
	return &derived
}

// WithMetrics returns a mux sharing this mux's registry that counts
// dispatches and misses with the given Prometheus configuration.
func (m *Mux) WithMetrics(c *PrometheusConfig) *Mux {
	derived := *m
	derived.metrics = c.metrics()
	return &derived
}

// Keys returns the registered codec keys in registration order.
func (m *Mux) Keys() []string {
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return keys
}

// Encodable reports whether at least one registered codec carries a
// non-empty header and accepts v. It has no side effects.
func (m *Mux) Encodable(v any) bool {
	for _, e := range m.entries {
		if e.Codec.Header() != "" && e.Codec.Encodable(v) {
			return true
		}
	}
	return false
}

// Encode selects the first registered codec that carries a non-empty header
// and accepts v, then writes the codec's framed header followed by the
// encoded payload to w.
//
// If no codec matches, Encode returns a [NoCodecError] and writes nothing.
func (m *Mux) Encode(w io.Writer, v any) error {
	for _, e := range m.entries {
		if e.Codec.Header() == "" || !e.Codec.Encodable(v) {
			continue
		}
		m.dispatched(e.Key, opEncode)
		return EncodeWithHeader(w, e.Codec, v)
	}

	m.missed(opEncode)
	return &NoCodecError{Keys: m.Keys(), Value: v}
}

// Decodable reports whether at least one registered codec recognizes the
// given header. It has no side effects.
func (m *Mux) Decodable(header string) bool {
	for _, e := range m.entries {
		if e.Codec.Decodable(header) {
			return true
		}
	}
	return false
}

// Decode reads one framed header from the front of r, selects the first
// registered codec that recognizes it, and delegates decoding of the
// remaining payload bytes to that codec.
//
// If no codec recognizes the header, Decode returns a [NoCodecError].
func (m *Mux) Decode(r io.Reader) (any, error) {
	header, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	for _, e := range m.entries {
		if !e.Codec.Decodable(header) {
			continue
		}
		m.dispatched(e.Key, opDecode)
		return e.Codec.Decode(r)
	}

	m.missed(opDecode)
	return nil, &NoCodecError{Keys: m.Keys(), Header: header}
}

// Select returns the codec registered under key, adapted to write and
// expect its own header on the wire. The returned codec produces bytes
// identical to dispatching the same value through the full mux, without the
// scan step. Select never touches the dispatch report or metrics.
//
// It returns a [NotFoundError] if the key is not registered.
func (m *Mux) Select(key string) (Codec, error) {
	for _, e := range m.entries {
		if e.Key == key {
			return Wrap(e.Codec), nil
		}
	}
	return nil, &NotFoundError{Key: key, Keys: m.Keys()}
}

const (
	opEncode = "encode"
	opDecode = "decode"
)

func (m *Mux) dispatched(key, op string) {
	if m.report != nil {
		m.report.record(key)
	}
	if m.metrics != nil {
		m.metrics.dispatches.WithLabelValues(key, op).Inc()
	}
}

func (m *Mux) missed(op string) {
	if m.metrics != nil {
		m.metrics.misses.WithLabelValues(op).Inc()
	}
}
