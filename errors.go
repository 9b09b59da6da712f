package muxcodec

import (
	"fmt"
	"strings"
)

// NoCodecError is returned by [Mux.Encode] and [Mux.Decode] when no
// registered codec matches. It carries the full key set and the value or
// header that failed to match, so a misconfigured registry can be diagnosed
// without tracing.
type NoCodecError struct {
	// Keys are the registered codec keys, in registration order.
	Keys []string
	// Value is the value that no codec accepted. Set on the encode path.
	Value any
	// Header is the header that no codec recognized. Set on the decode path.
	Header string
}

func (e *NoCodecError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf(
			"muxcodec: no codec for value of type %T (registered: %s)",
			e.Value, strings.Join(e.Keys, ", "),
		)
	}
	return fmt.Sprintf(
		"muxcodec: no codec for header %q (registered: %s)",
		e.Header, strings.Join(e.Keys, ", "),
	)
}

// NotFoundError is returned by [Mux.Select] when the requested key is not
// registered.
type NotFoundError struct {
	// Key is the requested key.
	Key string
	// Keys are the valid keys, in registration order.
	Keys []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(
		"muxcodec: codec %q not found (registered: %s)",
		e.Key, strings.Join(e.Keys, ", "),
	)
}

// ConfigError is returned by [New] and [NewEntries] for an empty or
// malformed registry. A mux is never constructed partially.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "muxcodec: invalid configuration: " + e.Reason
}
