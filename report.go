package muxcodec

import "sync"

// Report is a caller-supplied cell that captures which codec handled the
// most recent encode or decode dispatched through a mux derived with
// [Mux.WithReport]. It is pure observability: recording never affects
// dispatch.
//
// The zero value is ready to use. A Report is safe for concurrent use, but
// the usual pattern is one Report per logical task so that Key answers
// "what did this operation pick".
type Report struct {
	mu  sync.Mutex
	key string
	set bool
}

// Key returns the key of the last dispatched codec and whether any dispatch
// has been recorded.
func (r *Report) Key() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.key, r.set
}

// Reset clears the report to its unset state.
func (r *Report) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.key = ""
	r.set = false
}

func (r *Report) record(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.key = key
	r.set = true
}
