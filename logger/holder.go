package logger

import "sync"

// Holder lazily builds one shared Logger. An application creates a Holder at
// its composition root and passes it, or the Logger it returns, to the code
// that logs.
type Holder struct {
	mu     sync.Mutex
	config Config
	logger *Logger
	err    error
}

// NewHolder returns a Holder that builds its Logger from config on first use.
func NewHolder(config Config) *Holder {
	return &Holder{config: config}
}

// Get returns the shared Logger, building it on the first call. A
// construction error is returned on every call.
func (h *Holder) Get() (*Logger, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.logger == nil && h.err == nil {
		h.logger, h.err = New(h.config)
	}
	return h.logger, h.err
}

// Set replaces the shared Logger, e.g. with a fresh one per test.
func (h *Holder) Set(l *Logger) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.logger, h.err = l, nil
}
