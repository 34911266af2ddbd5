// Package otpstore holds short-lived one-time-code records keyed by email.
// The interface exists so the process-local map can be swapped for a shared
// store (e.g. Redis) in multi-instance deployments without touching the
// reset flow itself.
package otpstore

import (
	"sync"
	"time"
)

// Entry is one live OTP record. The code itself is never stored, only a
// bcrypt hash of it, together with an absolute expiry instant.
type Entry struct {
	CodeHash  string
	ExpiresAt time.Time
}

type Store interface {
	// Put overwrites any existing entry for the key.
	Put(key string, entry Entry)
	Get(key string) (Entry, bool)
	Delete(key string)
}

// Memory is the single-process implementation. It is a hard scalability
// ceiling: records live in one process and are lost on restart.
type Memory struct {
	mu      sync.Mutex
	entries map[string]Entry
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]Entry)}
}

func (m *Memory) Put(key string, entry Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = entry
}

func (m *Memory) Get(key string) (Entry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	return e, ok
}

func (m *Memory) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}
