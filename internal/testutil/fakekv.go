// Package testutil provides testing utilities.
package testutil

import (
	"sync"
)

// FakeKV is an in-memory implementation of storage.KV for testing.
// It records every Put in order so tests can assert write ordering.
type FakeKV struct {
	mu   sync.Mutex
	data map[string][]byte

	// writes holds a copy of every value passed to Put, in call order.
	writes [][]byte

	// Error injection for testing
	getErr   error
	putErr   error
	closeErr error
}

// NewFakeKV creates an empty FakeKV.
func NewFakeKV() *FakeKV {
	return &FakeKV{data: make(map[string][]byte)}
}

// Seed stores value under key without recording a write.
func (f *FakeKV) Seed(key string, value []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = append([]byte(nil), value...)
}

// SetGetErr makes subsequent Get calls fail with err (nil clears).
func (f *FakeKV) SetGetErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getErr = err
}

// SetPutErr makes subsequent Put calls fail with err (nil clears).
func (f *FakeKV) SetPutErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.putErr = err
}

// SetCloseErr makes Close fail with err.
func (f *FakeKV) SetCloseErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closeErr = err
}

// Get implements storage.KV.
func (f *FakeKV) Get(key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	v, ok := f.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

// Put implements storage.KV.
func (f *FakeKV) Put(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return f.putErr
	}
	v := append([]byte(nil), value...)
	f.data[key] = v
	f.writes = append(f.writes, v)
	return nil
}

// Close implements storage.KV.
func (f *FakeKV) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closeErr
}

// Value returns the current value under key, or nil.
func (f *FakeKV) Value(key string) []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.data[key] == nil {
		return nil
	}
	return append([]byte(nil), f.data[key]...)
}

// Writes returns a copy of every successful Put value, in call order.
func (f *FakeKV) Writes() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]byte, len(f.writes))
	copy(out, f.writes)
	return out
}
