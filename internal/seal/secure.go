package seal

import (
	"runtime"
	"sync"
)

// SecureBytes holds a secret in mlocked memory and zeroes it on Destroy.
type SecureBytes struct {
	mu     sync.Mutex
	data   []byte
	locked bool
}

// SecureBytesFromSlice copies data into a new locked buffer.
func SecureBytesFromSlice(data []byte) (*SecureBytes, error) {
	sb := &SecureBytes{data: make([]byte, len(data))}
	copy(sb.data, data)

	// Locking is best effort; unprivileged processes may hit RLIMIT_MEMLOCK.
	sb.locked = mlock(sb.data)

	runtime.SetFinalizer(sb, func(s *SecureBytes) {
		s.Destroy()
	})
	return sb, nil
}

// Bytes returns the secret, or nil once destroyed.
func (s *SecureBytes) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

// IsLocked reports whether the buffer is mlocked.
func (s *SecureBytes) IsLocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked
}

// Len returns the secret length, zero once destroyed.
func (s *SecureBytes) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// Destroy zeroes and unlocks the buffer. Safe to call more than once.
func (s *SecureBytes) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return
	}
	Zero(s.data)
	if s.locked {
		munlock(s.data)
		s.locked = false
	}
	s.data = nil
	runtime.SetFinalizer(s, nil)
}

// Zero overwrites b with zeroes.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
