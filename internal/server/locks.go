package server

import "sync"

// pathLocks serializes edits per resolved file path so two concurrent tool
// calls can never interleave their decode-transform-replace cycles on the
// same file. Locks are created on first use and kept for the process
// lifetime; the set of edited paths is bounded by the image root contents.
type pathLocks struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}

func newPathLocks() *pathLocks {
	return &pathLocks{m: make(map[string]*sync.Mutex)}
}

// lock acquires the mutex for path and returns its unlock function.
func (l *pathLocks) lock(path string) func() {
	l.mu.Lock()
	m, ok := l.m[path]
	if !ok {
		m = &sync.Mutex{}
		l.m[path] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
