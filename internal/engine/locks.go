package engine

import "sync"

// learnerLocks serializes state mutation per learner. One learner's
// state is a serialization domain; different learners proceed in
// parallel without coordination.
type learnerLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newLearnerLocks() *learnerLocks {
	return &learnerLocks{locks: make(map[string]*sync.Mutex)}
}

// forLearner returns the mutex for a learner, creating it on first use.
// Locks are never removed; the learner population is small and long-lived.
func (l *learnerLocks) forLearner(learnerID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[learnerID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[learnerID] = m
	}
	return m
}
