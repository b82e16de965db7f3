package state

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/five82/apod98/internal/apod"
)

// Phase is the discrete position of the query lifecycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseFailure
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// ErrorKind tells presenters which class of failure produced ErrorMessage.
type ErrorKind int

const (
	ErrorNone ErrorKind = iota
	ErrorValidation
	ErrorNotFound
	ErrorMalformed
	ErrorNetwork
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorValidation:
		return "validation"
	case ErrorNotFound:
		return "not_found"
	case ErrorMalformed:
		return "malformed"
	case ErrorNetwork:
		return "network"
	default:
		return "none"
	}
}

// Failure describes a failed query in user-facing terms.
type Failure struct {
	Kind    ErrorKind
	Title   string
	Message string
}

// Snapshot is the query state observed by presenters.
type Snapshot struct {
	Phase Phase
	// Record is set only in PhaseSuccess.
	Record *apod.Record
	// Previous is the record that stays on screen beneath a validation alert.
	Previous *apod.Record

	ErrorTitle   string
	ErrorMessage string // set only in PhaseFailure
	ErrorKind    ErrorKind

	Query      string
	RequestID  string
	Generation uint64
	UpdatedAt  time.Time

	ConsecutiveNetworkFailures int
}

// IsOffline returns true when the provider has been unreachable for multiple queries.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveNetworkFailures >= 2
}

// Displayed returns the record a presenter should draw, if any.
func (s Snapshot) Displayed() *apod.Record {
	if s.Record != nil {
		return s.Record
	}
	return s.Previous
}

// Store holds the single query state and publishes every change to
// subscribers. Mutation and publication happen under one lock, so a
// subscriber never sees a half-applied transition.
type Store struct {
	mu       sync.Mutex
	snapshot Snapshot
	subs     map[int]chan Snapshot
	nextSub  int
}

// Begin moves the store to PhaseLoading for a new query, clearing any record
// and error. It returns the generation the eventual result must present to
// Succeed or Fail, plus a fresh request ID.
func (s *Store) Begin(query string) (uint64, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := Snapshot{
		Phase:                      PhaseLoading,
		Query:                      query,
		RequestID:                  uuid.NewString(),
		Generation:                 s.snapshot.Generation + 1,
		UpdatedAt:                  time.Now(),
		ConsecutiveNetworkFailures: s.snapshot.ConsecutiveNetworkFailures,
	}
	s.publishLocked(next)
	return next.Generation, next.RequestID
}

// Succeed applies a fetched record. It returns false, leaving the state
// untouched, when gen is stale or already resolved.
func (s *Store) Succeed(gen uint64, rec apod.Record) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.pendingLocked(gen) {
		return false
	}
	next := s.snapshot
	next.Phase = PhaseSuccess
	next.Record = &rec
	next.UpdatedAt = time.Now()
	next.ConsecutiveNetworkFailures = 0
	s.publishLocked(next)
	return true
}

// Fail applies a failed fetch. It returns false when gen is stale or already
// resolved.
func (s *Store) Fail(gen uint64, f Failure) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.pendingLocked(gen) {
		return false
	}
	next := s.snapshot
	next.Phase = PhaseFailure
	next.Record = nil
	next.ErrorTitle = f.Title
	next.ErrorMessage = f.Message
	next.ErrorKind = f.Kind
	next.UpdatedAt = time.Now()
	if f.Kind == ErrorNetwork {
		next.ConsecutiveNetworkFailures++
	} else {
		next.ConsecutiveNetworkFailures = 0
	}
	s.publishLocked(next)
	return true
}

// Reject records a query refused before any I/O. The record already on
// screen is kept as Previous instead of being cleared, and the generation
// advances so that an older in-flight fetch can no longer land.
func (s *Store) Reject(query string, f Failure) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := Snapshot{
		Phase:                      PhaseFailure,
		Previous:                   s.snapshot.Displayed(),
		ErrorTitle:                 f.Title,
		ErrorMessage:               f.Message,
		ErrorKind:                  f.Kind,
		Query:                      query,
		RequestID:                  uuid.NewString(),
		Generation:                 s.snapshot.Generation + 1,
		UpdatedAt:                  time.Now(),
		ConsecutiveNetworkFailures: s.snapshot.ConsecutiveNetworkFailures,
	}
	s.publishLocked(next)
	return next.Generation
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSnapshot(s.snapshot)
}

// Subscribe returns a channel that always holds the latest snapshot. Unread
// values are replaced rather than queued, so slow readers skip intermediate
// states but never block the store. The current snapshot is delivered
// immediately. Call the returned func to unsubscribe; it closes the channel.
func (s *Store) Subscribe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subs == nil {
		s.subs = make(map[int]chan Snapshot)
	}
	id := s.nextSub
	s.nextSub++
	ch := make(chan Snapshot, 1)
	ch <- cloneSnapshot(s.snapshot)
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
}

func (s *Store) pendingLocked(gen uint64) bool {
	return gen == s.snapshot.Generation && s.snapshot.Phase == PhaseLoading
}

func (s *Store) publishLocked(next Snapshot) {
	s.snapshot = next
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- cloneSnapshot(next):
		default:
		}
	}
}

func cloneSnapshot(snap Snapshot) Snapshot {
	if snap.Record != nil {
		rec := *snap.Record
		snap.Record = &rec
	}
	if snap.Previous != nil {
		prev := *snap.Previous
		snap.Previous = &prev
	}
	return snap
}
