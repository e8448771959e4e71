// Package domain defines the enrollment rules for the activity service.
package domain

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	// ErrUnknownActivity is returned when a mutation or query names an
	// activity that was never provisioned.
	ErrUnknownActivity = errors.New("activity not found")
	// ErrInvalidParticipant is returned when the participant identifier is
	// empty.
	ErrInvalidParticipant = errors.New("participant email is required")
	// ErrDuplicateParticipant is returned when a participant signs up for an
	// activity they are already enrolled in. A repeat signup is an error,
	// not a no-op.
	ErrDuplicateParticipant = errors.New("participant is already signed up")
	// ErrActivityFull is returned when a signup would exceed the activity's
	// capacity.
	ErrActivityFull = errors.New("activity is full")
	// ErrParticipantNotFound is returned when a withdrawal names a
	// participant who is not enrolled.
	ErrParticipantNotFound = errors.New("participant is not signed up")
)

// entry is the authoritative record for one activity. Its mutex serializes
// mutations so the capacity check and the append are a single atomic step.
type entry struct {
	mu              sync.Mutex
	description     string
	schedule        string
	maxParticipants int
	participants    []string
}

func (e *entry) snapshot(name string) Activity {
	participants := make([]string, len(e.participants))
	copy(participants, e.participants)
	return Activity{
		Name:            name,
		Description:     e.description,
		Schedule:        e.schedule,
		MaxParticipants: e.maxParticipants,
		Participants:    participants,
	}
}

// Store holds the authoritative participant sets for every provisioned
// activity. Activities are added once at startup; after that only the
// participant sets change, exclusively through Signup and Withdraw.
// Mutations on different activities proceed independently.
type Store struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]*entry
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{entries: make(map[string]*entry)}
}

// Add provisions an activity. Name, capacity, and schedule are fixed for the
// lifetime of the store. The seed participant list must already satisfy the
// capacity and uniqueness invariants.
func (s *Store) Add(name, description, schedule string, maxParticipants int, participants []string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("activity name is required")
	}
	if maxParticipants <= 0 {
		return fmt.Errorf("activity %q: max_participants must be > 0", name)
	}
	if len(participants) > maxParticipants {
		return fmt.Errorf("activity %q: %d seed participants exceed capacity %d", name, len(participants), maxParticipants)
	}
	seen := make(map[string]struct{}, len(participants))
	seeded := make([]string, 0, len(participants))
	for _, p := range participants {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("activity %q: empty participant in seed list", name)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("activity %q: duplicate participant %q in seed list", name, p)
		}
		seen[p] = struct{}{}
		seeded = append(seeded, p)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[name]; exists {
		return fmt.Errorf("activity %q already provisioned", name)
	}
	s.entries[name] = &entry{
		description:     description,
		schedule:        schedule,
		maxParticipants: maxParticipants,
		participants:    seeded,
	}
	s.order = append(s.order, name)
	return nil
}

// ListActivities returns a snapshot of every activity in provisioning order.
// Each snapshot is copied under that activity's mutation lock, so no record
// shows an activity mid-mutation.
func (s *Store) ListActivities() []Activity {
	s.mu.RLock()
	names := make([]string, len(s.order))
	copy(names, s.order)
	s.mu.RUnlock()

	out := make([]Activity, 0, len(names))
	for _, name := range names {
		e := s.lookup(name)
		if e == nil {
			continue
		}
		e.mu.Lock()
		out = append(out, e.snapshot(name))
		e.mu.Unlock()
	}
	return out
}

// Get returns a snapshot of a single activity.
func (s *Store) Get(name string) (Activity, error) {
	e := s.lookup(name)
	if e == nil {
		return Activity{}, ErrUnknownActivity
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot(name), nil
}

// Signup enrolls a participant. The duplicate and capacity checks and the
// append happen under the activity's lock; on failure nothing changes. The
// returned snapshot reflects the state after the signup.
func (s *Store) Signup(name, participant string) (Activity, error) {
	if strings.TrimSpace(participant) == "" {
		return Activity{}, ErrInvalidParticipant
	}
	e := s.lookup(name)
	if e == nil {
		return Activity{}, ErrUnknownActivity
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, existing := range e.participants {
		if existing == participant {
			return Activity{}, ErrDuplicateParticipant
		}
	}
	if len(e.participants) == e.maxParticipants {
		return Activity{}, ErrActivityFull
	}
	e.participants = append(e.participants, participant)
	return e.snapshot(name), nil
}

// Withdraw removes a participant. The returned snapshot reflects the state
// after the removal.
func (s *Store) Withdraw(name, participant string) (Activity, error) {
	e := s.lookup(name)
	if e == nil {
		return Activity{}, ErrUnknownActivity
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i, existing := range e.participants {
		if existing == participant {
			e.participants = append(e.participants[:i], e.participants[i+1:]...)
			return e.snapshot(name), nil
		}
	}
	return Activity{}, ErrParticipantNotFound
}

func (s *Store) lookup(name string) *entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[name]
}
