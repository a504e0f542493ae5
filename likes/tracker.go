package likes

import (
	"errors"
	"sync"
)

type State int

const (
	Idle State = iota
	Pending
	Confirmed
	RolledBack
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Confirmed:
		return "confirmed"
	case RolledBack:
		return "rolled-back"
	default:
		return "unknown"
	}
}

var (
	ErrAlreadyLiked = errors.New("post already liked")
	ErrInFlight     = errors.New("like request already in flight")
	ErrNotPending   = errors.New("no like request in flight")
)

// Tracker holds the displayed like count of one post for one visitor.
// A like is applied optimistically, then either confirmed with the server's
// count or rolled back. Only one like per Tracker can succeed.
type Tracker struct {
	mu    sync.Mutex
	state State
	count int
}

func NewTracker(initial int) *Tracker {
	if initial < 0 {
		initial = 0
	}
	return &Tracker{count: initial}
}

// Begin applies the optimistic increment. It fails while a request is in
// flight and after a like was confirmed.
func (t *Tracker) Begin() (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.state {
	case Pending:
		return t.count, ErrInFlight
	case Confirmed:
		return t.count, ErrAlreadyLiked
	}
	t.state = Pending
	t.count++
	return t.count, nil
}

// Succeed replaces the optimistic guess with the server's count.
func (t *Tracker) Succeed(serverCount int) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != Pending {
		return t.count, ErrNotPending
	}
	t.state = Confirmed
	t.count = serverCount
	return t.count, nil
}

// Fail undoes the optimistic increment and re-arms the tracker.
func (t *Tracker) Fail() (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != Pending {
		return t.count, ErrNotPending
	}
	t.state = RolledBack
	t.count--
	return t.count, nil
}

func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *Tracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

// Liked reports whether this visitor's like has been confirmed.
func (t *Tracker) Liked() bool {
	return t.State() == Confirmed
}
