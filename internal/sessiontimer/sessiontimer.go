// Package sessiontimer tracks admin inactivity on the client side.
//
// A Timer moves between Idle, Active, Warned and Expired. Activity slides the deadline forward;
// ticks move the timer to Warned shortly before the deadline and to Expired once it passes.
// Time is only ever read from the injected Clock, so tests drive it with a fake one.
package sessiontimer

import (
	"context"
	"sync"
	"time"
)

const (
	DefaultTimeout    = 2 * time.Minute
	DefaultWarnBefore = 30 * time.Second
)

// State is the inactivity state of a session.
type State int

const (
	Idle State = iota
	Active
	Warned
	Expired
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	case Warned:
		return "warned"
	case Expired:
		return "expired"
	default:
		return "unknown"
	}
}

// Event drives the state machine.
type Event int

const (
	Login Event = iota
	Activity
	Tick
	Logout
)

func (e Event) String() string {
	switch e {
	case Login:
		return "login"
	case Activity:
		return "activity"
	case Tick:
		return "tick"
	case Logout:
		return "logout"
	default:
		return "unknown"
	}
}

// Clock is the only source of time for a Timer.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// Transition describes one accepted event. From and To are equal when activity only moved the deadline.
type Transition struct {
	From     State
	To       State
	Event    Event
	At       time.Time
	Deadline time.Time
}

// Listener observes transitions. Listeners run synchronously after the state changed and may call back into the Timer.
type Listener func(Transition)

// Config sets the inactivity window. Zero values take the defaults.
type Config struct {
	Timeout    time.Duration
	WarnBefore time.Duration
}

// Timer is safe for concurrent use.
type Timer struct {
	clock      Clock
	timeout    time.Duration
	warnBefore time.Duration

	mu        sync.Mutex
	state     State
	deadline  time.Time
	listeners []Listener
}

// New creates an Idle timer.
func New(clock Clock, cfg Config) *Timer {
	if clock == nil {
		clock = SystemClock
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.WarnBefore <= 0 || cfg.WarnBefore >= cfg.Timeout {
		cfg.WarnBefore = min(DefaultWarnBefore, cfg.Timeout/2)
	}

	return &Timer{
		clock:      clock,
		timeout:    cfg.Timeout,
		warnBefore: cfg.WarnBefore,
		state:      Idle,
	}
}

// Subscribe registers l for every later transition.
func (t *Timer) Subscribe(l Listener) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.listeners = append(t.listeners, l)
}

func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state
}

// Deadline is the instant the session expires; zero while Idle.
func (t *Timer) Deadline() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.deadline
}

// Remaining is the time left before expiry, never negative.
func (t *Timer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != Active && t.state != Warned {
		return 0
	}

	return max(t.deadline.Sub(t.clock.Now()), 0)
}

// Handle applies ev and returns the resulting state. Ignored events notify nobody.
func (t *Timer) Handle(ev Event) State {
	t.mu.Lock()
	now := t.clock.Now()
	from := t.state
	to, accepted := t.next(ev, now)
	if !accepted {
		t.mu.Unlock()

		return from
	}

	t.state = to
	switch {
	case to == Idle:
		t.deadline = time.Time{}
	case ev == Login || ev == Activity:
		t.deadline = now.Add(t.timeout)
	}

	tr := Transition{From: from, To: to, Event: ev, At: now, Deadline: t.deadline}
	listeners := append([]Listener(nil), t.listeners...)
	t.mu.Unlock()

	for _, l := range listeners {
		l(tr)
	}

	return to
}

// next must be called with mu held.
func (t *Timer) next(ev Event, now time.Time) (State, bool) {
	switch ev {
	case Login:
		return Active, true
	case Logout:
		return Idle, t.state != Idle
	case Activity:
		if t.state == Active || t.state == Warned {
			return Active, true
		}
	case Tick:
		if t.state != Active && t.state != Warned {
			return t.state, false
		}
		if !now.Before(t.deadline) {
			return Expired, true
		}
		if t.state == Active && !now.Before(t.deadline.Add(-t.warnBefore)) {
			return Warned, true
		}
	}

	return t.state, false
}

// Run feeds events and ticks into the timer until ctx ends or events is closed.
// Tick values are only wake-ups; the timer still reads time from its Clock.
func (t *Timer) Run(ctx context.Context, events <-chan Event, ticks <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			t.Handle(ev)
		case <-ticks:
			t.Handle(Tick)
		}
	}
}
