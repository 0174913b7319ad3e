// Package timer runs the timed transitions of a round: the countdown before
// the discussion, the discussion itself and the suspense before the result.
package timer

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/aaronzipp/impostor/internal/events"
	"github.com/aaronzipp/impostor/internal/models"
)

const (
	DefaultCountdown = 3 * time.Second
	DefaultSuspense  = 2 * time.Second
)

// Machine is the part of the game machine the driver needs
type Machine interface {
	Subscribe(fn events.Listener) (unsubscribe func())
	Settings() models.Settings
	AdvanceToDebate() error
	StartVote() error
	AdvanceToResult() error
}

// Kind names the pending timer
type Kind string

const (
	KindNone      Kind = ""
	KindCountdown Kind = "countdown"
	KindDebate    Kind = "debate"
	KindSuspense  Kind = "suspense"
)

// Config holds the fixed delays. Zero values use the defaults.
type Config struct {
	Countdown time.Duration
	Suspense  time.Duration
}

// Driver schedules one timer per timed phase and cancels it as soon as the
// machine leaves that phase
type Driver struct {
	machine Machine
	clock   quartz.Clock
	logger  *log.Logger
	cfg     Config

	mu       sync.Mutex
	timer    *quartz.Timer
	kind     Kind
	deadline time.Time
	gen      uint64
	stopped  bool

	unsubscribe func()
}

// New creates a driver and subscribes it to machine
func New(machine Machine, clock quartz.Clock, logger *log.Logger, cfg Config) *Driver {
	if cfg.Countdown <= 0 {
		cfg.Countdown = DefaultCountdown
	}
	if cfg.Suspense <= 0 {
		cfg.Suspense = DefaultSuspense
	}
	if logger == nil {
		logger = log.Default()
	}

	d := &Driver{
		machine: machine,
		clock:   clock,
		logger:  logger.WithPrefix("timer"),
		cfg:     cfg,
	}
	d.unsubscribe = machine.Subscribe(d.onEvent)
	return d
}

// Pending returns the kind of the scheduled timer, or KindNone
func (d *Driver) Pending() Kind {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.kind
}

// Remaining returns the time left on the pending timer
func (d *Driver) Remaining() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.kind == KindNone {
		return 0
	}
	return max(d.clock.Until(d.deadline), 0)
}

// Stop cancels the pending timer and detaches from the machine
func (d *Driver) Stop() {
	d.mu.Lock()
	d.stopped = true
	d.cancelLocked()
	d.mu.Unlock()
	d.unsubscribe()
}

func (d *Driver) onEvent(e events.Event) {
	switch e.Type {
	case events.TypePhaseChanged, events.TypeReset:
	default:
		return
	}

	switch {
	case e.Type == events.TypePhaseChanged && e.Phase == models.PhasePlay && e.SubPhase == models.SubPhaseCountdown:
		d.schedule(KindCountdown, d.cfg.Countdown, d.machine.AdvanceToDebate)
	case e.Type == events.TypePhaseChanged && e.Phase == models.PhasePlay && e.SubPhase == models.SubPhaseDebate:
		seconds := d.machine.Settings().RoundSeconds
		d.schedule(KindDebate, time.Duration(seconds)*time.Second, d.machine.StartVote)
	case e.Type == events.TypePhaseChanged && e.Phase == models.PhaseResultCountdown:
		d.schedule(KindSuspense, d.cfg.Suspense, d.machine.AdvanceToResult)
	default:
		d.mu.Lock()
		d.cancelLocked()
		d.mu.Unlock()
	}
}

func (d *Driver) schedule(kind Kind, after time.Duration, fire func() error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	d.cancelLocked()
	d.gen++
	gen := d.gen
	d.kind = kind
	d.deadline = d.clock.Now().Add(after)
	d.timer = d.clock.AfterFunc(after, func() { d.fire(gen, kind, fire) }, "timer", string(kind))
	d.logger.Debug("Timer scheduled", "kind", kind, "after", after)
}

// fire runs the transition unless the timer was superseded. The driver lock
// is released before calling the machine, whose events come back here.
func (d *Driver) fire(gen uint64, kind Kind, fn func() error) {
	d.mu.Lock()
	if gen != d.gen || d.stopped {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.kind = KindNone
	d.mu.Unlock()

	d.logger.Debug("Timer fired", "kind", kind)
	if err := fn(); err != nil {
		d.logger.Debug("Timer transition rejected", "kind", kind, "error", err)
	}
}

func (d *Driver) cancelLocked() {
	d.gen++
	if d.timer == nil {
		return
	}
	d.timer.Stop()
	d.logger.Debug("Timer cancelled", "kind", d.kind)
	d.timer = nil
	d.kind = KindNone
}
