package core

import "sync"

// Event kinds emitted by the engines for the host shell.
const (
	EventHit         = "hit"
	EventKill        = "kill"
	EventDeath       = "death"
	EventLevelClear  = "level_clear"
	EventWarp        = "warp"
	EventSuperzapper = "superzapper"
	EventFood        = "food"
	EventVirus       = "virus"
	EventLineClear   = "line_clear"
	EventSpeedUp     = "speed_up"
	EventExtraLife   = "extra_life"
)

// Event is a cosmetic notification from an engine. Hosts use it for screen
// interference, sound and logging; nothing flows back into the simulation.
type Event struct {
	Game      string  // Game ID that emitted the event
	Kind      string  // One of the Event* kinds
	Category  string  // Size class, line-clear tier, enemy type
	Intensity float64 // 0..1 strength
	Duration  float64 // Suggested effect duration in seconds
}

// Major reports whether the event should use the long interference burst.
func (e Event) Major() bool {
	switch e.Kind {
	case EventDeath, EventWarp, EventSuperzapper:
		return true
	}
	return false
}

// Emitter delivers events to subscribers synchronously, in subscription order.
// The zero value is ready to use.
type Emitter struct {
	mu       sync.Mutex
	nextID   int
	handlers []subscription
}

type subscription struct {
	id int
	fn func(Event)
}

// Subscribe registers fn and returns a function that removes it.
// The returned function is safe to call more than once.
func (e *Emitter) Subscribe(fn func(Event)) func() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextID++
	id := e.nextID
	e.handlers = append(e.handlers, subscription{id: id, fn: fn})

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		for i, s := range e.handlers {
			if s.id == id {
				e.handlers = append(e.handlers[:i:i], e.handlers[i+1:]...)
				return
			}
		}
	}
}

// Emit sends ev to every subscriber.
func (e *Emitter) Emit(ev Event) {
	e.mu.Lock()
	hs := make([]subscription, len(e.handlers))
	copy(hs, e.handlers)
	e.mu.Unlock()

	for _, s := range hs {
		s.fn(ev)
	}
}

// Subscribers returns the number of registered handlers.
func (e *Emitter) Subscribers() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.handlers)
}
