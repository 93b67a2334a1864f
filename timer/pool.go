// Package timer implements a generational pool of periodic timers, sized to
// be driven once per frame from a game loop.
package timer

// State is a timer slot's lifecycle state.
type State int

const (
	// Free slots are available for Allocate to reuse.
	Free State = iota
	// Running slots accumulate age and fire on each elapsed period.
	Running
	// Frozen slots are alive but not accumulating age (cancelled, or ran
	// out of repeats).
	Frozen
	// Finalized slots are pending collection by GC.
	Finalized
)

// Callback is invoked when a timer fires, is released, or the pool
// terminates and disposes of it. `id` identifies the slot.
type Callback func(id int)

type timerSlot struct {
	period  float64
	repeats int
	age     float64
	loops   int
	state   State
	fire    Callback
}

// Pool is a growable array of timer slots. It never shrinks below its
// initial capacity, and grows by doubling whenever Allocate finds no free
// slot.
type Pool struct {
	initialCapacity int
	timers          []timerSlot
}

// NewPool creates a pool with `initialCapacity` free slots.
func NewPool(initialCapacity int) *Pool {
	p := &Pool{
		initialCapacity: initialCapacity,
		timers:          make([]timerSlot, initialCapacity),
	}
	return p
}

// Terminate disposes every non-free timer (invoking `dispose` for each) and
// empties the pool.
func (p *Pool) Terminate(dispose Callback) {
	for i := range p.timers {
		if p.timers[i].state != Free {
			if dispose != nil {
				dispose(i)
			}
			p.timers[i].state = Free
		}
	}
	p.timers = nil
}

// Allocate reserves a slot for a timer that fires every `period` seconds,
// `repeats` times (-1, or any non-positive value, means forever), invoking
// `fire` on each firing. If no
// free slot exists, the pool's capacity doubles before retrying. It returns
// the slot id.
func (p *Pool) Allocate(period float64, repeats int, fire Callback) int {
	for {
		for i := range p.timers {
			if p.timers[i].state == Free {
				p.timers[i] = timerSlot{
					period:  period,
					repeats: repeats,
					age:     0,
					loops:   repeats,
					state:   Running,
					fire:    fire,
				}
				return i
			}
		}
		capacity := len(p.timers)
		grown := make([]timerSlot, capacity*2)
		copy(grown, p.timers)
		p.timers = grown
	}
}

// GC releases every Finalized slot (invoking `dispose` for each) back to
// Free, then shrinks the pool's capacity by half if the highest occupied
// slot has dropped below half capacity — but never below the pool's
// initial capacity.
func (p *Pool) GC(dispose Callback) {
	lastNotFree := 0

	for i := range p.timers {
		if p.timers[i].state == Finalized {
			if dispose != nil {
				dispose(i)
			}
			p.timers[i].state = Free
		}
		if p.timers[i].state != Free {
			lastNotFree = i
		}
	}

	capacity := len(p.timers)
	if capacity > p.initialCapacity && lastNotFree < capacity/2 {
		shrunk := make([]timerSlot, capacity/2)
		copy(shrunk, p.timers[:capacity/2])
		p.timers = shrunk
	}
}

// Update advances every Running timer's age by `deltaTime` seconds, firing
// it (possibly more than once, if deltaTime spans multiple periods) for
// each elapsed period. A timer with a bounded repeat count moves to Frozen
// once its repeats are exhausted. The firing callback can cancel or release
// the timer; Update re-checks the state before each re-fire so it never
// fires a timer that stopped running mid-loop.
func (p *Pool) Update(deltaTime float64) {
	for i := range p.timers {
		t := &p.timers[i]
		if t.state != Running {
			continue
		}

		t.age += deltaTime
		for t.age >= t.period {
			if t.state != Running {
				break
			}

			t.age -= t.period

			if t.fire != nil {
				t.fire(i)
			}

			if t.loops > 0 {
				t.loops--
				if t.loops == 0 {
					t.state = Frozen
				}
			}
		}
	}
}

// Release marks a running or frozen timer Finalized, so the next GC call
// reclaims its slot.
func (p *Pool) Release(slot int) {
	if p.timers[slot].state != Free {
		p.timers[slot].state = Finalized
	}
}

// Reset restarts a timer from age 0 with its original repeat count, moving
// it back to Running. A Finalized timer cannot be reset.
func (p *Pool) Reset(slot int) {
	t := &p.timers[slot]
	if t.state != Finalized {
		t.age = 0
		t.loops = t.repeats
		t.state = Running
	}
}

// Cancel freezes a Running timer in place; it stops accumulating age but
// keeps its slot until Released.
func (p *Pool) Cancel(slot int) {
	if p.timers[slot].state == Running {
		p.timers[slot].state = Frozen
	}
}

// State reports the current state of a slot.
func (p *Pool) State(slot int) State {
	return p.timers[slot].state
}

// Len reports the pool's current capacity (allocated slots, free or not).
func (p *Pool) Len() int {
	return len(p.timers)
}
