package timer

import "testing"

func TestNewPoolHasInitialCapacity(t *testing.T) {
	p := NewPool(4)
	if p.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", p.Len())
	}
}

func TestAllocateReturnsFreeSlot(t *testing.T) {
	p := NewPool(2)
	id := p.Allocate(1.0, 0, nil)
	if p.State(id) != Running {
		t.Fatalf("State(%d) = %v, want Running", id, p.State(id))
	}
}

func TestAllocateGrowsWhenFull(t *testing.T) {
	p := NewPool(2)
	p.Allocate(1.0, 0, nil)
	p.Allocate(1.0, 0, nil)
	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 before growth", p.Len())
	}
	p.Allocate(1.0, 0, nil) // pool is full, must double
	if p.Len() != 4 {
		t.Fatalf("Len() = %d after growth, want 4 (doubled)", p.Len())
	}
}

func TestUpdateFiresOnElapsedPeriod(t *testing.T) {
	p := NewPool(1)
	fired := 0
	id := p.Allocate(1.0, 0, func(int) { fired++ })
	p.Update(0.5)
	if fired != 0 {
		t.Fatalf("fired = %d after half a period, want 0", fired)
	}
	p.Update(0.5)
	if fired != 1 {
		t.Fatalf("fired = %d after a full period, want 1", fired)
	}
	if p.State(id) != Running {
		t.Fatalf("State(%d) = %v, want still Running (repeats=0 means forever)", id, p.State(id))
	}
}

func TestUpdateFiresMultipleTimesForLargeDelta(t *testing.T) {
	p := NewPool(1)
	fired := 0
	p.Allocate(1.0, 0, func(int) { fired++ })
	p.Update(3.5) // should fire 3 times
	if fired != 3 {
		t.Fatalf("fired = %d, want 3 for a delta spanning 3 periods", fired)
	}
}

func TestUpdateRespectsRepeatCountAndFreezes(t *testing.T) {
	p := NewPool(1)
	fired := 0
	id := p.Allocate(1.0, 2, func(int) { fired++ })
	p.Update(5.0) // far more than 2 periods
	if fired != 2 {
		t.Fatalf("fired = %d, want exactly 2 (repeat-bounded)", fired)
	}
	if p.State(id) != Frozen {
		t.Fatalf("State(%d) = %v, want Frozen once repeats are exhausted", id, p.State(id))
	}
}

func TestCancelFreezesRunningTimer(t *testing.T) {
	p := NewPool(1)
	id := p.Allocate(1.0, 0, nil)
	p.Cancel(id)
	if p.State(id) != Frozen {
		t.Fatalf("State(%d) = %v, want Frozen", id, p.State(id))
	}
	fired := false
	p.timers[id].fire = func(int) { fired = true }
	p.Update(10.0)
	if fired {
		t.Fatalf("a cancelled (Frozen) timer fired")
	}
}

func TestResetRestartsFrozenTimer(t *testing.T) {
	p := NewPool(1)
	id := p.Allocate(1.0, 1, nil)
	p.Update(1.0) // exhausts the single repeat, moves to Frozen
	if p.State(id) != Frozen {
		t.Fatalf("State(%d) = %v, want Frozen after its only repeat fired", id, p.State(id))
	}
	p.Reset(id)
	if p.State(id) != Running {
		t.Fatalf("State(%d) = %v, want Running after Reset", id, p.State(id))
	}
}

func TestResetRefusesFinalizedTimer(t *testing.T) {
	p := NewPool(1)
	id := p.Allocate(1.0, 0, nil)
	p.Release(id)
	p.Reset(id)
	if p.State(id) != Finalized {
		t.Fatalf("State(%d) = %v, want Reset on a Finalized slot to be a no-op", id, p.State(id))
	}
}

func TestReleaseThenGCReclaimsSlot(t *testing.T) {
	p := NewPool(1)
	disposed := 0
	id := p.Allocate(1.0, 0, nil)
	p.Release(id)
	if p.State(id) != Finalized {
		t.Fatalf("State(%d) = %v, want Finalized after Release", id, p.State(id))
	}
	p.GC(func(int) { disposed++ })
	if disposed != 1 {
		t.Fatalf("disposed = %d, want 1", disposed)
	}
	if p.State(id) != Free {
		t.Fatalf("State(%d) = %v, want Free after GC", id, p.State(id))
	}
}

func TestGCShrinksWhenHighestOccupiedSlotDropsBelowHalf(t *testing.T) {
	p := NewPool(2)
	// Simulate a pool that grew to capacity 8 and is now mostly idle, with
	// its highest occupied slot (3) within [initialCapacity, capacity/2).
	p.timers = make([]timerSlot, 8)
	p.timers[3].state = Running

	p.GC(nil)
	if p.Len() != 4 {
		t.Fatalf("Len() = %d, want shrunk to capacity/2 = 4", p.Len())
	}
}

func TestGCDoesNotShrinkWhenHighestOccupiedSlotIsPastHalf(t *testing.T) {
	p := NewPool(2)
	p.timers = make([]timerSlot, 8)
	p.timers[7].state = Running // at the very top: shrinking would lose it

	p.GC(nil)
	if p.Len() != 8 {
		t.Fatalf("Len() = %d, want unchanged at 8 (highest occupied slot is past half capacity)", p.Len())
	}
}

func TestGCDoesNotShrinkBelowInitialCapacity(t *testing.T) {
	p := NewPool(4)
	id := p.Allocate(1.0, 0, nil)
	p.Release(id)
	p.GC(nil)
	if p.Len() != 4 {
		t.Fatalf("Len() = %d, want unchanged at the initial capacity of 4", p.Len())
	}
}

func TestTerminateDisposesEveryNonFreeSlot(t *testing.T) {
	p := NewPool(3)
	p.Allocate(1.0, 0, nil)
	p.Allocate(1.0, 0, nil)
	disposed := 0
	p.Terminate(func(int) { disposed++ })
	if disposed != 2 {
		t.Fatalf("disposed = %d, want 2", disposed)
	}
	if p.Len() != 0 {
		t.Fatalf("Len() = %d after Terminate, want 0", p.Len())
	}
}

func TestUpdateSkipsFiringOnceCancelledMidLoop(t *testing.T) {
	p := NewPool(1)
	fired := 0
	var id int
	id = p.Allocate(0.1, 0, func(int) {
		fired++
		if fired == 2 {
			p.Cancel(id)
		}
	})
	p.Update(10.0) // would fire far more than twice if not for the cancel
	if fired != 2 {
		t.Fatalf("fired = %d, want exactly 2 (Update must re-check state mid-loop)", fired)
	}
}
