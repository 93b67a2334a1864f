package audio

import "sync"

// Mixer owns every live Source plus a set of named group buses, and
// produces a single interleaved float32 stereo stream by additively
// summing every playing source's resampled output, scaled by that
// source's pan/gain and its group's bus gain, then the master gain.
//
// The source list is shared between the game thread (Add/Remove/Update,
// called once per frame) and the audio thread (Mix, called from the host's
// pull callback); mu guards it so the audio thread never observes a
// half-appended or half-removed slice. Mix holds the guard for the whole of
// each pull; Lock/Unlock expose the same guard to other callers.
type Mixer struct {
	mu      sync.Mutex
	sources []*Source
	groups  []Mix
	master  float32

	scratch []Frame
	mixed   []Frame
	tmp     []Frame
}

// groupCount bounds how many buses a Mixer can address; DefaultGroup (0)
// is always present and always unity gain unless changed.
const groupCount = 16

// NewMixer returns a Mixer with every group at unity gain and master gain
// at 1.0.
func NewMixer() *Mixer {
	m := &Mixer{
		groups: make([]Mix, groupCount),
		master: 1.0,
	}
	for i := range m.groups {
		m.groups[i] = Mix{Left: 1, Right: 1}
	}
	return m
}

// Lock acquires the mixer's source-list guard. Mix takes it itself for the
// duration of a pull callback; the game thread only ever takes it briefly,
// inside Add/Remove/Update/SetGroupGain/SetMasterGain. The guard is not
// reentrant, so none of those methods may be called while holding Lock.
// Never call Lock from the game thread around anything that could block.
func (m *Mixer) Lock() { m.mu.Lock() }

// Unlock releases the guard acquired by Lock.
func (m *Mixer) Unlock() { m.mu.Unlock() }

// Add registers a source with the mixer. A source must be added before it
// can be heard, even if it was created via NewSource already. Adding a
// source that is already registered is a no-op, so replaying a source the
// mixer reclaimed after completion just re-registers it.
func (m *Mixer) Add(source *Source) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sources {
		if s == source {
			return
		}
	}
	m.sources = append(m.sources, source)
}

// Remove unregisters a source; it has no effect if the source was not
// registered.
func (m *Mixer) Remove(source *Source) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.sources {
		if s == source {
			m.sources = append(m.sources[:i], m.sources[i+1:]...)
			return
		}
	}
}

// SetGroupGain sets a bus's gain, applied equally to both channels on top
// of each source's own pan/gain mix.
func (m *Mixer) SetGroupGain(group int, gain float32) {
	if gain < 0 {
		gain = 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.groups[group] = Mix{Left: gain, Right: gain}
}

// SetMasterGain sets the overall gain applied after every group and
// source mix.
func (m *Mixer) SetMasterGain(gain float32) {
	if gain < 0 {
		gain = 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.master = gain
}

// Update advances every registered source by one tick, topping up ring
// buffers for anything currently playing, and reclaims sources that ran to
// their natural end so they stop occupying the mix loop. A reclaimed source
// is still queryable and replayable by whoever holds it; playing it again
// re-registers it through Add. Called from the game thread only.
func (m *Mixer) Update() {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.sources[:0]
	for _, s := range m.sources {
		if s.State() == Completed {
			continue
		}
		s.Update()
		kept = append(kept, s)
	}
	for i := len(kept); i < len(m.sources); i++ {
		m.sources[i] = nil
	}
	m.sources = kept
}

// Mix fills `output` (interleaved stereo float32, len(output)/2 frames)
// with the additive sum of every playing source, scaled by group and
// master gain. Mix does not remove Completed sources; the next Update
// reclaims them.
// Called from the audio thread, inside the host's pull callback.
func (m *Mixer) Mix(output []float32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	frames := len(output) / ChannelsPerFrame
	if cap(m.scratch) < frames {
		m.scratch = make([]Frame, frames)
		m.mixed = make([]Frame, frames)
		m.tmp = make([]Frame, frames)
	}
	scratch := m.scratch[:frames]
	mixed := m.mixed[:frames]
	tmp := m.tmp[:frames]

	for i := range mixed {
		mixed[i] = Frame{}
	}

	for _, s := range m.sources {
		for i := range tmp {
			tmp[i] = Frame{}
		}
		n := s.mixInto(tmp, scratch, m.groups)
		for i := 0; i < n; i++ {
			mixed[i][0] += tmp[i][0]
			mixed[i][1] += tmp[i][1]
		}
	}

	for i := 0; i < frames; i++ {
		output[i*ChannelsPerFrame+0] = mixed[i][0] * m.master
		output[i*ChannelsPerFrame+1] = mixed[i][1] * m.master
	}
}
