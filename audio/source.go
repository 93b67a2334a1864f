package audio

import (
	"log"
	"math"
)

// Frame is one interleaved stereo sample pair.
type Frame = [ChannelsPerFrame]float32

// Decoder supplies PCM frames to a Source. Read should behave like an
// io.Reader: it fills as much of `buffer` as it can and returns how many
// frames it wrote; fewer than len(buffer) signals end-of-data. Seek
// repositions the decode cursor to a frame offset (only 0 is required,
// matching the rewind/loop-to-start use cases).
type Decoder interface {
	Rate() int
	Read(buffer []Frame) (framesRead int)
	Seek(frame int)
}

// State is a source's playback state.
type State int

const (
	Stopped State = iota
	Playing
	// Finishing is a non-looped source whose decoder ran dry but whose
	// ring buffer still holds frames; it keeps mixing until the buffer
	// drains.
	Finishing
	// Completed is reached by a non-looped source once the last buffered
	// frame has been mixed out; it behaves like Stopped except that it
	// remembers it finished naturally rather than being stopped by the
	// caller.
	Completed
)

// DefaultGroup is the bus every new Source starts on.
const DefaultGroup = 0

// Mix is a precomputed left/right gain pair.
type Mix struct {
	Left, Right float32
}

// pan/gain -> Mix, using the constant-power sine/cosine panning law.
func precomputeMix(pan, gain float32) Mix {
	theta := (pan + 1.0) * 0.5 * (math.Pi / 2)
	return Mix{
		Left:  float32(math.Cos(float64(theta))) * gain,
		Right: float32(math.Sin(float64(theta))) * gain,
	}
}

const ringBufferFrames = FramesPerSecond

type ringBuffer struct {
	data        []Frame
	readCursor  int
	writeCursor int
	count       int
}

func newRingBuffer(capacity int) *ringBuffer {
	return &ringBuffer{data: make([]Frame, capacity)}
}

func (r *ringBuffer) reset() {
	r.readCursor = 0
	r.writeCursor = 0
	r.count = 0
}

func (r *ringBuffer) availableWrite() int {
	return len(r.data) - r.count
}

func (r *ringBuffer) availableRead() int {
	return r.count
}

// write fills up to n frames through a callback, handing it contiguous
// slices of the buffer (split at the wrap point), so the caller
// (Source.produce) can read directly from its decoder without an
// intermediate allocation.
func (r *ringBuffer) write(n int, fill func(dst []Frame) int) int {
	written := 0
	for written < n {
		writable := len(r.data) - r.writeCursor
		if writable > n-written {
			writable = n - written
		}
		got := fill(r.data[r.writeCursor : r.writeCursor+writable])
		r.writeCursor = (r.writeCursor + got) % len(r.data)
		r.count += got
		written += got
		if got < writable {
			break
		}
	}
	return written
}

func (r *ringBuffer) read(dst []Frame) int {
	n := len(dst)
	if n > r.count {
		n = r.count
	}
	read := 0
	for read < n {
		readable := len(r.data) - r.readCursor
		if readable > n-read {
			readable = n - read
		}
		copy(dst[read:read+readable], r.data[r.readCursor:r.readCursor+readable])
		r.readCursor = (r.readCursor + readable) % len(r.data)
		r.count -= readable
		read += readable
	}
	return read
}

// Source is a single playable audio object: either a one-shot sample or a
// streamed track, depending only on what Decoder it was built with. It owns
// a ring buffer of not-yet-resampled PCM, a rate converter that applies the
// current Speed, and a precomputed pan/gain Mix.
type Source struct {
	decoder Decoder
	buffer  *ringBuffer
	convert *rateConverter
	staging []Frame // frames read off the ring but not yet consumed by the converter; reused so the audio thread never allocates

	Group  int
	Looped bool
	gain   float32
	pan    float32
	speed  float32
	state  State
	mix    Mix
}

// NewSource creates a stopped source pulling from `decoder`, with unity
// gain, centred pan, normal speed and the default group.
func NewSource(decoder Decoder) *Source {
	s := &Source{
		decoder: decoder,
		buffer:  newRingBuffer(ringBufferFrames),
		convert: newRateConverter(decoder.Rate()),
		Group:   DefaultGroup,
		gain:    1.0,
		speed:   1.0,
		state:   Stopped,
		mix:     precomputeMix(0, 1),
	}
	s.produce(true)
	return s
}

// produce tops up the ring buffer from the decoder; if the decoder runs
// dry, a looped source seeks back to 0 and keeps filling, while a playing
// non-looped source moves to Finishing and drains whatever is buffered.
func (s *Source) produce(reset bool) {
	if reset {
		s.buffer.reset()
	}
	for s.buffer.availableWrite() > 0 {
		toWrite := s.buffer.availableWrite()
		written := s.buffer.write(toWrite, func(dst []Frame) int {
			return s.decoder.Read(dst)
		})
		if written < toWrite {
			if !s.Looped {
				if s.state == Playing {
					s.state = Finishing
				}
				return
			}
			s.decoder.Seek(0)
		}
		if written == 0 {
			return
		}
	}
}

// consume resamples up to len(dst) frames into `dst`, pulling raw frames
// out of the ring buffer as needed. Frames the converter reads off the ring
// but does not consume stay in the staging buffer for the next call, so no
// input frame is ever dropped at a chunk boundary.
func (s *Source) consume(dst []Frame) int {
	produced := 0
	for produced < len(dst) {
		need := s.convert.requiredInputFrames(len(dst)-produced) - len(s.staging)
		if need < 0 {
			need = 0
		}
		if avail := s.buffer.availableRead(); need > avail {
			need = avail
		}

		base := len(s.staging)
		if base+need > cap(s.staging) {
			grown := make([]Frame, base, base+need)
			copy(grown, s.staging)
			s.staging = grown
		}
		s.staging = s.staging[:base+need]
		got := s.buffer.read(s.staging[base:])
		s.staging = s.staging[:base+got]

		if len(s.staging) == 0 {
			break
		}
		c, p := s.convert.process(s.staging, dst[produced:])
		copy(s.staging, s.staging[c:])
		s.staging = s.staging[:len(s.staging)-c]
		produced += p
		if p == 0 && got == 0 && c == 0 {
			break
		}
	}
	return produced
}

// SetGain clamps gain to non-negative and recomputes the pan/gain mix.
func (s *Source) SetGain(gain float32) {
	if gain < 0 {
		gain = 0
	}
	s.gain = gain
	s.mix = precomputeMix(s.pan, s.gain)
}

func (s *Source) Gain() float32 { return s.gain }

// SetPan clamps pan to [-1, 1] and recomputes the pan/gain mix.
func (s *Source) SetPan(pan float32) {
	if pan < -1 {
		pan = -1
	}
	if pan > 1 {
		pan = 1
	}
	s.pan = pan
	s.mix = precomputeMix(s.pan, s.gain)
}

func (s *Source) Pan() float32 { return s.pan }

// SetSpeed clamps speed to MinSpeed and reconfigures the rate converter.
func (s *Source) SetSpeed(speed float32) {
	if speed < MinSpeed {
		speed = MinSpeed
	}
	s.speed = speed
	s.convert.setSpeed(s.decoder.Rate(), speed)
}

func (s *Source) Speed() float32 { return s.speed }

func (s *Source) Play()  { s.state = Playing }
func (s *Source) Stop()  { s.state = Stopped }
func (s *Source) State() State { return s.state }

// Rewind seeks the decoder back to the start. It is only legal while the
// source is Stopped; otherwise it warns and does nothing.
func (s *Source) Rewind() {
	if s.state != Stopped {
		log.Printf("audio: can't rewind while playing")
		return
	}
	s.decoder.Seek(0)
	s.staging = s.staging[:0]
	s.convert.reset()
	s.produce(true)
}

// Update is called once per mixer tick to keep the ring buffer topped up
// while the source plays.
func (s *Source) Update() {
	if s.state != Playing {
		return
	}
	s.produce(false)
}

// mixInto additively blends up to len(scratch) resampled frames into
// `output`, scaled by this source's pan/gain mix and its group's bus mix.
// It returns the number of frames actually mixed.
func (s *Source) mixInto(output []Frame, scratch []Frame, groups []Mix) int {
	if s.state == Stopped {
		return 0
	}
	n := s.consume(scratch[:len(output)])
	if s.state == Finishing && s.buffer.availableRead() == 0 && len(s.staging) == 0 {
		s.state = Completed
	}

	groupMix := groups[s.Group]
	left := s.mix.Left * groupMix.Left
	right := s.mix.Right * groupMix.Right

	for i := 0; i < n; i++ {
		output[i][0] += scratch[i][0] * left
		output[i][1] += scratch[i][1] * right
	}
	return n
}
