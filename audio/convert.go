package audio

import "math"

// FramesPerSecond is the mixer's internal sample rate; every source is
// resampled to this rate as it is consumed.
const FramesPerSecond = 44100

// ChannelsPerFrame is fixed at stereo throughout the mixer.
const ChannelsPerFrame = 2

// minDeviceRate and maxDeviceRate bound the speed a source can be played
// back at via dynamic resampling; MinSpeed is their ratio, the slowest a
// stream can be asked to play without the resampler needing more history
// than it keeps.
const (
	minDeviceRate = 8000
	maxDeviceRate = 384000
)

// MinSpeed is the lowest legal playback speed multiplier.
const MinSpeed = float32(minDeviceRate) / float32(maxDeviceRate)

// rateConverter resamples a stereo float32 frame stream from one rate to
// FramesPerSecond using linear interpolation, with a dynamic ratio so a
// source's playback speed can change mid-stream. It keeps enough state
// (the last frame consumed and a fractional read cursor) to resample
// across calls, since sources are pulled in small chunks.
type rateConverter struct {
	ratio  float64 // output rate / input rate, adjusted by speed.
	cursor float64 // fractional position past `prev`, in input-frame units.
	prev   [ChannelsPerFrame]float32
	primed bool
}

func newRateConverter(inputRate int) *rateConverter {
	return &rateConverter{ratio: float64(FramesPerSecond) / float64(inputRate)}
}

// setSpeed multiplies the base conversion ratio by 1/speed: a higher speed
// consumes input faster, producing a higher pitched result. The ratio stays
// output rate over input rate, as documented on the field.
func (r *rateConverter) setSpeed(inputRate int, speed float32) {
	if speed < MinSpeed {
		speed = MinSpeed
	}
	r.ratio = float64(FramesPerSecond) / (float64(inputRate) * float64(speed))
}

// reset discards the interpolation history, as when a source rewinds.
func (r *rateConverter) reset() {
	r.cursor = 0
	r.prev = [ChannelsPerFrame]float32{}
	r.primed = false
}

// requiredInputFrames estimates how many input frames are needed to produce
// `outputFrames` output frames, so callers can size their read request.
func (r *rateConverter) requiredInputFrames(outputFrames int) int {
	return int(math.Ceil(float64(outputFrames)/r.ratio)) + 1
}

// process consumes frames from `input` (interleaved stereo float32) and
// writes resampled frames into `output`, returning how many input frames it
// consumed and how many output frames it produced. Each output frame
// interpolates between the last consumed frame and the next pending one; at
// the tail of the available input the last frame is held rather than
// extrapolated, so a chunk boundary never blocks production.
func (r *rateConverter) process(input [][ChannelsPerFrame]float32, output [][ChannelsPerFrame]float32) (consumed, produced int) {
	i := 0
	if !r.primed {
		if len(input) == 0 {
			return 0, 0
		}
		r.prev = input[0]
		i = 1
		r.primed = true
	}

	step := 1.0 / r.ratio
	for produced < len(output) {
		for r.cursor >= 1.0 {
			if i >= len(input) {
				return i, produced
			}
			r.prev = input[i]
			i++
			r.cursor -= 1.0
		}

		t := float32(r.cursor)
		next := r.prev
		if t > 0 && i < len(input) {
			next = input[i]
		}
		for c := 0; c < ChannelsPerFrame; c++ {
			output[produced][c] = r.prev[c] + (next[c]-r.prev[c])*t
		}
		produced++
		r.cursor += step
	}
	return i, produced
}
