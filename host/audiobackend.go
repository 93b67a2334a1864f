//go:build !headless

package host

import (
	"math"

	"github.com/ebitengine/oto/v3"

	"github.com/tofuengine/tofu/audio"
)

// AudioBackend pulls interleaved float32 stereo frames out of an
// audio.Mixer on oto's playback goroutine (the "audio thread" of the
// concurrency model) and feeds them to the platform audio device.
type AudioBackend struct {
	ctx    *oto.Context
	player *oto.Player
	mixer  *audio.Mixer

	scratch []float32
}

// NewAudioBackend opens the platform audio device at `sampleRate` and wires
// it to pull from `mixer`.
func NewAudioBackend(sampleRate int, mixer *audio.Mixer) (*AudioBackend, error) {
	options := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: audio.ChannelsPerFrame,
		Format:       oto.FormatFloat32LE,
		BufferSize:   0,
	}

	ctx, ready, err := oto.NewContext(options)
	if err != nil {
		return nil, &Error{Operation: "audio backend", Details: "open device", Err: err}
	}
	<-ready

	backend := &AudioBackend{ctx: ctx, mixer: mixer}
	backend.player = ctx.NewPlayer(backend)
	return backend, nil
}

// Start begins playback.
func (b *AudioBackend) Start() { b.player.Play() }

// Stop halts playback.
func (b *AudioBackend) Stop() { b.player.Pause() }

// Close releases the player and its underlying device.
func (b *AudioBackend) Close() error {
	return b.player.Close()
}

// Read implements io.Reader for oto's player: it asks the mixer to fill an
// interleaved float32 buffer and repacks it into the byte stream oto wants.
// This runs on oto's own goroutine, never the game thread, so every call
// reaches Mixer.Mix which takes the mixer's lock for its duration.
func (b *AudioBackend) Read(p []byte) (int, error) {
	samples := len(p) / 4
	if cap(b.scratch) < samples {
		b.scratch = make([]float32, samples)
	}
	buf := b.scratch[:samples]

	b.mixer.Mix(buf)

	for i, v := range buf {
		bits := math.Float32bits(v)
		p[i*4+0] = byte(bits)
		p[i*4+1] = byte(bits >> 8)
		p[i*4+2] = byte(bits >> 16)
		p[i*4+3] = byte(bits >> 24)
	}
	return len(p), nil
}
