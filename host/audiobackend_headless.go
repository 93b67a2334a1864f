//go:build headless

package host

import (
	"time"

	"github.com/tofuengine/tofu/audio"
)

// AudioBackend drains the mixer on a ticker instead of a real audio device,
// so headless runs (CI, scripted playthroughs) still exercise Source
// lifecycle and ring-buffer refills without requiring platform audio.
type AudioBackend struct {
	mixer   *audio.Mixer
	ticker  *time.Ticker
	done    chan struct{}
	scratch []float32
}

// NewAudioBackend returns a backend that pulls a chunk of sampleRate/60+1
// frames from `mixer` roughly every 1/60th of a second once Start is called.
func NewAudioBackend(sampleRate int, mixer *audio.Mixer) (*AudioBackend, error) {
	return &AudioBackend{
		mixer:   mixer,
		scratch: make([]float32, (sampleRate/60+1)*audio.ChannelsPerFrame),
		done:    make(chan struct{}),
	}, nil
}

// Start begins draining the mixer in the background.
func (b *AudioBackend) Start() {
	b.ticker = time.NewTicker(time.Second / 60)
	go func() {
		for {
			select {
			case <-b.done:
				return
			case <-b.ticker.C:
				b.mixer.Mix(b.scratch)
			}
		}
	}()
}

// Stop halts the drain loop.
func (b *AudioBackend) Stop() {
	if b.ticker != nil {
		b.ticker.Stop()
	}
}

// Close stops the backend permanently.
func (b *AudioBackend) Close() error {
	b.Stop()
	close(b.done)
	return nil
}
