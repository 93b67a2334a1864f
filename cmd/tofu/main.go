// Command tofu loads a Lua game script and runs it through the engine's
// graphics, audio and timer core, presenting the result either in a window
// (the default build) or to a raw terminal (built with -tags headless).
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tofuengine/tofu/audio"
	"github.com/tofuengine/tofu/graphics"
	"github.com/tofuengine/tofu/host"
	"github.com/tofuengine/tofu/script"
	"github.com/tofuengine/tofu/timer"
)

func main() {
	config := host.DefaultConfig()

	flag.IntVar(&config.Width, "width", config.Width, "logical framebuffer width")
	flag.IntVar(&config.Height, "height", config.Height, "logical framebuffer height")
	flag.IntVar(&config.Scale, "scale", config.Scale, "integer window scale factor")
	flag.IntVar(&config.RefreshRate, "refresh", config.RefreshRate, "target refresh rate in Hz")
	flag.BoolVar(&config.VSync, "vsync", config.VSync, "enable vsync")
	flag.BoolVar(&config.Fullscreen, "fullscreen", config.Fullscreen, "start fullscreen")
	flag.StringVar(&config.Title, "title", config.Title, "window title")
	flag.IntVar(&config.SampleRate, "samplerate", config.SampleRate, "audio device sample rate")
	flag.IntVar(&config.InitialTimerCapacity, "timers", config.InitialTimerCapacity, "initial timer pool capacity")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: tofu [flags] <script.lua>")
		os.Exit(1)
	}
	scriptPath := flag.Arg(0)
	baseDir := filepath.Dir(scriptPath)

	config.Scale = host.ClampScale(config.Scale)

	canvas := graphics.NewSurface(config.Width, config.Height)
	processor := graphics.NewProcessor()
	mixer := audio.NewMixer()
	timers := timer.NewPool(config.InitialTimerCapacity)

	vm := script.NewVM(processor, mixer, timers)
	defer vm.Close()
	vm.SetCanvas(canvas)

	vm.DecodeAudio = func(path string) (audio.Decoder, error) {
		return host.DecodeWave(filepath.Join(baseDir, path))
	}

	audioBackend, err := host.NewAudioBackend(config.SampleRate, mixer)
	if err != nil {
		fmt.Fprintln(os.Stderr, "audio backend:", err)
		os.Exit(1)
	}
	defer audioBackend.Close()
	audioBackend.Start()

	if err := vm.LoadFile(scriptPath); err != nil {
		fmt.Fprintln(os.Stderr, "load:", err)
		os.Exit(1)
	}
	if err := vm.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "init:", err)
		os.Exit(1)
	}
	defer func() {
		if err := vm.Deinit(); err != nil {
			fmt.Fprintln(os.Stderr, "deinit:", err)
		}
		timers.Terminate(nil)
	}()

	if err := runPresenter(config, vm, canvas); err != nil {
		fmt.Fprintln(os.Stderr, "run:", err)
		os.Exit(1)
	}
}
