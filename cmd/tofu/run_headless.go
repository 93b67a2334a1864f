//go:build headless

package main

import (
	"github.com/tofuengine/tofu/graphics"
	"github.com/tofuengine/tofu/host"
	"github.com/tofuengine/tofu/script"
)

func runPresenter(config host.Config, vm *script.VM, canvas *graphics.Surface) error {
	presenter := host.NewHeadless(config, vm, canvas)
	return presenter.Run()
}
