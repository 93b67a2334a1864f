package script

import (
	"log"

	lua "github.com/yuin/gopher-lua"
)

func (vm *VM) registerTimer() {
	vm.newModule("Timer", map[string]lua.LGFunction{
		"new":    vm.timerNew,
		"cancel": vm.timerCancel,
		"reset":  vm.timerReset,
		"release": vm.timerRelease,
	})
}

// timerNew allocates a periodic timer firing every `period` seconds,
// `repeats` times (-1 means forever, the default), calling the given Lua
// function on each firing with the timer's id as its only argument.
func (vm *VM) timerNew(L *lua.LState) int {
	period := L.CheckNumber(1)
	repeats := L.OptInt(2, -1)
	callback := L.CheckFunction(3)

	// Timers fire from the host's update loop, outside any Lua call frame,
	// so a failing callback is logged rather than raised.
	id := vm.Timers.Allocate(float64(period), repeats, func(slotID int) {
		if err := L.CallByParam(lua.P{
			Fn:      callback,
			NRet:    0,
			Protect: true,
		}, lua.LNumber(slotID)); err != nil {
			log.Printf("script: timer %d callback: %v", slotID, err)
		}
	})
	L.Push(lua.LNumber(id))
	return 1
}

func (vm *VM) timerCancel(L *lua.LState) int {
	vm.Timers.Cancel(L.CheckInt(1))
	return 0
}

func (vm *VM) timerReset(L *lua.LState) int {
	vm.Timers.Reset(L.CheckInt(1))
	return 0
}

func (vm *VM) timerRelease(L *lua.LState) int {
	vm.Timers.Release(L.CheckInt(1))
	return 0
}
