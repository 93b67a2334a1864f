package script

import lua "github.com/yuin/gopher-lua"

// System exposes host-level facilities that don't fit the graphics/audio/
// timer/input modules: clipboard access and a quit request. The actual
// clipboard implementation is wired in by the host (both the windowed and
// the terminal host use golang.design/x/clipboard, which reads "" and drops
// writes where no clipboard is available), since only the host knows
// whether a clipboard is even available.
func (vm *VM) registerSystem() {
	vm.newModule("System", map[string]lua.LGFunction{
		"clipboard": vm.systemClipboard,
		"quit":      vm.systemQuit,
	})
}

// systemClipboard is arity-dispatched: zero arguments reads the clipboard
// (empty string if unavailable), one argument writes it.
func (vm *VM) systemClipboard(L *lua.LState) int {
	if L.GetTop() == 0 {
		if vm.ReadClipboard == nil {
			L.Push(lua.LString(""))
			return 1
		}
		L.Push(lua.LString(vm.ReadClipboard()))
		return 1
	}
	text := L.CheckString(1)
	if vm.WriteClipboard != nil {
		vm.WriteClipboard(text)
	}
	return 0
}

func (vm *VM) systemQuit(L *lua.LState) int {
	if vm.Quit != nil {
		vm.Quit()
	}
	return 0
}
