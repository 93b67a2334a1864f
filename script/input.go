package script

import lua "github.com/yuin/gopher-lua"

// InputState is a snapshot of the current frame's input, polled by the
// host before each Update call. It holds only what the script bindings
// need to answer queries; the host is free to source it however it
// likes (ebiten's input package, a terminal key reader, and so on).
type InputState struct {
	Keys       map[string]bool
	KeysPressed map[string]bool
	MouseX, MouseY int
	MouseButtons  map[int]bool
}

// SetInputState replaces the VM's input snapshot; called once per frame
// before Update.
func (vm *VM) SetInputState(state InputState) {
	vm.inputState = state
}

func (vm *VM) registerInput() {
	vm.newModule("Input", map[string]lua.LGFunction{
		"is_down":    vm.inputIsDown,
		"is_pressed": vm.inputIsPressed,
		"cursor":     vm.inputCursor,
		"is_mouse_down": vm.inputIsMouseDown,
	})
}

func (vm *VM) inputIsDown(L *lua.LState) int {
	key := L.CheckString(1)
	L.Push(lua.LBool(vm.inputState.Keys[key]))
	return 1
}

func (vm *VM) inputIsPressed(L *lua.LState) int {
	key := L.CheckString(1)
	L.Push(lua.LBool(vm.inputState.KeysPressed[key]))
	return 1
}

func (vm *VM) inputCursor(L *lua.LState) int {
	L.Push(lua.LNumber(vm.inputState.MouseX))
	L.Push(lua.LNumber(vm.inputState.MouseY))
	return 2
}

func (vm *VM) inputIsMouseDown(L *lua.LState) int {
	button := L.CheckInt(1)
	L.Push(lua.LBool(vm.inputState.MouseButtons[button]))
	return 1
}
