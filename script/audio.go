package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/tofuengine/tofu/audio"
)

const sourceType = "Tofu.Source"

func (vm *VM) registerAudio() {
	vm.newMetatable(sourceType, map[string]lua.LGFunction{
		"group":       vm.sourceGroup,
		"looped":      vm.sourceLooped,
		"gain":        vm.sourceGain,
		"pan":         vm.sourcePan,
		"speed":       vm.sourceSpeed,
		"play":        vm.sourcePlay,
		"stop":        vm.sourceStop,
		"rewind":      vm.sourceRewind,
		"release":     vm.sourceRelease,
		"is_playing":  vm.sourceIsPlaying,
		"is_finished": vm.sourceIsFinished,
	})

	vm.newModule("Speakers", map[string]lua.LGFunction{
		"group_gain":  vm.speakersGroupGain,
		"master_gain": vm.speakersMasterGain,
	})
	vm.newModule("Source", map[string]lua.LGFunction{
		"new": vm.sourceNew,
	})
}

// sourceNew opens `path` through the host-provided decoder, registers the
// resulting source with the mixer so it can be heard, and returns it.
func (vm *VM) sourceNew(L *lua.LState) int {
	path := L.CheckString(1)
	if vm.DecodeAudio == nil {
		L.RaiseError("audio decoding is not available on this host")
		return 0
	}
	decoder, err := vm.DecodeAudio(path)
	if err != nil {
		L.RaiseError("can't open `%s`: %s", path, err.Error())
		return 0
	}
	source := audio.NewSource(decoder)
	vm.Mixer.Add(source)
	L.Push(pushUserData(L, source, sourceType))
	return 1
}

// sourceGroup is arity-dispatched: one argument reads the group, two sets
// it, matching the getter/setter convention used throughout the bindings.
func (vm *VM) sourceGroup(L *lua.LState) int {
	source := checkUserData[audio.Source](L, 1, sourceType)
	if L.GetTop() == 1 {
		L.Push(lua.LNumber(source.Group))
		return 1
	}
	source.Group = L.CheckInt(2)
	return 0
}

func (vm *VM) sourceLooped(L *lua.LState) int {
	source := checkUserData[audio.Source](L, 1, sourceType)
	if L.GetTop() == 1 {
		L.Push(lua.LBool(source.Looped))
		return 1
	}
	source.Looped = L.CheckBool(2)
	return 0
}

func (vm *VM) sourceGain(L *lua.LState) int {
	source := checkUserData[audio.Source](L, 1, sourceType)
	if L.GetTop() == 1 {
		L.Push(lua.LNumber(source.Gain()))
		return 1
	}
	source.SetGain(float32(L.CheckNumber(2)))
	return 0
}

func (vm *VM) sourcePan(L *lua.LState) int {
	source := checkUserData[audio.Source](L, 1, sourceType)
	if L.GetTop() == 1 {
		L.Push(lua.LNumber(source.Pan()))
		return 1
	}
	source.SetPan(float32(L.CheckNumber(2)))
	return 0
}

func (vm *VM) sourceSpeed(L *lua.LState) int {
	source := checkUserData[audio.Source](L, 1, sourceType)
	if L.GetTop() == 1 {
		L.Push(lua.LNumber(source.Speed()))
		return 1
	}
	source.SetSpeed(float32(L.CheckNumber(2)))
	return 0
}

// sourcePlay re-registers the source with the mixer (a no-op when it is
// still registered), since the mixer drops sources that played to
// completion.
func (vm *VM) sourcePlay(L *lua.LState) int {
	source := checkUserData[audio.Source](L, 1, sourceType)
	source.Play()
	vm.Mixer.Add(source)
	return 0
}

func (vm *VM) sourceStop(L *lua.LState) int {
	checkUserData[audio.Source](L, 1, sourceType).Stop()
	return 0
}

// sourceRelease stops the source and withdraws it from the mixer; scripts
// call it when they are done with a source for good.
func (vm *VM) sourceRelease(L *lua.LState) int {
	source := checkUserData[audio.Source](L, 1, sourceType)
	source.Stop()
	vm.Mixer.Remove(source)
	return 0
}

func (vm *VM) sourceRewind(L *lua.LState) int {
	checkUserData[audio.Source](L, 1, sourceType).Rewind()
	return 0
}

func (vm *VM) sourceIsPlaying(L *lua.LState) int {
	source := checkUserData[audio.Source](L, 1, sourceType)
	state := source.State()
	L.Push(lua.LBool(state == audio.Playing || state == audio.Finishing))
	return 1
}

// sourceIsFinished reports whether a non-looped source ran to its natural
// end; game code polls this to stop or recycle the source.
func (vm *VM) sourceIsFinished(L *lua.LState) int {
	source := checkUserData[audio.Source](L, 1, sourceType)
	L.Push(lua.LBool(source.State() == audio.Completed))
	return 1
}

func (vm *VM) speakersGroupGain(L *lua.LState) int {
	vm.Mixer.SetGroupGain(L.CheckInt(1), float32(L.CheckNumber(2)))
	return 0
}

func (vm *VM) speakersMasterGain(L *lua.LState) int {
	vm.Mixer.SetMasterGain(float32(L.CheckNumber(1)))
	return 0
}
