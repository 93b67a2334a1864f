package host

import (
	"sync"

	"golang.design/x/clipboard"
)

// Clipboard lazily initialises golang.design/x/clipboard on first use and
// remembers whether it's actually available on this machine (headless Linux
// CI, for instance, has no clipboard to init), so every read/write after a
// failed Init is a cheap no-op instead of a repeated failing syscall.
type Clipboard struct {
	once sync.Once
	ok   bool
}

// Read returns the clipboard's text contents, or "" if the clipboard is
// unavailable.
func (c *Clipboard) Read() string {
	c.init()
	if !c.ok {
		return ""
	}
	return string(clipboard.Read(clipboard.FmtText))
}

// Write replaces the clipboard's text contents; it is a no-op if the
// clipboard is unavailable.
func (c *Clipboard) Write(text string) {
	c.init()
	if !c.ok {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
}

func (c *Clipboard) init() {
	c.once.Do(func() {
		c.ok = clipboard.Init() == nil
	})
}
