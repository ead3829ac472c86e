package main

import (
	"sync"

	"github.com/getlantern/systray"
)

// tray is the system tray menu for handtrack: a tracking on/off toggle,
// the last recognized gesture, and quit.
type tray struct {
	onToggle func(enabled bool)
	enabled  bool
	mu       sync.RWMutex

	menuToggle      *systray.MenuItem
	menuLastGesture *systray.MenuItem
}

func newTray() *tray {
	return &tray{enabled: true}
}

// OnToggle sets the callback invoked when tracking is toggled.
func (t *tray) OnToggle(fn func(enabled bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onToggle = fn
}

// Run starts the system tray. Blocks until the quit item is clicked.
func (t *tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

func (t *tray) onReady() {
	systray.SetTitle("handtrack")
	systray.SetTooltip("Hand tracking")

	t.menuToggle = systray.AddMenuItem("● Tracking", "Toggle hand tracking")
	systray.AddSeparator()

	t.menuLastGesture = systray.AddMenuItem("Last: none", "Last recognized gesture")
	t.menuLastGesture.Disable()
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit handtrack")

	go func() {
		for {
			select {
			case <-t.menuToggle.ClickedCh:
				t.handleToggle()
			case <-menuQuit.ClickedCh:
				systray.Quit()
				return
			}
		}
	}()
}

func (t *tray) onExit() {}

func (t *tray) handleToggle() {
	t.mu.Lock()
	t.enabled = !t.enabled
	enabled := t.enabled

	if enabled {
		t.menuToggle.SetTitle("● Tracking")
	} else {
		t.menuToggle.SetTitle("○ Paused")
	}

	callback := t.onToggle
	t.mu.Unlock()

	// Call the callback outside the lock to prevent deadlocks
	if callback != nil {
		callback(enabled)
	}
}

// SetLastGesture updates the last-gesture display in the menu.
func (t *tray) SetLastGesture(name string) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuLastGesture != nil && name != "" {
		t.menuLastGesture.SetTitle("Last: " + name)
	}
}
