package keymap

// DefaultBindings is the stock keymap. Portable entries use the
// Primary modifier so one table serves every platform; the few
// platform-specific rows at the bottom layer on top where they apply.
var DefaultBindings = []Binding{
	// Editing
	{Chord: "enter", Command: "insert-newline"},
	{Chord: "tab", Command: "insert-tab"},
	{Chord: "backspace", Command: "delete-backward"},
	{Chord: "delete", Command: "delete-forward"},
	{Chord: "primary+backspace", Command: "delete-to-line-start"},
	{Chord: "primary+delete", Command: "delete-to-line-end"},
	{Chord: "alt+backspace", Command: "delete-word-backward"},
	{Chord: "alt+delete", Command: "delete-word-forward"},
	{Chord: "primary+shift+k", Command: "delete-line"},

	// Movement
	{Chord: "left", Command: "move-left"},
	{Chord: "right", Command: "move-right"},
	{Chord: "up", Command: "move-up"},
	{Chord: "down", Command: "move-down"},
	{Chord: "alt+left", Command: "move-word-left"},
	{Chord: "alt+right", Command: "move-word-right"},
	{Chord: "home", Command: "move-line-start"},
	{Chord: "end", Command: "move-line-end"},
	{Chord: "primary+home", Command: "move-document-start"},
	{Chord: "primary+end", Command: "move-document-end"},
	{Chord: "pageup", Command: "page-up"},
	{Chord: "pagedown", Command: "page-down"},

	// Selection
	{Chord: "shift+left", Command: "select-left"},
	{Chord: "shift+right", Command: "select-right"},
	{Chord: "shift+up", Command: "select-up"},
	{Chord: "shift+down", Command: "select-down"},
	{Chord: "alt+shift+left", Command: "select-word-left"},
	{Chord: "alt+shift+right", Command: "select-word-right"},
	{Chord: "shift+home", Command: "select-line-start"},
	{Chord: "shift+end", Command: "select-line-end"},
	{Chord: "primary+a", Command: "select-all"},
	{Chord: "primary+l", Command: "select-line"},
	{Chord: "primary+d", Command: "select-word"},
	{Chord: "escape", Command: "selection-clear"},

	// History
	{Chord: "primary+z", Command: "undo"},
	{Chord: "primary+shift+z", Command: "redo"},

	// Clipboard
	{Chord: "primary+c", Command: "copy"},
	{Chord: "primary+x", Command: "cut"},
	{Chord: "primary+v", Command: "paste"},

	// Search
	{Chord: "primary+f", Command: "find"},
	{Chord: "primary+g", Command: "find-next"},
	{Chord: "primary+shift+g", Command: "find-previous"},

	// Platform overrides: redo is conventionally Ctrl+Y on Windows,
	// and macOS uses Cmd+Arrow for line and document jumps.
	{Chord: "ctrl+y", Command: "redo", Platform: PlatformWindows},
	{Chord: "meta+left", Command: "move-line-start", Platform: PlatformMac},
	{Chord: "meta+right", Command: "move-line-end", Platform: PlatformMac},
	{Chord: "meta+up", Command: "move-document-start", Platform: PlatformMac},
	{Chord: "meta+down", Command: "move-document-end", Platform: PlatformMac},
}
