// Package term converts tcell key events into the editor's key
// events. It is a thin boundary adapter; no editor logic lives here.
package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/kestrel-edit/kestrel/internal/input/key"
)

// specialKeys maps tcell named keys onto editor keys. Control-letter
// aliases (Tab, Enter, Backspace) are listed here so the generic
// control-letter decoding below never sees them.
var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyInsert:     key.KeyInsert,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
	tcell.KeyF1:         key.KeyF1,
	tcell.KeyF2:         key.KeyF2,
	tcell.KeyF3:         key.KeyF3,
	tcell.KeyF4:         key.KeyF4,
	tcell.KeyF5:         key.KeyF5,
	tcell.KeyF6:         key.KeyF6,
	tcell.KeyF7:         key.KeyF7,
	tcell.KeyF8:         key.KeyF8,
	tcell.KeyF9:         key.KeyF9,
	tcell.KeyF10:        key.KeyF10,
	tcell.KeyF11:        key.KeyF11,
	tcell.KeyF12:        key.KeyF12,
}

// Convert translates a tcell key event. The second return is false
// for events the editor has no representation for.
func Convert(ev *tcell.EventKey) (key.Event, bool) {
	mods := convertMods(ev.Modifiers())

	if k, ok := specialKeys[ev.Key()]; ok {
		return key.NewSpecialEvent(k, mods), true
	}

	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		// Terminals report a shifted letter by case alone; reflect
		// it in the modifier set so chords stay consistent.
		if unicode.IsUpper(r) {
			mods = mods.With(key.ModShift)
		}
		return key.NewRuneEvent(r, mods), true
	}

	// tcell folds Ctrl+letter into dedicated key codes.
	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		r := rune('a' + ev.Key() - tcell.KeyCtrlA)
		return key.NewRuneEvent(r, mods.With(key.ModCtrl)), true
	}

	return key.Event{}, false
}

func convertMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}
