package key

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"a", Event{Key: KeyRune, Rune: 'a'}},
		{"Z", Event{Key: KeyRune, Rune: 'z'}},
		{"@", Event{Key: KeyRune, Rune: '@'}},
		{"enter", Event{Key: KeyEnter}},
		{"Escape", Event{Key: KeyEscape}},
		{"ctrl+z", Event{Key: KeyRune, Rune: 'z', Modifiers: ModCtrl}},
		{"ctrl+shift+z", Event{Key: KeyRune, Rune: 'z', Modifiers: ModCtrl | ModShift}},
		{"primary+c", Event{Key: KeyRune, Rune: 'c', Modifiers: ModPrimary}},
		{"cmd+left", Event{Key: KeyLeft, Modifiers: ModMeta}},
		{"alt+backspace", Event{Key: KeyBackspace, Modifiers: ModAlt}},
		{"ctrl++", Event{Key: KeyRune, Rune: '+', Modifiers: ModCtrl}},
		{"shift+f5", Event{Key: KeyF5, Modifiers: ModShift}},
		{"space", Event{Key: KeySpace}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", tt.spec, err)
			continue
		}
		if !got.Equals(tt.want) {
			t.Errorf("Parse(%q): expected %#v, got %#v", tt.spec, tt.want, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptySpec},
		{"   ", ErrEmptySpec},
		{"bogus+z", ErrInvalidSpec},
		{"ctrl+unknownkey", ErrInvalidSpec},
	}
	for _, tt := range tests {
		_, err := Parse(tt.spec)
		if !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q): expected %v, got %v", tt.spec, tt.want, err)
		}
	}
}

func TestChord(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewRuneEvent('a', ModNone), "a"},
		{NewRuneEvent('Z', ModCtrl|ModShift), "ctrl+shift+z"},
		{NewRuneEvent(' ', ModNone), "space"},
		{NewSpecialEvent(KeyLeft, ModAlt), "alt+left"},
		{NewSpecialEvent(KeyEnter, ModNone), "enter"},
	}
	for _, tt := range tests {
		if got := tt.event.Chord(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestParseChordRoundTrip(t *testing.T) {
	specs := []string{"ctrl+z", "ctrl+shift+z", "alt+left", "enter", "a", "meta+c"}
	for _, spec := range specs {
		e := MustParse(spec)
		if got := e.Chord(); got != spec {
			t.Errorf("expected %q, got %q", spec, got)
		}
	}
}

func TestEventResolve(t *testing.T) {
	e := MustParse("primary+z")

	mac := e.Resolve(true)
	if mac.Chord() != "meta+z" {
		t.Errorf("expected %q, got %q", "meta+z", mac.Chord())
	}

	linux := e.Resolve(false)
	if linux.Chord() != "ctrl+z" {
		t.Errorf("expected %q, got %q", "ctrl+z", linux.Chord())
	}
}

func TestIsChar(t *testing.T) {
	if !NewRuneEvent('x', ModShift).IsChar() {
		t.Error("expected shifted rune to be a char")
	}
	if NewRuneEvent('x', ModCtrl).IsChar() != true {
		// IsChar ignores modifiers; IsModified covers them.
		t.Error("expected rune with ctrl to still be a char")
	}
	if NewSpecialEvent(KeyEnter, ModNone).IsChar() {
		t.Error("expected enter not to be a char")
	}
	if !NewRuneEvent('x', ModCtrl).IsModified() {
		t.Error("expected ctrl to count as modified")
	}
	if NewRuneEvent('X', ModShift).IsModified() {
		t.Error("expected shift alone not to count as modified")
	}
}
