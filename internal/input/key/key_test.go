package key

import "testing"

func TestFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"enter", KeyEnter},
		{"Enter", KeyEnter},
		{"return", KeyEnter},
		{"esc", KeyEscape},
		{"escape", KeyEscape},
		{"pgup", KeyPageUp},
		{"pageup", KeyPageUp},
		{"f12", KeyF12},
		{"space", KeySpace},
		{"bogus", KeyNone},
	}
	for _, tt := range tests {
		if got := FromName(tt.name); got != tt.want {
			t.Errorf("FromName(%q): expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestKeyStringRoundTrip(t *testing.T) {
	for k := KeyEscape; k <= KeySpace; k++ {
		if got := FromName(k.String()); got != k {
			t.Errorf("expected %v, got %v", k, got)
		}
	}
}

func TestIsNavigationKey(t *testing.T) {
	if !KeyLeft.IsNavigationKey() || !KeyPageDown.IsNavigationKey() {
		t.Error("expected arrow and page keys to be navigation keys")
	}
	if KeyEnter.IsNavigationKey() {
		t.Error("expected enter not to be a navigation key")
	}
}

func TestModifierResolve(t *testing.T) {
	m := ModPrimary.With(ModShift)

	mac := m.Resolve(true)
	if !mac.Has(ModMeta) || mac.Has(ModPrimary) || !mac.Has(ModShift) {
		t.Errorf("expected meta+shift, got %v", mac)
	}

	other := m.Resolve(false)
	if !other.Has(ModCtrl) || other.Has(ModPrimary) {
		t.Errorf("expected ctrl+shift, got %v", other)
	}

	// Without Primary the modifiers pass through untouched.
	if got := ModCtrl.Resolve(true); got != ModCtrl {
		t.Errorf("expected ctrl, got %v", got)
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mods Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "ctrl"},
		{ModCtrl.With(ModShift), "ctrl+shift"},
		{ModPrimary.With(ModShift), "primary+shift"},
		{ModCtrl.With(ModAlt).With(ModShift).With(ModMeta), "ctrl+alt+shift+meta"},
	}
	for _, tt := range tests {
		if got := tt.mods.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}
