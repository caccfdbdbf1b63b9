package ui

import "testing"

func TestThemeByName(t *testing.T) {
	if !ThemeByName("dark").IsDark {
		t.Error("dark theme should be dark")
	}
	if ThemeByName("light").IsDark {
		t.Error("light theme should not be dark")
	}
	if ThemeByName("DARK") != DarkTheme() {
		t.Error("theme names are case-insensitive")
	}
}

func TestDetectThemeFromColorFGBG(t *testing.T) {
	t.Setenv("COLORFGBG", "15;0")
	if !DetectTheme().IsDark {
		t.Error("background 0 should detect dark")
	}

	t.Setenv("COLORFGBG", "0;15")
	if DetectTheme().IsDark {
		t.Error("background 15 should detect light")
	}
}
