package tui

import "testing"

func TestDefaultKeyMapAllBindingsDefined(t *testing.T) {
	km := DefaultKeyMap()

	bindings := []struct {
		name string
		keys []string
	}{
		{"Next", km.Next.Keys()},
		{"Prev", km.Prev.Keys()},
		{"Fold", km.Fold.Keys()},
		{"Quit", km.Quit.Keys()},
	}

	for _, b := range bindings {
		if len(b.keys) == 0 {
			t.Errorf("expected %s binding to have at least one key", b.name)
		}
	}
}

func TestDefaultKeyMapQuitKeys(t *testing.T) {
	km := DefaultKeyMap()
	keys := km.Quit.Keys()

	hasQ, hasCtrlC := false, false
	for _, k := range keys {
		switch k {
		case "q":
			hasQ = true
		case "ctrl+c":
			hasCtrlC = true
		}
	}
	if !hasQ || !hasCtrlC {
		t.Fatalf("quit binding keys = %v, want both q and ctrl+c", keys)
	}
}
