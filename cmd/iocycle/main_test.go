package main

import (
	"testing"
)

func TestRootCommandWiring(t *testing.T) {
	cmd := newRootCommand()

	want := map[string]bool{"check": false, "inspect": false, "config": false}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}

	if cmd.PersistentFlags().Lookup("config") == nil {
		t.Error("root command should expose a --config flag")
	}
}
