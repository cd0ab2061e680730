package cli

import (
	"bytes"
	"testing"
)

// executeCommand runs a command with the given args and captures output.
func executeCommand(args ...string) (string, error) {
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootHelp(t *testing.T) {
	_, err := executeCommand("--help")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGlobalFlags(t *testing.T) {
	root := NewRootCmd()

	formatFlag := root.PersistentFlags().Lookup("format")
	if formatFlag == nil {
		t.Fatal("expected --format flag to exist")
	}
	if formatFlag.DefValue != "text" {
		t.Errorf("expected --format default 'text', got %q", formatFlag.DefValue)
	}

	serverFlag := root.PersistentFlags().Lookup("server")
	if serverFlag == nil {
		t.Fatal("expected --server flag to exist")
	}
}

func TestCommandsRegistered(t *testing.T) {
	root := NewRootCmd()

	want := []string{"browse", "search", "show", "book", "trips", "remove", "login", "logout", "status", "version"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestBrowseRejectsUnknownCategory(t *testing.T) {
	_, err := executeCommand("browse", "--category", "Submarine")
	if err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestBookRequiresDates(t *testing.T) {
	_, err := executeCommand("book", "p1")
	if err == nil {
		t.Fatal("expected error when dates are missing")
	}
}
