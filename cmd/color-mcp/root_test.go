package main

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/ironsheep/color-tools-mcp/internal/colorutil"
)

// execute runs the command tree with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()

	if cmd.Use != "color-mcp" {
		t.Errorf("Expected Use to be 'color-mcp', got %s", cmd.Use)
	}
	if !cmd.SilenceUsage {
		t.Error("Expected SilenceUsage to be true")
	}
	if cmd.PersistentFlags().Lookup("config") == nil {
		t.Error("Expected persistent --config flag")
	}

	want := map[string]bool{"serve": false, "convert": false, "random": false, "version": false}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("Expected subcommand %s", name)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "color-mcp "+Version+"\n") {
		t.Errorf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "Git commit:") {
		t.Errorf("missing commit line: %q", out)
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("--version failed: %v", err)
	}
	if out != "color-mcp version "+Version+"\n" {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestConvertCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "all forms",
			args: []string{"convert", "#ff8000"},
			want: "hex  #ff8000\nrgb  rgb(255, 128, 0)\nhsl  hsl(30, 100%, 50%)\n",
		},
		{
			name: "hsl input to hex",
			args: []string{"convert", "hsl(240, 100%, 50%)", "--to", "hex"},
			want: "#0000ff\n",
		},
		{
			name: "alpha kept",
			args: []string{"convert", "rgba(0, 0, 255, 0.5)", "--to", "hsl"},
			want: "hsla(240, 100%, 50%, 0.5)\n",
		},
		{
			name: "invert",
			args: []string{"convert", "#ff8000", "--invert", "--to", "hex"},
			want: "#007fff\n",
		},
		{
			name: "grayscale average",
			args: []string{"convert", "#ff0000", "--grayscale", "average", "--to", "rgb"},
			want: "rgb(85, 85, 85)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("convert failed: %v", err)
			}
			if out != tt.want {
				t.Errorf("got %q, want %q", out, tt.want)
			}
		})
	}
}

func TestConvertCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no argument", []string{"convert"}},
		{"invalid color", []string{"convert", "#G8922"}},
		{"invalid form", []string{"convert", "#fff", "--to", "cmyk"}},
		{"invalid grayscale", []string{"convert", "#fff", "--grayscale", "sepia"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestConvertCommand_Preview(t *testing.T) {
	out, err := execute(t, "convert", "#00ff00", "--to", "hex", "--preview")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != "#00ff00" {
		t.Errorf("first line: got %q", lines[0])
	}
	if len(lines) < 3 {
		t.Errorf("expected a bordered swatch after the hex line, got %q", out)
	}
}

func TestRandomCommand(t *testing.T) {
	out, err := execute(t, "random", "--count", "5")
	if err != nil {
		t.Fatalf("random failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
	for _, line := range lines {
		if _, err := colorutil.ParseHex(line); err != nil {
			t.Errorf("random output %q is not a hex color: %v", line, err)
		}
	}
}

func TestRandomCommand_Seeded(t *testing.T) {
	first, err := execute(t, "random", "-n", "3", "--seed", "42", "--rgb")
	if err != nil {
		t.Fatalf("random failed: %v", err)
	}
	second, err := execute(t, "random", "-n", "3", "--seed", "42", "--rgb")
	if err != nil {
		t.Fatalf("random failed: %v", err)
	}
	if first != second {
		t.Errorf("seeded runs differ:\n%s\n%s", first, second)
	}
	for _, line := range strings.Split(strings.TrimSpace(first), "\n") {
		if _, err := colorutil.ParseRGBString(line); err != nil {
			t.Errorf("random output %q is not an rgb string: %v", line, err)
		}
	}
}

func TestRunRandom_InvalidCount(t *testing.T) {
	var out bytes.Buffer
	gen := colorutil.NewGenerator(rand.NewPCG(1, 1))
	if err := runRandom(&out, gen, &randomOptions{count: 0}); err == nil {
		t.Error("expected error for zero count")
	}
}
