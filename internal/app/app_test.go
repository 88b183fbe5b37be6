package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/dshills/listedit/internal/config"
)

// runScript runs the menu loop over input and returns everything printed.
func runScript(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	application := New(Options{
		Input:    strings.NewReader(input),
		Output:   &out,
		HideMenu: true,
	})
	if err := application.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !application.Engine().IsClosed() {
		t.Error("engine should be released after Run")
	}
	return out.String()
}

// printed returns the lines of output that are not prompts.
func printed(output string) []string {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		// Strip prompts that share a line with printed text.
		if i := strings.LastIndex(line, ": "); i >= 0 && strings.HasPrefix(line, "Enter") {
			line = line[i+2:]
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestRun_InsertAndPrint(t *testing.T) {
	out := runScript(t, "1 10 1 20 1 30 6 8")
	lines := printed(out)

	want := []string{"10 -> 20 -> 30 -> NULL", "Exiting..."}
	if !equalLines(lines, want) {
		t.Errorf("printed = %q, want %q", lines, want)
	}
}

func TestRun_PrintEmpty(t *testing.T) {
	lines := printed(runScript(t, "6 8"))
	if len(lines) == 0 || lines[0] != "List is empty." {
		t.Errorf("printed = %q", lines)
	}
}

func TestRun_AllInserts(t *testing.T) {
	// end 10, end 30, after 0 -> 20, begin 5, before 4 -> 40, edit 5 -> 0
	lines := printed(runScript(t, "1 10 1 30 2 0 20 4 5 3 4 40 5 5 0 6 8"))
	if lines[0] != "0 -> 10 -> 20 -> 30 -> 40 -> NULL" {
		t.Errorf("list = %q", lines[0])
	}
}

func TestRun_Undo(t *testing.T) {
	lines := printed(runScript(t, "1 1 1 2 7 6 7 6 7 8"))
	want := []string{
		"1 -> NULL",
		"List is empty.",
		"No operations to undo.",
		"Exiting...",
	}
	if !equalLines(lines, want) {
		t.Errorf("printed = %q, want %q", lines, want)
	}
}

func TestRun_RecoverableErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"insert after on empty", "2 3 1 8", "List is empty. Can't insert at position 3."},
		{"insert after out of bounds", "1 10 2 1 5 8", "Position 1 out of bounds."},
		{"insert before negative", "3 -1 5 8", "Invalid position -1."},
		{"insert before out of bounds", "3 2 5 8", "Position 2 out of bounds."},
		{"edit missing", "5 4 2 8", "Value 4 not found."},
		{"invalid choice", "42 8", "Invalid choice. Please try again."},
		{"invalid input", "x 8", "Invalid input."},
		{"invalid argument", "1 y 8", "Invalid input."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := printed(runScript(t, tt.input))
			if len(lines) < 2 || lines[0] != tt.want {
				t.Errorf("printed = %q, want first line %q", lines, tt.want)
			}
			if lines[len(lines)-1] != "Exiting..." {
				t.Errorf("loop did not continue to exit: %q", lines)
			}
		})
	}
}

func TestRun_FailedEditIsUndoable(t *testing.T) {
	// The failed insert still records a snapshot; undoing it keeps [10].
	lines := printed(runScript(t, "1 10 2 5 1 7 6 7 6 8"))
	want := []string{
		"Position 5 out of bounds.",
		"10 -> NULL",
		"List is empty.",
		"Exiting...",
	}
	if !equalLines(lines, want) {
		t.Errorf("printed = %q, want %q", lines, want)
	}
}

func TestRun_EndOfInput(t *testing.T) {
	out := runScript(t, "1 5")
	if !strings.HasSuffix(out, "Exiting...\n") {
		t.Errorf("output should end with exit message, got %q", out)
	}
}

func TestRun_EndOfInputMidCommand(t *testing.T) {
	out := runScript(t, "2 0")
	if !strings.Contains(out, promptValue) || !strings.HasSuffix(out, "Exiting...\n") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRun_History(t *testing.T) {
	out := runScript(t, "1 4 4 3 9 8")
	for _, want := range []string{"undo history", "depth: 2", "insert 4 at end", "insert 3 at beginning", "list: 4 -> NULL", "list: List is empty."} {
		if !strings.Contains(out, want) {
			t.Errorf("history output missing %q:\n%s", want, out)
		}
	}
	// Newest snapshot is listed first.
	if strings.Index(out, "#2 before") > strings.Index(out, "#1 before") {
		t.Errorf("history not newest first:\n%s", out)
	}
}

func TestRun_MenuShown(t *testing.T) {
	var out bytes.Buffer
	application := New(Options{Input: strings.NewReader("8"), Output: &out})
	if err := application.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "--- MENU ---") || !strings.Contains(out.String(), "7. Undo last operation") {
		t.Errorf("menu not shown:\n%s", out.String())
	}
}

func TestRun_ConfigRenderOptions(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	application := New(Options{Input: strings.NewReader("6 8"), Output: &out, Config: cfg, HideMenu: true})
	if err := application.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "List is empty.") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRun_Cancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	application := New(Options{Input: pr, Output: &out, HideMenu: true})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- application.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
	if !application.Engine().IsClosed() {
		t.Error("engine should be released after cancel")
	}
}

func TestRun_LogsFailures(t *testing.T) {
	var logs bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &logs})

	application := New(Options{
		Input:    strings.NewReader("5 1 2 1 3 8"),
		Output:   io.Discard,
		Logger:   logger,
		HideMenu: true,
	})
	if err := application.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	output := logs.String()
	if !strings.Contains(output, "[WARN]") || !strings.Contains(output, "op=edit") {
		t.Errorf("expected warning for failed edit, got:\n%s", output)
	}
	if !strings.Contains(output, "component=menu") {
		t.Errorf("expected component field, got:\n%s", output)
	}
	if !strings.Contains(output, "value=3") {
		t.Errorf("expected debug line for insert, got:\n%s", output)
	}
}

func TestRun_FailureContextLogged(t *testing.T) {
	var logs bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &logs})

	application := New(Options{
		Input:    strings.NewReader("7 2 4 9 3 -1 7 8"),
		Output:   io.Discard,
		Logger:   logger,
		HideMenu: true,
	})
	if err := application.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	output := logs.String()
	for _, want := range []string{
		"insert after (position=4 value=9): List is empty. Can't insert at position 4.",
		"insert before (position=-1 value=7): Invalid position -1.",
		"undo (depth=0): nothing to undo",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in logs, got:\n%s", want, output)
		}
	}
}

func TestRun_ReadFailure(t *testing.T) {
	errBroken := errors.New("broken pipe")

	tests := []struct {
		name  string
		input io.Reader
	}{
		{"at choice", iotest.ErrReader(errBroken)},
		{"mid command", io.MultiReader(strings.NewReader("1 "), iotest.ErrReader(errBroken))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			application := New(Options{
				Input:    tt.input,
				Output:   io.Discard,
				Logger:   NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &logs}),
				HideMenu: true,
			})

			err := application.Run(context.Background())
			if !errors.Is(err, errBroken) {
				t.Fatalf("Run() error = %v, want %v", err, errBroken)
			}
			if !strings.Contains(logs.String(), "[ERROR]") || !strings.Contains(logs.String(), "broken pipe") {
				t.Errorf("expected error log, got:\n%s", logs.String())
			}
			if !application.Engine().IsClosed() {
				t.Error("engine should be released after a read failure")
			}
		})
	}
}

func TestShutdownIdempotent(t *testing.T) {
	application := New(Options{Input: strings.NewReader(""), Output: io.Discard})
	application.Shutdown()
	application.Shutdown()
	if !application.Engine().IsClosed() {
		t.Error("engine should be closed")
	}
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
