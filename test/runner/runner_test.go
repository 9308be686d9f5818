package runner_test

import (
	"io"
	"os"
	"reflect"
	"runtime"
	"strings"
	"testing"

	"eslintfix/pkg/detector"
	"eslintfix/pkg/runner"
)

func TestBuildCommand(t *testing.T) {
	tests := []struct {
		name      string
		detection detector.Detection
		files     []string
		want      []string
	}{
		{
			name:      "local eslint direct",
			detection: detector.Detection{LocalESLint: "/proj/node_modules/.bin/eslint"},
			files:     []string{"a.js", "b.ts"},
			want:      []string{"/proj/node_modules/.bin/eslint", "--fix", "a.js", "b.ts"},
		},
		{
			name:      "local eslint through bun",
			detection: detector.Detection{CmdPrefix: []string{"bun"}, LocalESLint: "/proj/node_modules/.bin/eslint"},
			files:     []string{"a.js"},
			want:      []string{"bun", "/proj/node_modules/.bin/eslint", "--fix", "a.js"},
		},
		{
			name:      "local eslint through deno",
			detection: detector.Detection{CmdPrefix: []string{"deno", "run", "-A"}, LocalESLint: "/proj/node_modules/.bin/eslint"},
			files:     []string{"a.js"},
			want:      []string{"deno", "run", "-A", "/proj/node_modules/.bin/eslint", "--fix", "a.js"},
		},
		{
			name:      "deno remote package reference",
			detection: detector.Detection{CmdPrefix: []string{"deno", "run", "-A", "npm:eslint"}},
			files:     []string{"a.js"},
			want:      []string{"deno", "run", "-A", "npm:eslint", "--fix", "a.js"},
		},
		{
			name:      "pnpm exec",
			detection: detector.Detection{CmdPrefix: []string{"pnpm", "exec"}},
			files:     []string{"a.js", "b.js"},
			want:      []string{"pnpm", "exec", "eslint", "--fix", "a.js", "b.js"},
		},
		{
			name:      "npx fallback",
			detection: detector.Detection{CmdPrefix: []string{"npx"}},
			files:     []string{"a.js"},
			want:      []string{"npx", "eslint", "--fix", "a.js"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runner.Build(tt.detection, tt.files)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Build() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRunMissingCommand(t *testing.T) {
	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stderr = w

	code := runner.Run([]string{"eslintfix-test-no-such-command", "--fix", "a.js"})

	w.Close()
	os.Stderr = old

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("Failed to read captured stderr: %v", err)
	}

	if code != 1 {
		t.Errorf("Run() = %d, want 1 for a missing command", code)
	}
	if !strings.Contains(string(out), "eslintfix-test-no-such-command") {
		t.Errorf("Error message %q does not name the missing command", out)
	}
}

func TestRunEmptyArgv(t *testing.T) {
	if code := runner.Run(nil); code != 0 {
		t.Errorf("Run() = %d, want 0 for empty argv", code)
	}
}

func TestRunExitCodePassthrough(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	tests := []struct {
		name string
		argv []string
		want int
	}{
		{name: "success", argv: []string{"sh", "-c", "exit 0"}, want: 0},
		{name: "lint failure", argv: []string{"sh", "-c", "exit 1"}, want: 1},
		{name: "arbitrary code", argv: []string{"sh", "-c", "exit 3"}, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := runner.Run(tt.argv); got != tt.want {
				t.Errorf("Run(%v) = %d, want %d", tt.argv, got, tt.want)
			}
		})
	}
}
