package runner

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"eslintfix/pkg/detector"
)

// Build composes the final argument vector for a detection and a set of
// target files.
func Build(d detector.Detection, files []string) []string {
	argv := make([]string, 0, len(d.CmdPrefix)+len(files)+3)

	switch {
	case d.LocalESLint != "":
		argv = append(argv, d.CmdPrefix...)
		argv = append(argv, d.LocalESLint)
	case len(d.CmdPrefix) > 0 && d.CmdPrefix[0] == "deno":
		// deno run -A npm:eslint already names the package
		argv = append(argv, d.CmdPrefix...)
	default:
		argv = append(argv, d.CmdPrefix...)
		argv = append(argv, "eslint")
	}

	argv = append(argv, "--fix")
	argv = append(argv, files...)
	return argv
}

// Run executes argv as a child process with output streamed to the
// terminal and returns the exit code this process should report: the
// child's own code when it ran, 1 when the command is missing or the
// launch failed.
func Run(argv []string) int {
	if len(argv) == 0 {
		return 0
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	if errors.Is(err, exec.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "Error: Command '%s' not found. Please ensure it is installed.\n", argv[0])
		return 1
	}

	fmt.Fprintf(os.Stderr, "An unexpected error occurred: %v\n", err)
	return 1
}
