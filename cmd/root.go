package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"eslintfix/pkg/detector"
	"eslintfix/pkg/runner"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const Version = "1.0.0"

var (
	dryRun  bool
	verbose bool

	runningMsgStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)
)

var rootCmd = &cobra.Command{
	Use:   "eslint-fix [FILES...]",
	Short: "Run eslint --fix on staged files with the right launcher",
	Long: `eslint-fix is a pre-commit hook that locates the appropriate package manager
or JavaScript runtime for the project containing the staged files and runs
eslint --fix through it, forwarding the linter's exit code.

Detection checks, nearest directory first: Deno config files, Bun lockfiles,
the Corepack packageManager field in package.json, then known lockfiles. A
project-local node_modules/.bin/eslint is preferred whenever one exists.`,
	Version: Version,
	Args:    cobra.ArbitraryArgs,
	Run:     runRootCommand,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runRootCommand(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		return
	}

	detection := detector.DetectWithLogger(startDir(args[0]), newTraceLogger())
	argv := runner.Build(detection, args)

	line := "Running: " + strings.Join(argv, " ")
	if isTerminal() {
		line = runningMsgStyle.Render(line)
	}
	fmt.Println(line)

	if dryRun {
		return
	}

	os.Exit(runner.Run(argv))
}

// startDir derives the detection starting directory from the first
// staged file: its parent when it is a regular file, the path itself
// otherwise.
func startDir(firstFile string) string {
	if info, err := os.Stat(firstFile); err == nil && !info.IsDir() {
		return filepath.Dir(firstFile)
	}
	return firstFile
}

// newTraceLogger returns a detection trace logger, or nil unless --verbose
func newTraceLogger() *log.Logger {
	if !verbose {
		return nil
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "eslint-fix",
	})
	logger.SetLevel(log.DebugLevel)
	return logger
}

func isTerminal() bool {
	if os.Getenv("CI") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return os.Getenv("TERM") != ""
}

func init() {
	rootCmd.SetVersionTemplate("eslint-fix version {{.Version}}\n")

	rootCmd.AddCommand(detectCmd)

	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the command without executing it")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Trace detection decisions")
}
