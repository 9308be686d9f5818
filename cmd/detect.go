package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"eslintfix/pkg/detector"

	"github.com/spf13/cobra"
)

// detectCmd prints the resolved launcher for a project path without
// running anything. Useful when debugging hook configuration.
var detectCmd = &cobra.Command{
	Use:   "detect [PATH]",
	Short: "Show which launcher would be used for a project",
	Args:  cobra.MaximumNArgs(1),
	Run:   runDetect,
}

func runDetect(cmd *cobra.Command, args []string) {
	projectPath := "."
	if len(args) > 0 {
		projectPath = args[0]
	}

	projectPath = filepath.Clean(projectPath)

	info, err := os.Stat(projectPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Cannot access path '%s': %v\n", projectPath, err)
		os.Exit(1)
	}
	if !info.IsDir() {
		fmt.Fprintf(os.Stderr, "Error: Path '%s' is not a directory\n", projectPath)
		os.Exit(1)
	}

	detection := detector.DetectWithLogger(projectPath, newTraceLogger())

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(detection); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to encode detection result: %v\n", err)
		os.Exit(1)
	}
}
