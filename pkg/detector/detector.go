package detector

import (
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// Detect resolves which launcher should run ESLint for the project
// containing startPath. It walks startPath and its ancestors nearest
// first, stopping at the first directory where any rule matches.
func Detect(startPath string) Detection {
	return DetectWithLogger(startPath, nil)
}

// DetectWithLogger is Detect with per-directory rule tracing. A nil
// logger disables tracing.
func DetectWithLogger(startPath string, logger *log.Logger) Detection {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	dir, err := filepath.Abs(startPath)
	if err != nil {
		dir = filepath.Clean(startPath)
	}

	// Nearest local binary seen during the walk, kept for the fallback.
	firstLocal := ""

	for {
		localESLint := filepath.Join(dir, "node_modules", ".bin", eslintBinary())
		hasLocal := fileExists(localESLint)
		if hasLocal && firstLocal == "" {
			firstLocal = localESLint
		}
		logger.Debug("probing directory", "dir", dir, "local_eslint", hasLocal)

		// Deno has its own module resolution, so the runtime wins over
		// any package-manager markers present in the same directory.
		if fileExists(filepath.Join(dir, "deno.json")) || fileExists(filepath.Join(dir, "deno.jsonc")) {
			logger.Debug("rule matched", "rule", "deno config", "dir", dir)
			if hasLocal {
				return Detection{CmdPrefix: []string{"deno", "run", "-A"}, LocalESLint: localESLint}
			}
			return Detection{CmdPrefix: []string{"deno", "run", "-A", "npm:eslint"}}
		}

		// Bun runs node_modules/.bin/eslint directly with great performance.
		if fileExists(filepath.Join(dir, "bun.lockb")) || fileExists(filepath.Join(dir, "bun.lock")) {
			logger.Debug("rule matched", "rule", "bun lockfile", "dir", dir)
			if hasLocal {
				return Detection{CmdPrefix: []string{"bun"}, LocalESLint: localESLint}
			}
			return Detection{CmdPrefix: []string{"bun", "x"}}
		}

		if field, ok := packageManagerField(dir); ok {
			if d, ok := matchPackageManager(field, localESLint, hasLocal); ok {
				logger.Debug("rule matched", "rule", "packageManager field", "dir", dir, "field", field)
				return d
			}
		}

		for _, rule := range lockFileRules {
			if fileExists(filepath.Join(dir, rule.file)) {
				logger.Debug("rule matched", "rule", "lockfile", "dir", dir, "file", rule.file)
				if hasLocal {
					// Direct execution is fastest (depends on system node).
					return Detection{LocalESLint: localESLint}
				}
				return Detection{CmdPrefix: rule.cmd}
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if firstLocal != "" {
		logger.Debug("no rule matched, using local eslint", "path", firstLocal)
		return Detection{LocalESLint: firstLocal}
	}
	logger.Debug("no rule matched, falling back to npx")
	return Detection{CmdPrefix: []string{"npx"}}
}

// eslintBinary returns the local ESLint binary name for this platform
func eslintBinary() string {
	if runtime.GOOS == "windows" {
		return "eslint.cmd"
	}
	return "eslint"
}

// fileExists checks if a file exists at the given path
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
