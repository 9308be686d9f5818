package detector

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// lockFileRule maps a lockfile to the execution prefix it implies
// (inspired by package-manager-detector). Rules are tried top to bottom.
type lockFileRule struct {
	file string
	cmd  []string
}

var lockFileRules = []lockFileRule{
	{"pnpm-lock.yaml", []string{"pnpm", "exec"}},
	{"yarn.lock", []string{"yarn", "run"}},
	{"bun.lockb", []string{"bun", "x"}},
	{"bun.lock", []string{"bun", "x"}},
	{"package-lock.json", []string{"npx"}},
	{"npm-shrinkwrap.json", []string{"npx"}},
}

// packageManagerField reads the Corepack packageManager field from a
// directory's package.json. A missing file, malformed JSON and an empty
// field all report ok=false so callers fall through to later rules.
func packageManagerField(dir string) (string, bool) {
	content, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return "", false
	}

	var pkg struct {
		PackageManager string `json:"packageManager"`
	}
	if err := json.Unmarshal(content, &pkg); err != nil {
		return "", false
	}
	if pkg.PackageManager == "" {
		return "", false
	}
	return pkg.PackageManager, true
}

// matchPackageManager translates a packageManager declaration (e.g.
// "pnpm@9.0.0") into a detection, preferring the local binary when one
// exists. Unrecognized tool families report ok=false.
func matchPackageManager(field, localESLint string, hasLocal bool) (Detection, bool) {
	switch {
	case strings.HasPrefix(field, "pnpm"):
		if hasLocal {
			return Detection{LocalESLint: localESLint}, true
		}
		return Detection{CmdPrefix: []string{"pnpm", "exec"}}, true
	case strings.HasPrefix(field, "yarn"):
		if hasLocal {
			return Detection{LocalESLint: localESLint}, true
		}
		return Detection{CmdPrefix: []string{"yarn", "run"}}, true
	case strings.HasPrefix(field, "bun"):
		if hasLocal {
			return Detection{CmdPrefix: []string{"bun"}, LocalESLint: localESLint}, true
		}
		return Detection{CmdPrefix: []string{"bun", "x"}}, true
	case strings.HasPrefix(field, "npm"):
		if hasLocal {
			return Detection{LocalESLint: localESLint}, true
		}
		return Detection{CmdPrefix: []string{"npx"}}, true
	default:
		return Detection{}, false
	}
}
