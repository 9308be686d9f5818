package detector

// Detection represents the resolved launch strategy for ESLint.
//
// CmdPrefix holds the launcher tokens the final command starts with; it
// may be empty when the local binary can be executed directly. When
// LocalESLint is set, CmdPrefix is a runtime launcher (deno, bun) or
// empty, never a package-manager proxy.
type Detection struct {
	CmdPrefix   []string `json:"cmd_prefix"`
	LocalESLint string   `json:"local_eslint,omitempty"`
}
