package cli

import "mdt/internal/config"

// Flags holds command-line flags
type Flags struct {
	DocsPath   string
	NameFilter string
	Cases      bool
	ScratchDir string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		DocsPath:   f.DocsPath,
		NameFilter: f.NameFilter,
		Cases:      f.Cases,
		ScratchDir: f.ScratchDir,
	}
}
