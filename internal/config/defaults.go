package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultDocsPath is the default path scanned for markdown documents
	DefaultDocsPath = "."
	// DefaultScratchDir is the default scratch project directory name
	DefaultScratchDir = "mdt_scratch"
	// DefaultManifestFile is the manifest seeded into the scratch project
	DefaultManifestFile = "Cargo.toml"
	// DefaultCargoBin is the default cargo binary name
	DefaultCargoBin = "cargo"
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "doc-test-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = ".mdt"
)

// DefaultPathsToIgnore are the default directories to ignore when scanning for docs
var DefaultPathsToIgnore = []string{
	"target",
	"vendor",
	"node_modules",
	DefaultScratchDir,
}
