package cargo

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Manifest is the slice of Cargo.toml needed for naming documents when
// the metadata graph has no root crate, as in virtual workspaces.
type Manifest struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
}

// ReadManifest parses the package section of a Cargo.toml file.
func ReadManifest(path string) (*Manifest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read manifest %q: %w", path, err)
	}
	manifest := &Manifest{}
	if err := toml.Unmarshal(content, manifest); err != nil {
		return nil, fmt.Errorf("cannot parse manifest %q: %w", path, err)
	}
	if manifest.Package.Name == "" {
		return nil, fmt.Errorf("manifest %q declares no package name", path)
	}
	return manifest, nil
}
