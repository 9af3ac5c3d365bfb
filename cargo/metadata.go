package cargo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joshyorko/cratebom/common"
	"github.com/joshyorko/cratebom/shell"
)

// Package is one crate from the resolved dependency graph.
type Package struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Version      string `json:"version"`
	ManifestPath string `json:"manifest_path"`
	Homepage     string `json:"homepage"`
	Source       string `json:"source"`
}

// CrateRoot is the directory holding the crate's Cargo.toml; source file
// display names are relative to it.
func (it *Package) CrateRoot() string {
	return filepath.Dir(it.ManifestPath)
}

// Registry tells whether the crate came from a remote registry; path
// dependencies and workspace members have no source.
func (it *Package) Registry() bool {
	return it.Source != ""
}

type resolve struct {
	Root string `json:"root"`
}

// Metadata is the dependency graph returned by `cargo metadata`, indexed
// by package identifier.
type Metadata struct {
	Packages []Package `json:"packages"`
	Resolve  *resolve  `json:"resolve"`
	index    map[string]*Package
}

// QueryMetadata runs `cargo metadata` once, forwarding the build's
// feature and target selection so the graph matches the build.
func QueryMetadata(directory string, cargoCommand []string, selection *Selection) (*Metadata, error) {
	defer common.Stopwatch("Metadata query lasted").Debug()
	args := append([]string{}, cargoCommand...)
	args = append(args, "metadata", "--format-version", "1")
	args = append(args, selection.MetadataArgs()...)
	task := shell.New(os.Environ(), directory, args...)
	content, code, err := task.Output()
	if err != nil {
		return nil, fmt.Errorf("cargo metadata failed with code %d: %w", code, err)
	}
	metadata := &Metadata{}
	if err := json.Unmarshal(content, metadata); err != nil {
		return nil, fmt.Errorf("cannot parse cargo metadata output: %w", err)
	}
	metadata.reindex()
	common.Debug("Metadata graph holds %d packages.", len(metadata.Packages))
	return metadata, nil
}

// NewMetadata builds a graph directly from package records.
func NewMetadata(packages []Package, root string) *Metadata {
	metadata := &Metadata{Packages: packages}
	if root != "" {
		metadata.Resolve = &resolve{Root: root}
	}
	metadata.reindex()
	return metadata
}

func (it *Metadata) reindex() {
	it.index = make(map[string]*Package, len(it.Packages))
	for at, record := range it.Packages {
		it.index[record.ID] = &it.Packages[at]
	}
}

// Lookup resolves a package identifier from the graph.
func (it *Metadata) Lookup(id string) *Package {
	return it.index[id]
}

// Root returns the root crate of the graph, or nil for virtual
// workspaces which have none.
func (it *Metadata) Root() *Package {
	if it.Resolve == nil || it.Resolve.Root == "" {
		return nil
	}
	return it.Lookup(it.Resolve.Root)
}
