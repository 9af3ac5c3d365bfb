package cargo

import (
	"fmt"
	"path/filepath"

	"github.com/joshyorko/cratebom/common"
	"github.com/joshyorko/cratebom/output"
	"github.com/joshyorko/cratebom/spdx"
)

// Describe writes a document for the root crate alone, from the
// metadata graph only. No build runs and no file records are produced,
// this is the quick "what is this project" path.
func Describe(directory, override, hostURL, target string, force bool, format spdx.FormatType) error {
	defer common.Stopwatch("Describing lasted").Debug()
	command, err := Command(override)
	if err != nil {
		return err
	}
	metadata, err := QueryMetadata(directory, command, &Selection{})
	if err != nil {
		return err
	}
	name, version, homepage, registry := rootCrate(directory, metadata)
	if name == "" {
		return fmt.Errorf("no root crate found in %q, virtual workspaces need an explicit package", directory)
	}
	if target == "" {
		target = filepath.Join(directory, name+format.Extension())
	}
	document, err := spdx.NewDocument(hostURL, filepath.Base(target))
	if err != nil {
		return err
	}
	document.Packages = []spdx.Package{*spdx.NewPackage(name, version, homepage, registry)}
	if err := output.NewManager(target, force, format).Write(document); err != nil {
		return err
	}
	common.Log("Wrote %q.", target)
	return nil
}

// rootCrate resolves the crate to describe: the metadata graph's root
// when one exists, otherwise the package section of the directory's own
// Cargo.toml.
func rootCrate(directory string, metadata *Metadata) (name, version, homepage string, registry bool) {
	if root := metadata.Root(); root != nil {
		return root.Name, root.Version, root.Homepage, root.Registry()
	}
	manifest, err := ReadManifest(filepath.Join(directory, "Cargo.toml"))
	if err != nil {
		common.Debug("Manifest fallback failed: %v", err)
		return "", "", "", false
	}
	return manifest.Package.Name, manifest.Package.Version, "", false
}
