package cargo

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joshyorko/cratebom/common"
	"github.com/joshyorko/cratebom/spdx"
)

// Binary is one produced executable together with the package that
// compiled it.
type Binary struct {
	Path      string
	PackageID string
}

// Correlation accumulates crates, source files, and binaries from the
// build event stream, resolved against the metadata graph. Packages keep
// their first-seen order so rendered documents are stable run to run.
type Correlation struct {
	metadata *Metadata
	echo     bool
	packages map[string]*spdx.Package
	order    []string
	seen     map[string]bool
	binaries []Binary
	files    []spdx.File
	contains []spdx.Relationship
}

func NewCorrelation(metadata *Metadata, echo bool) *Correlation {
	return &Correlation{
		metadata: metadata,
		echo:     echo,
		packages: make(map[string]*spdx.Package),
		seen:     make(map[string]bool),
	}
}

// Consume handles one line from the cargo build json stream. The line is
// echoed first when requested, so downstream consumers of the build
// output see everything cargo emitted, in order, even when correlation
// fails later.
func (it *Correlation) Consume(line string) error {
	if it.echo {
		common.Stdout("%s\n", line)
	}
	artifact := decodeArtifact(line)
	if artifact == nil {
		return nil
	}
	crate, err := it.ensurePackage(artifact.PackageID)
	if err != nil {
		return err
	}
	for _, filename := range artifact.Filenames {
		if strings.HasSuffix(filename, ".rmeta") {
			listing := listingForObject(filename)
			if err := it.collectSources(listing, listing, crate, artifact.PackageID); err != nil {
				return err
			}
			break
		}
	}
	if artifact.Executable != "" {
		it.binaries = append(it.binaries, Binary{
			Path:      artifact.Executable,
			PackageID: artifact.PackageID,
		})
		listing := listingForExecutable(artifact.Executable)
		if err := it.collectSources(listing, artifact.Executable, crate, artifact.PackageID); err != nil {
			return err
		}
	}
	return nil
}

// ensurePackage resolves an artifact's package id against the metadata
// graph, registering the crate on first sight. Repeated artifacts from
// the same crate reuse the existing record.
func (it *Correlation) ensurePackage(id string) (*Package, error) {
	crate := it.metadata.Lookup(id)
	if crate == nil {
		return nil, fmt.Errorf("build produced artifact for unknown package %q", id)
	}
	if _, ok := it.packages[id]; !ok {
		it.packages[id] = spdx.NewPackage(crate.Name, crate.Version, crate.Homepage, crate.Registry())
		it.order = append(it.order, id)
		common.Debug("Correlated package %s %s.", crate.Name, crate.Version)
	}
	return crate, nil
}

// collectSources folds the dep-info sources of one artifact into the
// correlation as file records contained by the crate. Listed sources
// that cannot be read are hard failures, silently dropping a file would
// leave the inventory incomplete.
func (it *Correlation) collectSources(listing, entry string, crate *Package, id string) error {
	sources, err := sourcesFor(listing, entry)
	if err != nil {
		return err
	}
	record := it.packages[id]
	for _, source := range sources {
		identifier := spdx.FileId(crate.Name, crate.Version, relativeTo(source, crate.CrateRoot()))
		if it.seen[identifier] {
			continue
		}
		file, err := spdx.NewFile(source, crate.CrateRoot(), spdx.SourceFile, crate.Name, crate.Version)
		if err != nil {
			return fmt.Errorf("failed to record source of %s: %w", crate.Name, err)
		}
		it.seen[identifier] = true
		it.files = append(it.files, *file)
		it.contains = append(it.contains, spdx.Relationship{
			SpdxElementID:      record.SPDXID,
			RelationshipType:   spdx.Contains,
			RelatedSpdxElement: file.SPDXID,
		})
	}
	return nil
}

func relativeTo(path, root string) string {
	relative, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return relative
}

// Binaries lists the executables the build produced, in emit order.
func (it *Correlation) Binaries() []Binary {
	return it.binaries
}

// Assemble builds the full document for one produced binary: every
// correlated package and source file, the binary itself, its origin
// package, and a dependency edge to every package the build touched.
func (it *Correlation) Assemble(binary Binary, hostURL, documentName string) (*spdx.Document, error) {
	document, err := spdx.NewDocument(hostURL, documentName)
	if err != nil {
		return nil, err
	}
	for _, id := range it.order {
		document.Packages = append(document.Packages, *it.packages[id])
	}
	document.Files = append(document.Files, it.files...)
	document.Relationships = append(document.Relationships, it.contains...)

	subject, err := spdx.NewFile(binary.Path, filepath.Dir(binary.Path), spdx.BinaryFile, "", "")
	if err != nil {
		return nil, fmt.Errorf("failed to record binary %q: %w", binary.Path, err)
	}
	document.Files = append(document.Files, *subject)

	producer, ok := it.packages[binary.PackageID]
	if !ok {
		return nil, fmt.Errorf("binary %q has no correlated package", binary.Path)
	}
	document.Relationships = append(document.Relationships, spdx.Relationship{
		SpdxElementID:      subject.SPDXID,
		RelationshipType:   spdx.GeneratedFrom,
		RelatedSpdxElement: producer.SPDXID,
	})
	for _, id := range it.order {
		document.Relationships = append(document.Relationships, spdx.Relationship{
			SpdxElementID:      subject.SPDXID,
			RelationshipType:   spdx.DependsOn,
			RelatedSpdxElement: it.packages[id].SPDXID,
		})
	}
	return document, nil
}
