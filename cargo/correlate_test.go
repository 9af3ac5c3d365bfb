package cargo_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/joshyorko/cratebom/cargo"
	"github.com/joshyorko/cratebom/hamlet"
	"github.com/joshyorko/cratebom/spdx"
)

func artifactLine(t *testing.T, packageID, executable string, filenames ...string) string {
	t.Helper()
	content, err := json.Marshal(map[string]interface{}{
		"reason":     "compiler-artifact",
		"package_id": packageID,
		"filenames":  filenames,
		"executable": executable,
	})
	if err != nil {
		t.Fatalf("cannot marshal artifact: %v", err)
	}
	return string(content)
}

func demoCrate(t *testing.T) (string, cargo.Package) {
	t.Helper()
	root := t.TempDir()
	crate := cargo.Package{
		ID:           "demo 0.1.0 (path+file://" + root + ")",
		Name:         "demo",
		Version:      "0.1.0",
		ManifestPath: filepath.Join(root, "Cargo.toml"),
	}
	return root, crate
}

func writeSource(t *testing.T, root string, parts ...string) string {
	t.Helper()
	path := filepath.Join(append([]string{root}, parts...)...)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("cannot prepare %q: %v", path, err)
	}
	if err := os.WriteFile(path, []byte("// "+path+"\n"), 0o644); err != nil {
		t.Fatalf("cannot write %q: %v", path, err)
	}
	return path
}

func TestCorrelationOfOneExecutable(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	root, crate := demoCrate(t)
	main := writeSource(t, root, "src", "main.rs")
	util := writeSource(t, root, "src", "util.rs")
	target := t.TempDir()
	executable := writeSource(t, target, "demo")
	listing := executable + ".d"
	must_be.Nil(os.WriteFile(listing, []byte(executable+": "+main+" "+util+"\n"), 0o644))

	correlation := cargo.NewCorrelation(cargo.NewMetadata([]cargo.Package{crate}, crate.ID), false)
	must_be.Nil(correlation.Consume(artifactLine(t, crate.ID, executable, executable)))
	must_be.Equal(1, len(correlation.Binaries()))
	must_be.Equal(crate.ID, correlation.Binaries()[0].PackageID)

	document, err := correlation.Assemble(correlation.Binaries()[0], "https://sbom.example.com/demo", "demo.spdx")
	must_be.Nil(err)
	must_be.Equal(1, len(document.Packages))
	must_be.Equal("SPDXRef-demo-0.1.0", document.Packages[0].SPDXID)
	must_be.Equal(3, len(document.Files))

	counted := make(map[spdx.RelationshipType]int)
	for _, relation := range document.Relationships {
		counted[relation.RelationshipType]++
	}
	must_be.Equal(2, counted[spdx.Contains])
	must_be.Equal(1, counted[spdx.GeneratedFrom])
	must_be.Equal(1, counted[spdx.DependsOn])

	subject := document.Files[len(document.Files)-1]
	must_be.Equal([]spdx.FileType{spdx.BinaryFile}, subject.FileTypes)
	must_be.Equal(subject.SPDXID, document.Relationships[2].SpdxElementID)
	must_be.Equal(document.Packages[0].SPDXID, document.Relationships[2].RelatedSpdxElement)
}

func TestCorrelationInsertsPackagesOnce(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	root, crate := demoCrate(t)
	source := writeSource(t, root, "src", "lib.rs")
	deps := t.TempDir()
	rmeta := filepath.Join(deps, "libdemo-19f3a6.rmeta")
	listing := filepath.Join(deps, "demo-19f3a6.d")
	must_be.Nil(os.WriteFile(listing, []byte(listing+": "+source+"\n"), 0o644))

	correlation := cargo.NewCorrelation(cargo.NewMetadata([]cargo.Package{crate}, crate.ID), false)
	line := artifactLine(t, crate.ID, "", rmeta)
	must_be.Nil(correlation.Consume(line))
	must_be.Nil(correlation.Consume(line))

	binary := writeSource(t, t.TempDir(), "demo")
	document, err := correlation.Assemble(cargo.Binary{Path: binary, PackageID: crate.ID}, "https://sbom.example.com/demo", "demo.spdx")
	must_be.Nil(err)
	must_be.Equal(1, len(document.Packages))
	must_be.Equal(2, len(document.Files))
}

func TestCorrelationIgnoresOtherMessages(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	_, crate := demoCrate(t)
	correlation := cargo.NewCorrelation(cargo.NewMetadata([]cargo.Package{crate}, crate.ID), false)
	must_be.Nil(correlation.Consume(`{"reason":"build-script-executed","package_id":"other"}`))
	must_be.Nil(correlation.Consume("warning: unused variable"))
	must_be.Nil(correlation.Consume("{not even json"))
	must_be.Equal(0, len(correlation.Binaries()))
}

func TestCorrelationRejectsUnknownPackages(t *testing.T) {
	_, wont_be := hamlet.Specifications(t)

	_, crate := demoCrate(t)
	correlation := cargo.NewCorrelation(cargo.NewMetadata([]cargo.Package{crate}, crate.ID), false)
	wont_be.Nil(correlation.Consume(artifactLine(t, "ghost 1.0.0 (registry)", "", "libghost.rmeta")))
}

func TestCorrelationFailsOnMissingListedSource(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	root, crate := demoCrate(t)
	target := t.TempDir()
	executable := writeSource(t, target, "demo")
	missing := filepath.Join(root, "src", "gone.rs")
	must_be.Nil(os.WriteFile(executable+".d", []byte(executable+": "+missing+"\n"), 0o644))

	correlation := cargo.NewCorrelation(cargo.NewMetadata([]cargo.Package{crate}, crate.ID), false)
	wont_be.Nil(correlation.Consume(artifactLine(t, crate.ID, executable, executable)))
}
