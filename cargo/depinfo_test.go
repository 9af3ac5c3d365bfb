package cargo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshyorko/cratebom/hamlet"
)

func TestListingDerivation(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	must_be.Equal(
		filepath.Join("target", "debug", "deps", "demo-19f3a6.d"),
		listingForObject(filepath.Join("target", "debug", "deps", "libdemo-19f3a6.rmeta")))
	must_be.Equal(
		filepath.Join("target", "debug", "deps", "demo-19f3a6.d"),
		listingForObject(filepath.Join("target", "debug", "deps", "demo-19f3a6.rmeta")))
	must_be.Equal(
		filepath.Join("target", "debug", "demo.d"),
		listingForExecutable(filepath.Join("target", "debug", "demo")))
}

func TestSourcesForMatchingEntry(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	directory := t.TempDir()
	listing := filepath.Join(directory, "demo.d")
	entry := filepath.Join(directory, "demo")
	content := entry + ": src/main.rs src/util.rs build.rs\n\nsrc/main.rs:\nsrc/util.rs:\n"
	must_be.Nil(os.WriteFile(listing, []byte(content), 0o644))

	sources, err := sourcesFor(listing, entry)
	must_be.Nil(err)
	must_be.Equal([]string{"src/main.rs", "src/util.rs", "build.rs"}, sources)
}

func TestSourcesForMissingListingIsEmpty(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sources, err := sourcesFor(filepath.Join(t.TempDir(), "ghost.d"), "anything")
	must_be.Nil(err)
	must_be.Equal(0, len(sources))
}

func TestSourcesForUnmatchedEntryIsEmpty(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	directory := t.TempDir()
	listing := filepath.Join(directory, "demo.d")
	must_be.Nil(os.WriteFile(listing, []byte("/other/key: src/lib.rs\n"), 0o644))

	sources, err := sourcesFor(listing, filepath.Join(directory, "demo"))
	must_be.Nil(err)
	must_be.Equal(0, len(sources))
}
