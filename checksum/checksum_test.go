package checksum_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshyorko/cratebom/checksum"
	"github.com/joshyorko/cratebom/hamlet"
)

func TestCanComputeKnownChecksums(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	path := filepath.Join(t.TempDir(), "probe.txt")
	must_be.Nil(os.WriteFile(path, []byte("hello world\n"), 0o644))

	digests, err := checksum.Compute(path)
	must_be.Nil(err)
	must_be.Equal(2, len(digests))
	must_be.Equal(checksum.Sha1, digests[0].Algorithm)
	must_be.Equal("22596363b3de40b06f981fb85d82312e8c0ed511", digests[0].Value)
	must_be.Equal(checksum.Sha256, digests[1].Algorithm)
	must_be.Equal("a948904f2f0f479b8f8197694b30184b0d2ed1c1cd2a1ec0fb85d299a192a447", digests[1].Value)
}

func TestChecksumsAreDeterministic(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	path := filepath.Join(t.TempDir(), "steady.rs")
	must_be.Nil(os.WriteFile(path, []byte("fn main() {}\n"), 0o644))

	first, err := checksum.Compute(path)
	must_be.Nil(err)
	second, err := checksum.Compute(path)
	must_be.Nil(err)
	must_be.Equal(first, second)
}

func TestMissingFileIsAnError(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	digests, err := checksum.Compute(filepath.Join(t.TempDir(), "no-such-file"))
	wont_be.Nil(err)
	must_be.Nil(digests)
}
