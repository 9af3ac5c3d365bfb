package cargo

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joshyorko/cratebom/common"
)

// listingForObject derives the dep-info listing path from a compiled
// rlib or rmeta artifact: same directory, "lib" prefix stripped from
// the base name, extension swapped for ".d".
func listingForObject(artifact string) string {
	directory, base := filepath.Split(artifact)
	base = strings.TrimPrefix(base, "lib")
	extension := filepath.Ext(base)
	base = base[:len(base)-len(extension)] + ".d"
	return filepath.Join(directory, base)
}

// listingForExecutable derives the dep-info listing path next to a
// produced binary.
func listingForExecutable(executable string) string {
	return executable + ".d"
}

// sourcesFor reads the dep-info listing and returns the source paths
// recorded for the given entry. A missing or unopenable listing is not
// an error and yields no sources; cargo does not write listings for
// every artifact kind.
func sourcesFor(listing, entry string) ([]string, error) {
	handle, err := os.Open(listing)
	if err != nil {
		common.Debug("No dep-info listing at %q (%v), skipping.", listing, err)
		return nil, nil
	}
	defer handle.Close()
	scanner := bufio.NewScanner(handle)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, entry) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, nil
		}
		return fields[1:], nil
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dep-info listing %q: %w", listing, err)
	}
	return nil, nil
}
