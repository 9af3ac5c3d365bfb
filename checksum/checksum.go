package checksum

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/joshyorko/cratebom/common"
)

const (
	Sha1   = `SHA1`
	Sha256 = `SHA256`
)

type Digest struct {
	Algorithm string
	Value     string
}

// Compute calculates the SHA1 and SHA256 digests of a file in one read
// pass. SHA1 comes first since the SPDX specification mandates it; SHA256
// rides along for consumers that want a modern algorithm.
func Compute(path string) ([]Digest, error) {
	common.Trace("Calculating checksums for %q.", path)
	source, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate checksum for %q: %w", path, err)
	}
	defer source.Close()
	legacy := sha1.New()
	modern := sha256.New()
	_, err = io.Copy(io.MultiWriter(legacy, modern), source)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate checksum for %q: %w", path, err)
	}
	return []Digest{
		{Algorithm: Sha1, Value: hex.EncodeToString(legacy.Sum(nil))},
		{Algorithm: Sha256, Value: hex.EncodeToString(modern.Sum(nil))},
	}, nil
}
