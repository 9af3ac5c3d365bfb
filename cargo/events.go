package cargo

import (
	"encoding/json"
	"strings"
)

// Artifact is one compiler-artifact message from the cargo build json
// stream. All other message kinds are ignored.
type Artifact struct {
	Reason     string   `json:"reason"`
	PackageID  string   `json:"package_id"`
	Filenames  []string `json:"filenames"`
	Executable string   `json:"executable"`
}

// decodeArtifact parses one stream line, returning nil for anything
// that is not a compiler-artifact message. Cargo mixes diagnostics and
// script output into the same stream, so unparseable lines are fine.
func decodeArtifact(line string) *Artifact {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") {
		return nil
	}
	artifact := &Artifact{}
	if err := json.Unmarshal([]byte(trimmed), artifact); err != nil {
		return nil
	}
	if artifact.Reason != "compiler-artifact" || artifact.PackageID == "" {
		return nil
	}
	return artifact
}
