package output

import (
	"fmt"
	"os"

	"github.com/joshyorko/cratebom/common"
	"github.com/joshyorko/cratebom/spdx"
)

// Manager writes one rendered document to its final location.
type Manager struct {
	path   string
	force  bool
	format spdx.FormatType
}

func NewManager(path string, force bool, format spdx.FormatType) *Manager {
	return &Manager{
		path:   path,
		force:  force,
		format: format,
	}
}

func (it *Manager) FileName() string {
	return it.path
}

// Write renders and stores the document. Without force an existing file
// at the target path is an error, never silently replaced.
func (it *Manager) Write(document *spdx.Document) error {
	if !it.force {
		if _, err := os.Stat(it.path); err == nil {
			return fmt.Errorf("output file %q already exists, use --force to overwrite it", it.path)
		}
	}
	content, err := spdx.Render(document, it.format)
	if err != nil {
		return fmt.Errorf("failed to render %q: %w", it.path, err)
	}
	if err := os.WriteFile(it.path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", it.path, err)
	}
	common.Debug("Wrote %d bytes of %s to %q.", len(content), it.format, it.path)
	return nil
}
