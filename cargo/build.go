package cargo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joshyorko/cratebom/common"
	"github.com/joshyorko/cratebom/output"
	"github.com/joshyorko/cratebom/pretty"
	"github.com/joshyorko/cratebom/shell"
	"github.com/joshyorko/cratebom/spdx"
)

// Command resolves the cargo invocation: the explicit override, the
// CARGO environment variable, or plain "cargo". Overrides are split
// shell-style so "cargo +nightly" or "cross" both work.
func Command(override string) ([]string, error) {
	if override == "" {
		override = os.Getenv("CARGO")
	}
	if override == "" {
		return []string{"cargo"}, nil
	}
	parts, err := shell.Split(override)
	if err != nil || len(parts) == 0 {
		return nil, fmt.Errorf("cannot parse cargo command %q: %w", override, err)
	}
	return parts, nil
}

// Build wraps one `cargo build`, correlates the emitted artifacts, and
// writes one document per produced binary, next to the binary. A failed
// build propagates cargo's exit code and writes nothing.
func Build(directory, override string, forwarded []string, hostURL string, format spdx.FormatType) error {
	defer common.Stopwatch("Build wrapping lasted").Debug()
	selection := ScanBuildArgs(forwarded)
	if selection.MessageFormat != "" && !selection.JsonMessages() {
		return fmt.Errorf("message format %q is not supported, only json formats can be correlated", selection.MessageFormat)
	}
	command, err := Command(override)
	if err != nil {
		return err
	}
	metadata, err := QueryMetadata(directory, command, selection)
	if err != nil {
		return err
	}
	correlation := NewCorrelation(metadata, selection.JsonMessages())
	args := append([]string{}, command...)
	args = append(args, "build")
	args = append(args, forwarded...)
	if !selection.JsonMessages() {
		args = append(args, "--message-format=json")
	}
	task := shell.New(os.Environ(), directory, args...)
	code, err := task.Stream(correlation.Consume)
	if code != 0 {
		if code < 0 {
			code = 1
		}
		pretty.Exit(code, "cargo build failed with exit code %d.", code)
	}
	if err != nil {
		return err
	}
	binaries := correlation.Binaries()
	if len(binaries) == 0 {
		common.Log("Build produced no binaries, nothing to describe.")
		return nil
	}
	for _, binary := range binaries {
		target := binary.Path + format.Extension()
		document, err := correlation.Assemble(binary, hostURL, filepath.Base(target))
		if err != nil {
			return err
		}
		// the binary at that path was just rebuilt, so its document
		// is stale by definition and always replaced
		if err := output.NewManager(target, true, format).Write(document); err != nil {
			return err
		}
		common.Log("Wrote %q.", target)
	}
	return nil
}
