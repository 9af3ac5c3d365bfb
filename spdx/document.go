package spdx

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/joshyorko/cratebom/checksum"
	"github.com/joshyorko/cratebom/common"
)

const createdFormat = `2006-01-02T15:04:05Z`

// NewDocument creates the document skeleton: constants, a validated
// namespace URL, and creation info. Packages, files, and relationships are
// filled in by the caller.
func NewDocument(hostURL, documentName string) (*Document, error) {
	namespace, err := url.Parse(hostURL)
	if err != nil {
		return nil, fmt.Errorf("invalid namespace URL %q: %w", hostURL, err)
	}
	if !namespace.IsAbs() || namespace.Host == "" {
		return nil, fmt.Errorf("namespace URL %q must be absolute", hostURL)
	}
	return &Document{
		SpdxVersion:       SpdxVersion,
		DataLicense:       DataLicense,
		SPDXID:            DocumentSPDXID,
		Name:              documentName,
		DocumentNamespace: namespace.String(),
		CreationInfo: CreationInfo{
			Created:  time.Now().UTC().Format(createdFormat),
			Creators: creators(),
		},
	}, nil
}

// creators lists who made the document: the git user when one is
// configured, and always this tool.
func creators() []string {
	result := make([]string, 0, 2)
	name := gitConfig("user.name")
	if name != "" {
		email := gitConfig("user.email")
		if email != "" {
			result = append(result, fmt.Sprintf("Person: %s (%s)", name, email))
		} else {
			result = append(result, fmt.Sprintf("Person: %s", name))
		}
	}
	return append(result, fmt.Sprintf("Tool: cratebom %s", common.Version))
}

func gitConfig(key string) string {
	output, err := exec.Command("git", "config", "--get", key).Output()
	if err != nil {
		common.Trace("No git config %q available: %v", key, err)
		return ""
	}
	return strings.TrimSpace(string(output))
}

// NewPackage creates the record for one crate. License and copyright are
// always no-assertions; this tool records the build, it never infers
// licensing. Registry-sourced crates carry a package-manager purl
// reference, path-only crates have nowhere to point one.
func NewPackage(name, version, homepage string, registry bool) *Package {
	record := &Package{
		SPDXID:           PackageId(name, version),
		Name:             name,
		VersionInfo:      version,
		DownloadLocation: Noassertion,
		Homepage:         homepage,
		LicenseConcluded: Noassertion,
		LicenseDeclared:  Noassertion,
		CopyrightText:    Noassertion,
	}
	if registry {
		record.ExternalRefs = []ExternalRef{
			{
				ReferenceCategory: "PACKAGE_MANAGER",
				ReferenceType:     "purl",
				ReferenceLocator:  fmt.Sprintf("pkg:cargo/%s@%s", name, version),
			},
		}
	}
	return record
}

// NewFile creates the record for one file on disk. The display name is the
// path relative to root; package name and version scope the identifier for
// source files and stay empty for binaries.
func NewFile(path, root string, category FileType, packageName, packageVersion string) (*File, error) {
	relative, err := filepath.Rel(root, path)
	if err != nil {
		relative = path
	}
	digests, err := checksum.Compute(path)
	if err != nil {
		return nil, err
	}
	checksums := make([]FileChecksum, 0, len(digests))
	for _, digest := range digests {
		checksums = append(checksums, FileChecksum{
			Algorithm:     digest.Algorithm,
			ChecksumValue: digest.Value,
		})
	}
	return &File{
		SPDXID:           FileId(packageName, packageVersion, relative),
		FileName:         relative,
		FileTypes:        []FileType{category},
		Checksums:        checksums,
		LicenseConcluded: Noassertion,
		CopyrightText:    Noassertion,
	}, nil
}
