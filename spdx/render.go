package spdx

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v2"
)

// FormatType represents the on-disk rendering of a document.
type FormatType string

const (
	// FormatKeyValue is the SPDX tag-value format.
	FormatKeyValue FormatType = "kv"
	// FormatJson is the SPDX JSON format.
	FormatJson FormatType = "json"
	// FormatYaml is the SPDX YAML format.
	FormatYaml FormatType = "yaml"
)

// ParseFormat parses a format string into a FormatType.
func ParseFormat(format string) (FormatType, error) {
	switch format {
	case "kv", "key-value", "tag-value":
		return FormatKeyValue, nil
	case "json", "JSON":
		return FormatJson, nil
	case "yaml", "YAML":
		return FormatYaml, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: kv, json, yaml)", format)
	}
}

// Extension returns the output file extension for the format, appended to
// the artifact name the document describes.
func (it FormatType) Extension() string {
	switch it {
	case FormatJson:
		return ".spdx.json"
	case FormatYaml:
		return ".spdx.yaml"
	default:
		return ".spdx"
	}
}

// Render serializes the document in the requested format.
func Render(document *Document, format FormatType) ([]byte, error) {
	switch format {
	case FormatKeyValue:
		return renderKeyValue(document)
	case FormatJson:
		return json.MarshalIndent(document, "", "  ")
	case FormatYaml:
		return yaml.Marshal(document)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func renderKeyValue(document *Document) ([]byte, error) {
	sink := new(bytes.Buffer)
	field := func(tag string, value interface{}) {
		fmt.Fprintf(sink, "%s: %v\n", tag, value)
	}
	optional := func(tag string, value string) {
		if value != "" {
			field(tag, value)
		}
	}

	field("SPDXVersion", document.SpdxVersion)
	field("DataLicense", document.DataLicense)
	field("SPDXID", document.SPDXID)
	field("DocumentName", document.Name)
	field("DocumentNamespace", document.DocumentNamespace)
	for _, creator := range document.CreationInfo.Creators {
		field("Creator", creator)
	}
	field("Created", document.CreationInfo.Created)

	for _, record := range document.Packages {
		fmt.Fprintln(sink)
		field("PackageName", record.Name)
		field("SPDXID", record.SPDXID)
		optional("PackageVersion", record.VersionInfo)
		field("PackageDownloadLocation", record.DownloadLocation)
		optional("PackageHomePage", record.Homepage)
		field("PackageLicenseConcluded", record.LicenseConcluded)
		field("PackageLicenseDeclared", record.LicenseDeclared)
		field("PackageCopyrightText", record.CopyrightText)
		for _, reference := range record.ExternalRefs {
			field("ExternalRef", fmt.Sprintf("%s %s %s",
				reference.ReferenceCategory,
				reference.ReferenceType,
				reference.ReferenceLocator))
		}
	}

	for _, record := range document.Files {
		fmt.Fprintln(sink)
		field("FileName", record.FileName)
		field("SPDXID", record.SPDXID)
		for _, category := range record.FileTypes {
			field("FileType", string(category))
		}
		for _, digest := range record.Checksums {
			field("FileChecksum", fmt.Sprintf("%s: %s", digest.Algorithm, digest.ChecksumValue))
		}
		field("LicenseConcluded", record.LicenseConcluded)
		field("FileCopyrightText", record.CopyrightText)
	}

	if len(document.Relationships) > 0 {
		fmt.Fprintln(sink)
		for _, relation := range document.Relationships {
			field("Relationship", fmt.Sprintf("%s %s %s",
				relation.SpdxElementID,
				relation.RelationshipType,
				relation.RelatedSpdxElement))
		}
	}

	return sink.Bytes(), nil
}
