package spdx

// SPDX 2.2 document object graph. Field names follow the JSON property
// names from the SPDX schema; the yaml tags keep the YAML rendering
// aligned with the same property names.

const (
	Noassertion    = `NOASSERTION`
	SpdxVersion    = `SPDX-2.2`
	DataLicense    = `CC0-1.0`
	DocumentSPDXID = `SPDXRef-DOCUMENT`
)

type RelationshipType string

const (
	Contains      RelationshipType = `CONTAINS`
	GeneratedFrom RelationshipType = `GENERATED_FROM`
	DependsOn     RelationshipType = `DEPENDS_ON`
)

type FileType string

const (
	SourceFile FileType = `SOURCE`
	BinaryFile FileType = `BINARY`
)

type Document struct {
	SpdxVersion       string         `json:"spdxVersion" yaml:"spdxVersion"`
	DataLicense       string         `json:"dataLicense" yaml:"dataLicense"`
	SPDXID            string         `json:"SPDXID" yaml:"SPDXID"`
	Name              string         `json:"name" yaml:"name"`
	DocumentNamespace string         `json:"documentNamespace" yaml:"documentNamespace"`
	CreationInfo      CreationInfo   `json:"creationInfo" yaml:"creationInfo"`
	Packages          []Package      `json:"packages,omitempty" yaml:"packages,omitempty"`
	Files             []File         `json:"files,omitempty" yaml:"files,omitempty"`
	Relationships     []Relationship `json:"relationships,omitempty" yaml:"relationships,omitempty"`
}

type CreationInfo struct {
	Created  string   `json:"created" yaml:"created"`
	Creators []string `json:"creators" yaml:"creators"`
}

type Package struct {
	SPDXID           string        `json:"SPDXID" yaml:"SPDXID"`
	Name             string        `json:"name" yaml:"name"`
	VersionInfo      string        `json:"versionInfo,omitempty" yaml:"versionInfo,omitempty"`
	DownloadLocation string        `json:"downloadLocation" yaml:"downloadLocation"`
	Homepage         string        `json:"homepage,omitempty" yaml:"homepage,omitempty"`
	LicenseConcluded string        `json:"licenseConcluded" yaml:"licenseConcluded"`
	LicenseDeclared  string        `json:"licenseDeclared" yaml:"licenseDeclared"`
	CopyrightText    string        `json:"copyrightText" yaml:"copyrightText"`
	ExternalRefs     []ExternalRef `json:"externalRefs,omitempty" yaml:"externalRefs,omitempty"`
}

type ExternalRef struct {
	ReferenceCategory string `json:"referenceCategory" yaml:"referenceCategory"`
	ReferenceType     string `json:"referenceType" yaml:"referenceType"`
	ReferenceLocator  string `json:"referenceLocator" yaml:"referenceLocator"`
}

type File struct {
	SPDXID           string         `json:"SPDXID" yaml:"SPDXID"`
	FileName         string         `json:"fileName" yaml:"fileName"`
	FileTypes        []FileType     `json:"fileTypes" yaml:"fileTypes"`
	Checksums        []FileChecksum `json:"checksums" yaml:"checksums"`
	LicenseConcluded string         `json:"licenseConcluded" yaml:"licenseConcluded"`
	CopyrightText    string         `json:"copyrightText" yaml:"copyrightText"`
}

type FileChecksum struct {
	Algorithm     string `json:"algorithm" yaml:"algorithm"`
	ChecksumValue string `json:"checksumValue" yaml:"checksumValue"`
}

type Relationship struct {
	SpdxElementID      string           `json:"spdxElementId" yaml:"spdxElementId"`
	RelationshipType   RelationshipType `json:"relationshipType" yaml:"relationshipType"`
	RelatedSpdxElement string           `json:"relatedSpdxElement" yaml:"relatedSpdxElement"`
}
