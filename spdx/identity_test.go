package spdx_test

import (
	"testing"

	"github.com/joshyorko/cratebom/hamlet"
	"github.com/joshyorko/cratebom/spdx"
)

func TestSanitizeReplacesIllegalCharacters(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	must_be.Equal("src-main.rs", spdx.Sanitize("src/main.rs"))
	must_be.Equal("serde-derive", spdx.Sanitize("serde_derive"))
	must_be.Equal("1.0.0-alpha-1", spdx.Sanitize("1.0.0-alpha+1"))
	must_be.Equal("-weird--name-", spdx.Sanitize(" weird: name!"))
}

func TestSanitizeIsIdempotent(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	samples := []string{
		"already-legal.rs",
		"src/lib.rs",
		"c:\\windows\\path.rs",
		"UPPER.and.lower-123",
	}
	for _, sample := range samples {
		once := spdx.Sanitize(sample)
		must_be.Equal(once, spdx.Sanitize(once))
	}
}

func TestPackageIdIsDeterministic(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	must_be.Equal("SPDXRef-serde-1.0.140", spdx.PackageId("serde", "1.0.140"))
	must_be.Equal("SPDXRef-proc-macro2-1.0.40", spdx.PackageId("proc_macro2", "1.0.40"))
	must_be.Equal(spdx.PackageId("rand", "0.8.5"), spdx.PackageId("rand", "0.8.5"))
}

func TestFileIdScopesByPackage(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	must_be.Equal("SPDXRef-File-demo-0.1.0-src-main.rs", spdx.FileId("demo", "0.1.0", "src/main.rs"))
	must_be.Equal("SPDXRef-File-src-main.rs", spdx.FileId("", "", "src/main.rs"))
	must_be.Equal("SPDXRef-File-demo-src-main.rs", spdx.FileId("demo", "", "src/main.rs"))
	wont_be.Equal(
		spdx.FileId("alpha", "1.0.0", "src/lib.rs"),
		spdx.FileId("beta", "1.0.0", "src/lib.rs"))
}
