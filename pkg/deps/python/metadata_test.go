package python

import (
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/depinfo/pkg/errors"
)

func TestParseMetadata(t *testing.T) {
	content := `Metadata-Version: 2.1
Name: depinfo
Version: 2.2.0
Summary: Retrieve and print package dependencies.
Classifier: Programming Language :: Python :: 3
Requires-Python: >=3.7
Requires-Dist: importlib-metadata ; python_version < "3.8"
Requires-Dist: rich (>=12.0)
Requires-Dist: pytest ; extra == 'test'
Description-Content-Type: text/markdown

# depinfo

A long description: with colons that is not a header.
`
	d, err := ParseMetadata(strings.NewReader(content))
	if err != nil {
		t.Fatalf("ParseMetadata: %v", err)
	}
	if d.Name != "depinfo" || d.Version != "2.2.0" {
		t.Errorf("Name, Version = %q, %q", d.Name, d.Version)
	}
	if d.Summary != "Retrieve and print package dependencies." {
		t.Errorf("Summary = %q", d.Summary)
	}
	want := []string{
		`importlib-metadata ; python_version < "3.8"`,
		"rich (>=12.0)",
		"pytest ; extra == 'test'",
	}
	if !slices.Equal(d.Requires, want) {
		t.Errorf("Requires = %q, want %q", d.Requires, want)
	}

	meta := d.Metadata()
	if meta.Version != "2.2.0" || len(meta.Requires) != 3 {
		t.Errorf("Metadata() = %+v", meta)
	}
}

func TestParseMetadataWithoutBody(t *testing.T) {
	d, err := ParseMetadata(strings.NewReader("Metadata-Version: 2.1\nName: zipp\nVersion: 3.15.0"))
	if err != nil {
		t.Fatalf("ParseMetadata: %v", err)
	}
	if d.Version != "3.15.0" || len(d.Requires) != 0 {
		t.Errorf("got %+v", d)
	}
}

func TestParseMetadataErrors(t *testing.T) {
	tests := map[string]string{
		"empty":          "",
		"no version":     "Metadata-Version: 2.1\nName: broken\n\n",
		"malformed line": "Metadata-Version: 2.1\nthis is not a header\n\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseMetadata(strings.NewReader(content))
			if !errors.Is(err, errors.ErrCodeInvalidMetadata) {
				t.Errorf("err = %v, want %s", err, errors.ErrCodeInvalidMetadata)
			}
		})
	}
}

func TestParseMetadataControlCharacters(t *testing.T) {
	content := "Metadata-Version: 2.1\nName: pasted\nVersion: 0.1\n" +
		"Description: line one\n        \x0c\n        line two\n" +
		"License: MIT\x0b\n" +
		"Requires-Dist: six\n\nbody\n"

	d, err := ParseMetadata(strings.NewReader(content))
	if err != nil {
		t.Fatalf("ParseMetadata: %v", err)
	}
	if d.Version != "0.1" {
		t.Errorf("Version = %q, want 0.1", d.Version)
	}
	if !slices.Equal(d.Requires, []string{"six"}) {
		t.Errorf("Requires = %q, want [six]", d.Requires)
	}
}

func TestParseMetadataHeaders(t *testing.T) {
	content := "metadata-version: 2.1\r\nNAME: folded\r\nversion: 1.0\r\n" +
		"Summary: first\r\n\tsecond\r\nRequires-Dist: a\r\nRequires-Dist:b\r\n" +
		"not a header line\r\nRequires-Dist: c\r\n"

	d, err := ParseMetadata(strings.NewReader(content))
	if err != nil {
		t.Fatalf("ParseMetadata: %v", err)
	}
	if d.Name != "folded" || d.Version != "1.0" {
		t.Errorf("Name, Version = %q, %q", d.Name, d.Version)
	}
	if d.Summary != "first\nsecond" {
		t.Errorf("Summary = %q", d.Summary)
	}
	if want := []string{"a", "b"}; !slices.Equal(d.Requires, want) {
		t.Errorf("Requires = %q, want %q", d.Requires, want)
	}
}

func TestParseRequiresTxt(t *testing.T) {
	content := `six>=1.5
# comment
python-dateutil

[test]
pytest

[:python_version < "3.8"]
importlib-metadata

[docs:sys_platform == "win32"]
colorama
`
	reqs, err := parseRequiresTxt(strings.NewReader(content))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"six>=1.5",
		"python-dateutil",
		`pytest; extra == "test"`,
		`importlib-metadata; python_version < "3.8"`,
		`colorama; (sys_platform == "win32") and extra == "docs"`,
	}
	if !slices.Equal(reqs, want) {
		t.Errorf("reqs = %q, want %q", reqs, want)
	}
}

func TestSectionMarker(t *testing.T) {
	tests := map[string]string{
		"":                            "",
		"docs":                        `; extra == "docs"`,
		`:python_version < "3.12"`:    `; python_version < "3.12"`,
		`test:os_name == "nt"`:        `; (os_name == "nt") and extra == "test"`,
		" spaced : os_name == 'nt' ": `; (os_name == 'nt') and extra == "spaced"`,
	}
	for section, want := range tests {
		if got := sectionMarker(section); got != want {
			t.Errorf("sectionMarker(%q) = %q, want %q", section, got, want)
		}
	}
}
