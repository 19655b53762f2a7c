package deps

import (
	stderrors "errors"
	"slices"
	"testing"

	"github.com/matzehuels/depinfo/pkg/errors"
)

type failingIndex struct{ err error }

func (f failingIndex) Lookup(string) (*Metadata, error) { return nil, f.err }

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Foo_Bar", "foo-bar"},
		{"importlib_metadata", "importlib-metadata"},
		{"  PyYAML ", "pyyaml"},
		{"already-normal", "already-normal"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := Normalize(got); again != got {
				t.Errorf("Normalize is not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestRequirementName(t *testing.T) {
	tests := []struct {
		req  string
		want string
	}{
		{"zipp", "zipp"},
		{"zipp>=0.5", "zipp"},
		{"foo (>=1.0); extra == 'x'", "foo"},
		{"typing-extensions>=3.6.4; python_version < \"3.8\"", "typing-extensions"},
		{"requests[socks]>=2.0", "requests"},
		{"packaging~=23.0", "packaging"},
		{"six!=1.0", "six"},
		{"pip @ https://example.com/pip.whl", "pip"},
		{"colorama;platform_system=='Windows'", "colorama"},
		{"  Click  ", "Click"},
	}

	for _, tt := range tests {
		t.Run(tt.req, func(t *testing.T) {
			if got := RequirementName(tt.req); got != tt.want {
				t.Errorf("RequirementName(%q) = %q, want %q", tt.req, got, tt.want)
			}
		})
	}
}

func TestFromName(t *testing.T) {
	idx := MapIndex{
		"depinfo": {
			Version:  "2.2.0",
			Requires: []string{"importlib_metadata; python_version < \"3.8\"", "Rich (>=12.0)"},
		},
	}

	pkg, err := FromName(idx, "DepInfo")
	if err != nil {
		t.Fatalf("FromName: %v", err)
	}
	if pkg.Name != "depinfo" {
		t.Errorf("Name = %q, want %q", pkg.Name, "depinfo")
	}
	if pkg.Version != "2.2.0" {
		t.Errorf("Version = %q, want %q", pkg.Version, "2.2.0")
	}
	if want := []string{"importlib-metadata", "rich"}; !slices.Equal(pkg.Requirements, want) {
		t.Errorf("Requirements = %v, want %v", pkg.Requirements, want)
	}
	if pkg.Missing() {
		t.Error("Missing() = true, want false")
	}
}

func TestFromNameMissing(t *testing.T) {
	pkg, err := FromName(MapIndex{}, "definitely-nonexistent-xyz")
	if err != nil {
		t.Fatalf("FromName: %v", err)
	}
	if pkg.Name != "definitely-nonexistent-xyz" {
		t.Errorf("Name = %q", pkg.Name)
	}
	if pkg.Version != "" || !pkg.Missing() {
		t.Errorf("Version = %q, want missing", pkg.Version)
	}
	if len(pkg.Requirements) != 0 {
		t.Errorf("Requirements = %v, want empty", pkg.Requirements)
	}
}

func TestFromNameIndexError(t *testing.T) {
	cause := stderrors.New("permission denied")
	_, err := FromName(failingIndex{err: cause}, "foo")
	if err == nil {
		t.Fatal("expected error")
	}
	if !stderrors.Is(err, cause) {
		t.Errorf("error should wrap the index failure, got %v", err)
	}
	if !errors.Is(err, errors.ErrCodeInvalidMetadata) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidMetadata)
	}
}

func TestMapIndexNormalizesLookups(t *testing.T) {
	idx := MapIndex{"foo-bar": {Version: "1.0"}}
	if _, err := idx.Lookup("Foo_Bar"); err != nil {
		t.Errorf("Lookup(Foo_Bar) = %v", err)
	}
	if _, err := idx.Lookup("baz"); !stderrors.Is(err, ErrNotFound) {
		t.Errorf("Lookup(baz) = %v, want ErrNotFound", err)
	}
}

func TestNotFound(t *testing.T) {
	err := NotFound("ghost")
	if !stderrors.Is(err, ErrNotFound) {
		t.Errorf("NotFound should wrap ErrNotFound, got %v", err)
	}
	if !errors.Is(err, errors.ErrCodePackageNotFound) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodePackageNotFound)
	}

	pkg, err := FromName(failingIndex{err: NotFound("ghost")}, "ghost")
	if err != nil || !pkg.Missing() {
		t.Errorf("FromName = %+v, %v, want missing package", pkg, err)
	}
}
