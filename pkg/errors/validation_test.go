package errors

import (
	"testing"
)

func TestValidatePackageName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "requests", false},
		{"valid with dash", "my-package", false},
		{"valid with underscore", "my_package", false},
		{"valid with dot", "my.package", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 300)), true},
		{"path traversal ..", "foo/../bar", true},
		{"path separator", "foo/bar", true},
		{"null byte", "foo\x00bar", true},
		{"backslash", "foo\\bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePackageName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePackageName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePythonPackageName(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"depinfo", false},
		{"importlib-metadata", false},
		{"importlib_metadata", false},
		{"zope.interface", false},
		{"A", false},

		{"-leading", true},
		{"trailing-", true},
		{"has space", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidatePythonPackageName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePythonPackageName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPackage) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidPackage)
			}
		})
	}
}

func TestValidateDepth(t *testing.T) {
	for depth := range 5 {
		if err := ValidateDepth(depth, 5); err != nil {
			t.Errorf("ValidateDepth(%d, 5) = %v, want nil", depth, err)
		}
	}

	for _, depth := range []int{-1, 5, 42} {
		err := ValidateDepth(depth, 5)
		if !Is(err, ErrCodeInvalidDepth) {
			t.Fatalf("ValidateDepth(%d, 5) = %v, want %s", depth, err, ErrCodeInvalidDepth)
		}
		if got, want := UserMessage(err), "The maximum depth must be >=0 and <5."; got != want {
			t.Errorf("UserMessage() = %q, want %q", got, want)
		}
	}
}
