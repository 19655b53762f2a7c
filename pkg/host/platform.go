package host

import (
	"runtime"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const unknownVersion = "unknown"

// Platform identifies the operating system.
type Platform struct {
	Name    string // Title-cased OS name (e.g., "Linux", "Darwin")
	Version string // Kernel release (e.g., "6.8.0-45-generic")
}

// DetectPlatform returns information about the running operating system.
// The version falls back to "unknown" when the kernel release cannot be read.
func DetectPlatform() Platform {
	version := kernelRelease()
	if version == "" {
		version = unknownVersion
	}
	return Platform{
		Name:    osName(runtime.GOOS),
		Version: version,
	}
}

func osName(goos string) string {
	return cases.Title(language.Und).String(goos)
}
