// Package host describes the machine a report is generated on.
//
// Two small value types are provided:
//
//   - [Platform]: the operating system name and kernel release
//   - [Python]: the interpreter implementation and version
//
// [DetectPlatform] reads the running system. [ProbePython] asks a Python
// interpreter about itself once, which also yields the site-packages
// directories used to build a metadata index.
package host
