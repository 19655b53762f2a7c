package host

import (
	"bufio"
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"slices"
	"strings"

	"github.com/matzehuels/depinfo/pkg/errors"
)

// DefaultInterpreter is the executable probed when none is configured.
const DefaultInterpreter = "python3"

// probeScript prints, one per line: implementation, version, purelib, platlib.
const probeScript = `import platform, sysconfig
paths = sysconfig.get_paths()
print(platform.python_implementation())
print(platform.python_version())
print(paths["purelib"])
print(paths["platlib"])
`

// Python identifies a Python runtime.
type Python struct {
	Name    string // Implementation (e.g., "CPython", "PyPy")
	Version string // Version without build details (e.g., "3.12.1")
}

// UnknownPython is reported when no interpreter could be probed.
func UnknownPython() Python {
	return Python{Name: "Python", Version: unknownVersion}
}

// Interpreter is the result of probing a Python executable.
type Interpreter struct {
	Python
	SitePackages []string // Distinct purelib/platlib directories, purelib first
}

// ProbePython runs exe once and reports its implementation, version and
// site-packages directories.
//
// Returns an [errors.ErrCodeFileNotFound] error if exe cannot be found and an
// [errors.ErrCodeInternal] error if it fails or prints something unexpected.
func ProbePython(ctx context.Context, exe string) (*Interpreter, error) {
	if exe == "" {
		exe = DefaultInterpreter
	}
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, exe, "-c", probeScript)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if stderrors.Is(err, exec.ErrNotFound) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "python interpreter %q", exe)
		}
		msg := strings.TrimSpace(stderr.String())
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "probing %q: %s", exe, msg)
	}
	return parseProbe(exe, stdout.Bytes())
}

func parseProbe(exe string, out []byte) (*Interpreter, error) {
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil, errors.New(errors.ErrCodeInternal, "unexpected output from %q: %q", exe, string(out))
	}

	in := &Interpreter{Python: Python{Name: lines[0], Version: lines[1]}}
	for _, dir := range lines[2:] {
		if !slices.Contains(in.SitePackages, dir) {
			in.SitePackages = append(in.SitePackages, dir)
		}
	}
	return in, nil
}
