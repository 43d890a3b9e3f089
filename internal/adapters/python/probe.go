// Package python queries python interpreters.
package python

import (
	"context"
	"strings"

	"go.trai.ch/pinenv/internal/core/domain"
	"go.trai.ch/pinenv/internal/core/ports"
	"go.trai.ch/zerr"
)

// probeScript prints the interpreter version and platform on two lines.
const probeScript = `import platform, sys
print("%d.%d.%d" % sys.version_info[:3])
print(platform.platform())`

var _ ports.InterpreterProbe = (*Probe)(nil)

// Probe implements ports.InterpreterProbe by running the interpreter.
type Probe struct {
	runner ports.CommandRunner
}

// NewProbe creates a new Probe.
func NewProbe(runner ports.CommandRunner) *Probe {
	return &Probe{runner: runner}
}

// Probe returns the version and platform of the given interpreter.
func (p *Probe) Probe(ctx context.Context, python string) (domain.InterpreterInfo, error) {
	out, err := p.runner.Output(ctx, domain.Command{
		Program: python,
		Args:    []string{"-c", probeScript},
		Label:   python + " (interpreter probe)",
	})
	if err != nil {
		failure := zerr.With(zerr.Wrap(domain.ErrInterpreterProbeFailed, python), "python", python)
		return domain.InterpreterInfo{}, domain.WithFailure(failure, err)
	}

	return parseProbeOutput(python, out)
}

func parseProbeOutput(python, out string) (domain.InterpreterInfo, error) {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || strings.TrimSpace(lines[0]) == "" {
		return domain.InterpreterInfo{}, zerr.With(
			zerr.With(zerr.Wrap(domain.ErrInterpreterProbeFailed, "unexpected output"), "python", python),
			"output", out,
		)
	}

	return domain.InterpreterInfo{
		Executable: python,
		Version:    strings.TrimSpace(lines[0]),
		Platform:   strings.TrimSpace(lines[1]),
	}, nil
}
