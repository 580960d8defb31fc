package git

import (
	"context"
	"os/exec"
	"strings"

	"github.com/fabric8-launcher/boosterconv/pkg/errors"
)

// Runner runs git commands.
type Runner interface {
	// Run executes git with args in dir and returns its combined output.
	Run(ctx context.Context, dir string, args ...string) ([]byte, error)
}

// ExecRunner runs the git binary found on PATH.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...) //nolint:gosec // arguments come from configuration
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		perr := &errors.ProcessError{
			Operation: operation(args),
			Command:   "git " + strings.Join(args, " "),
			Output:    string(output),
			Err:       err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			perr.ExitCode = exitErr.ExitCode()
		}
		return output, perr
	}
	return output, nil
}

func operation(args []string) string {
	if len(args) == 0 {
		return "git"
	}
	return "git " + args[0]
}
