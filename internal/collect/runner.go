package collect

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// Runner invokes an external OS utility as a read-only query. Every
// invocation is bounded by timeout; failure means "no data from this tool",
// never a scan error.
type Runner interface {
	Run(ctx context.Context, timeout time.Duration, name string, args ...string) (string, error)
}

// execRunner shells out via os/exec with a per-call deadline.
type execRunner struct{}

// NewRunner returns the default external-command runner.
func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) Run(ctx context.Context, timeout time.Duration, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
