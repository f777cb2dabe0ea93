package runner

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"time"

	"msaforge/interfaces"
)

type runner struct{}

func New() interfaces.ProcessRunner {
	return &runner{}
}

// Run blocks until the process exits and returns its full stdout and
// stderr. The process inherits no stdin. Cancelling ctx kills the child,
// so no zombies are left behind on early caller exit.
func (r *runner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("launching process", "binary", name, "args", args)
	start := time.Now()
	err := cmd.Run()
	slog.Debug("process finished", "binary", name, "took", time.Since(start))

	if err != nil {
		// a cancelled context also kills the child, which then reports an
		// ExitError ("signal: killed"); cancellation must win over that
		if ctxErr := ctx.Err(); ctxErr != nil {
			return stdout.Bytes(), stderr.Bytes(), -1, ctxErr
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// normal exit with non-zero code, caller owns the reporting
			return stdout.Bytes(), stderr.Bytes(), exitErr.ExitCode(), nil
		}
		return stdout.Bytes(), stderr.Bytes(), -1, err
	}
	return stdout.Bytes(), stderr.Bytes(), 0, nil
}
