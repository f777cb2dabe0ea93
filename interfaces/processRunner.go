package interfaces

import "context"

// ProcessRunner spawns an external binary and captures its full output.
// A non-zero exit code is not an error here; the caller decides how to
// report it. err is reserved for spawn failures and cancellation.
type ProcessRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, exitCode int, err error)
}
