package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Raised when a tool invocation cannot be spawned or exits non-zero.
var ErrExternalTool = errors.New("external tool failed")

// Runs a tool in the foreground and waits for it to exit.
//
// Stdin is the null device so a tool can never block on interactive
// input. Stdout passes through (transport tools report progress there);
// stderr is captured and folded into the error on failure.
func run(ctx context.Context, binary string, args ...string) error {
	slog.Debug("executing external tool", "binary", binary, "args", args)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%w: %s %s: exit code %d: %s",
				ErrExternalTool, binary, strings.Join(args, " "),
				exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}
		return fmt.Errorf("%w: %s: %w", ErrExternalTool, binary, err)
	}

	return nil
}
