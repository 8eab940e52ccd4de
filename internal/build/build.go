package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gantry-build/gantry/internal/paths"
	"github.com/gantry-build/gantry/internal/script"
	"github.com/gantry-build/gantry/internal/tools"
)

// Script filename looked up inside the build context when none is given.
const defaultScript = "Dockerfile"

// The external tools a build drives.
type Toolchain struct {
	Transport tools.Transport // Materializes base images into the workspace.
	Layout    tools.Layout    // Creates layouts and applies configuration mutations.
}

// Controls script execution.
type Options struct {
	Root      string // Build context directory. All script-relative paths are confined to it.
	Script    string // Script filename inside the context. Defaults to "Dockerfile".
	Workspace string // Parent directory for the build workspace. Defaults under the user cache home.
}

// Returned after successful script execution.
type Result struct {
	Workspace string // OCI layout directory holding the built image.
	Tag       string // Destination tag naming the build's output state.
}

// Executes a build script against the toolchain.
//
// The script is located through the path sandbox, parsed, and validated
// before any side effect occurs. Instructions are then dispatched
// strictly in script order; the first failing step aborts the run.
func Run(ctx context.Context, tc Toolchain, opts Options) (*Result, error) {
	if opts.Script == "" {
		opts.Script = defaultScript
	}

	scriptPath, err := paths.Resolve(opts.Root, opts.Script)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	instructions, err := script.Parse(string(raw))
	if err != nil {
		return nil, err
	}

	slog.Info("executing build script",
		"context", opts.Root,
		"script", opts.Script,
		"instructions", len(instructions),
	)

	return newBuilder(tc, opts, string(raw)).build(ctx, instructions)
}
