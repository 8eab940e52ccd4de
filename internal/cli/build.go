package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gantry-build/gantry/internal/build"
	"github.com/gantry-build/gantry/internal/image"
	"github.com/gantry-build/gantry/internal/tools"
)

// Represents the 'gantry build' command.
type BuildCmd struct {
	Context   string `arg:"" type:"existingdir" help:"Build-context directory. Files outside it cannot be accessed by the build script."`
	File      string `short:"f" placeholder:"NAME" help:"Build script filename inside the context (default Dockerfile)."`
	Workspace string `placeholder:"DIR" help:"Parent directory for the build workspace."`
	Skopeo    string `placeholder:"BIN" help:"Transport tool binary (default skopeo)."`
	Umoci     string `placeholder:"BIN" help:"Layout tool binary (default umoci)."`
}

// Executes the build command.
//
// Runs the build script against the exec-backed toolchain and prints a
// completion notice naming the built image. Errors propagate to main,
// which exits non-zero; the workspace of a failed build is untrusted and
// should be discarded.
func (c *BuildCmd) Run(ctx context.Context) error {
	result, err := build.Run(ctx, build.Toolchain{
		Transport: tools.NewSkopeo(c.Skopeo),
		Layout:    tools.NewUmoci(c.Umoci),
	}, build.Options{
		Root:      c.Context,
		Script:    c.File,
		Workspace: c.Workspace,
	})
	if err != nil {
		return err
	}

	// Best effort: a build with no mutating instruction produces no
	// manifest under the destination tag.
	if desc, err := image.FindDescriptor(result.Workspace, result.Tag); err == nil {
		slog.Info("image manifest", "digest", desc.Digest.String(), "size", desc.Size)
	} else {
		slog.Debug("destination tag has no manifest", "error", err)
	}

	fmt.Printf("Built %s:%s\n", result.Workspace, result.Tag)
	return nil
}
