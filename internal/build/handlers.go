package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gantry-build/gantry/internal/image"
)

// Base-image reference that initializes an empty layout locally instead
// of importing one.
const scratchRef = "scratch"

// Establishes the build's base image.
//
// The first FROM allocates the workspace and materializes the base:
// "scratch" initializes an empty layout in place, any other reference is
// copied in by the transport tool under the derived source tag. A later
// FROM cannot change the base; the workspace and tags are already
// pinned, so it is ignored.
func (b *builder) from(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: FROM takes exactly one base-image reference, got %d arguments",
			ErrInvalidArguments, len(args))
	}
	ref := args[0]

	if b.workspace != "" {
		slog.Debug("base already established, ignoring additional FROM", "ref", ref)
		return nil
	}

	if err := b.allocateWorkspace(); err != nil {
		return err
	}

	b.sourceTag = image.SourceTag(ref)
	b.tags = append(b.tags, b.sourceTag)

	if ref == scratchRef {
		// The layout tool wants to create the directory itself.
		if err := os.Remove(b.workspace); err != nil {
			return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
		}
		if err := b.tc.Layout.Init(ctx, b.workspace); err != nil {
			return err
		}
		return b.tc.Layout.New(ctx, b.workspace, b.sourceTag)
	}

	return b.tc.Transport.Copy(ctx, image.TransportSource(ref), "oci:"+b.workspace+":"+b.sourceTag)
}

// Sets the runtime command, or clears it when no arguments are given.
func (b *builder) command(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return b.configure(ctx, "--clear=config.cmd")
	}
	return b.configure(ctx, prefixed("--config.cmd=", args)...)
}

// Sets the entrypoint, or clears it when no arguments are given.
func (b *builder) entrypoint(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return b.configure(ctx, "--clear=config.entrypoint")
	}
	return b.configure(ctx, prefixed("--config.entrypoint=", args)...)
}

// Applies key=value label assignments, passed through verbatim.
func (b *builder) label(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: LABEL takes at least one key=value pair", ErrInvalidArguments)
	}
	return b.configure(ctx, prefixed("--config.label=", args)...)
}

// Sets the author field and a synthesized maintainer label from the
// arguments joined with single spaces.
func (b *builder) maintainer(ctx context.Context, args []string) error {
	author := strings.Join(args, " ")
	return b.configure(ctx, "--author="+author, "--config.label=maintainer="+author)
}

// Exposes ports. Previously exposed ports cannot be removed.
func (b *builder) expose(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: EXPOSE takes at least one port specification", ErrInvalidArguments)
	}
	return b.configure(ctx, prefixed("--config.exposedports=", args)...)
}

// Declares volume mount points. Previously declared volumes cannot be
// removed.
func (b *builder) volume(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: VOLUME takes at least one mount point", ErrInvalidArguments)
	}
	return b.configure(ctx, prefixed("--config.volume=", args)...)
}

// Sets the user (user[:group]) the image runs as.
func (b *builder) user(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: USER takes exactly one user[:group] spec, got %d arguments",
			ErrInvalidArguments, len(args))
	}
	return b.configure(ctx, "--config.user="+args[0])
}

// Sets the working directory the image starts in.
func (b *builder) workdir(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: WORKDIR takes exactly one path, got %d arguments",
			ErrInvalidArguments, len(args))
	}
	return b.configure(ctx, "--config.workdir="+args[0])
}
