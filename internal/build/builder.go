package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gantry-build/gantry/internal/image"
	"github.com/gantry-build/gantry/internal/paths"
	"github.com/gantry-build/gantry/internal/script"
)

// Holds the single mutable build state for one run.
//
// The state is owned exclusively by the dispatch loop: the workspace is
// created once by the first FROM, the destination tag is fixed for the
// whole run, and the source tag rotates onto the destination after every
// mutation so each one applies to the most recently produced state.
type builder struct {
	tc        Toolchain
	base      string   // Parent directory for the lazily created workspace.
	workspace string   // OCI layout directory. Empty until the first FROM.
	sourceTag string   // Tag the next mutation reads from.
	destTag   string   // Tag every mutation writes to. Stable for the run.
	tags      []string // Tags created by this run, append-only.
}

// Creates a [builder] with the run's destination tag derived from the
// raw script text, before any instruction executes.
func newBuilder(tc Toolchain, opts Options, raw string) *builder {
	return &builder{
		tc:      tc,
		base:    opts.Workspace,
		destTag: image.DestinationTag(raw),
	}
}

// Walks the instruction sequence in order.
//
// Each instruction is dispatched synchronously; a failing step aborts
// the remaining instructions. Already-produced tags and the partially
// built workspace are left as-is for the caller to discard.
func (b *builder) build(ctx context.Context, instructions []script.Instruction) (*Result, error) {
	for i, in := range instructions {
		slog.Info("build step", "step", i+1, "instruction", strings.ToUpper(in.Name), "args", in.Args)

		if err := b.dispatch(ctx, in); err != nil {
			return nil, fmt.Errorf("%w: step %d (%s): %w", ErrBuild, i+1, strings.ToUpper(in.Name), err)
		}
	}

	slog.Info("build finished", "workspace", b.workspace, "tag", b.destTag)

	return &Result{Workspace: b.workspace, Tag: b.destTag}, nil
}

// Selects the handler for an instruction from the closed dispatch table.
//
// Unknown instructions are fatal, not skipped: silently ignoring one
// would produce an image that diverges from the script's intent.
func (b *builder) dispatch(ctx context.Context, in script.Instruction) error {
	switch strings.ToLower(in.Name) {
	case "from":
		return b.from(ctx, in.Args)
	case "cmd":
		return b.command(ctx, in.Args)
	case "label":
		return b.label(ctx, in.Args)
	case "maintainer":
		return b.maintainer(ctx, in.Args)
	case "expose":
		return b.expose(ctx, in.Args)
	case "entrypoint":
		return b.entrypoint(ctx, in.Args)
	case "volume":
		return b.volume(ctx, in.Args)
	case "user":
		return b.user(ctx, in.Args)
	case "workdir":
		return b.workdir(ctx, in.Args)
	case "run", "copy", "add", "env", "arg", "stopsignal":
		// Realizing these needs the execution collaborator, which is not
		// wired up yet. The build continues without mutating the image.
		slog.Warn("instruction not implemented, no mutation performed", "instruction", strings.ToUpper(in.Name))
		return nil
	case "onbuild", "shell", "healthcheck":
		slog.Warn("instruction cannot be expressed in an OCI image, skipping", "instruction", strings.ToUpper(in.Name))
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedInstruction, in.Name)
	}
}

// Allocates the workspace directory under the configured parent, once.
func (b *builder) allocateWorkspace() error {
	base := b.base
	if base == "" {
		base = paths.WorkspaceBase()
	}

	if err := os.MkdirAll(base, paths.DefaultDirMode); err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	ws, err := os.MkdirTemp(base, "build-")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	b.workspace = ws
	b.tags = append(b.tags, b.destTag)

	slog.Info("created build workspace", "path", ws)
	return nil
}

// Applies configuration flags to the current image state and rotates the
// source tag onto the freshly produced destination.
func (b *builder) configure(ctx context.Context, flags ...string) error {
	if err := b.tc.Layout.Config(ctx, b.workspace, b.sourceTag, b.destTag, flags...); err != nil {
		return err
	}

	b.sourceTag = b.destTag
	return nil
}

// Prefixes every argument with the given flag prefix.
func prefixed(prefix string, args []string) []string {
	flags := make([]string, len(args))
	for i, arg := range args {
		flags[i] = prefix + arg
	}
	return flags
}
