// Package build orchestrates script execution against external image tools.
//
// A build walks an ordered instruction sequence, dispatching each
// instruction to a handler from a closed table. The first FROM allocates
// the on-disk workspace and materializes the base image; every mutating
// instruction afterwards invokes the layout tool to produce the run's
// destination tag from the current source tag, then rotates the source
// onto it. The chain of image states is strictly linear: one workspace,
// one source tag at a time, never a branch.
//
// Dispatch is sequential and synchronous. Each handler blocks until its
// external tool invocation exits, and the first failing step aborts the
// run with no rollback.
//
// Example usage:
//
//	result, err := build.Run(ctx, build.Toolchain{
//	    Transport: tools.NewSkopeo(""),
//	    Layout:    tools.NewUmoci(""),
//	}, build.Options{
//	    Root: "./app",
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Workspace, result.Tag)
package build
