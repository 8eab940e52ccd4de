// Defines the external tools the build engine drives.
//
// Image mutation is delegated across a process boundary: a [Transport]
// materializes remote images into the local layout, and a [Layout] edits
// image configuration and creates empty layouts. The build orchestrator
// depends only on these interfaces, so tests can substitute recording
// fakes; [Skopeo] and [Umoci] are the exec-backed implementations.
//
// Every invocation blocks until the child process exits. A non-zero exit
// wraps [ErrExternalTool] together with the tool's captured stderr.
package tools
