// Confines script-supplied paths to the build context.
//
// Clean normalizes a path lexically without touching the filesystem, and
// Resolve anchors a cleaned path under a context root, rejecting results
// that would land outside it. The package also provides the default
// location for build workspaces, following XDG conventions.
package paths
