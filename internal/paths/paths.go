package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Raised by [Resolve] when a candidate path would land outside the root.
var ErrEscapesRoot = errors.New("path escapes build context")

const (

	// Name used for directory and file naming.
	toolName = "gantry"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644

	// Path separator. Cleaning is defined over slash-separated paths.
	sep = "/"
)

// Returns the shortest lexically equivalent form of path.
//
// The normalization is purely lexical: repeated separators collapse,
// "." elements drop, ".." elements fold away the element before them,
// and a rooted path cannot ascend past the root. Leading ".." elements
// of a relative path are preserved. The pass repeats until the result
// stops changing, so Clean is idempotent, and it is total over all
// strings: an empty result becomes ".".
//
// The result never has a trailing separator except for the root "/"
// itself. Because no filesystem access happens, the result may disagree
// with what symlink traversal would produce.
func Clean(orig string) string {
	rooted := strings.HasPrefix(orig, sep)

	// The pass always runs at least once so degenerate inputs (such as
	// the empty string) still reach the "." fallback.
	path := orig
	for {
		var kept []string
		for _, part := range strings.Split(path, sep) {
			switch {
			case part == "" || part == ".":
				// Collapses repeated separators and current-directory markers.
			case part == ".." && len(kept) > 0 && kept[len(kept)-1] != "..":
				kept = kept[:len(kept)-1]
			default:
				kept = append(kept, part)
			}
		}

		// A rooted path cannot ascend past the root.
		if rooted {
			for len(kept) > 0 && kept[0] == ".." {
				kept = kept[1:]
			}
		}

		next := "."
		if len(kept) > 0 {
			next = strings.Join(kept, sep)
		}
		if next == path {
			break
		}
		path = next
	}

	if rooted {
		path = sep + path
		if path == sep+"." {
			path = sep
		}
	}

	return path
}

// Anchors a script-supplied candidate path under the context root.
//
// The candidate is cleaned on its own, joined to the root, and the join
// is cleaned again. An absolute candidate is re-rooted under the context
// rather than replacing it. If the final path is not the root or one of
// its descendants, Resolve fails with [ErrEscapesRoot]; this happens when
// a relative candidate retains enough leading ".." elements to climb out.
//
// Every filesystem access derived from a script-supplied path must go
// through Resolve.
func Resolve(root, candidate string) (string, error) {
	cleanRoot := Clean(root)
	resolved := Clean(cleanRoot + sep + Clean(candidate))

	if !within(cleanRoot, resolved) {
		return "", fmt.Errorf("%w: %q resolves to %q", ErrEscapesRoot, candidate, resolved)
	}

	return resolved, nil
}

// Whether path is root itself or one of its descendants. Both arguments
// must already be cleaned.
func within(root, path string) bool {
	if path == root {
		return true
	}
	switch root {
	case sep:
		return strings.HasPrefix(path, sep)
	case ".":
		// Anything that does not climb out of the current directory.
		return path != ".." && !strings.HasPrefix(path, ".."+sep)
	}
	return strings.HasPrefix(path, root+sep)
}

// Default parent directory for lazily created build workspaces.
//
//	Linux:   $XDG_CACHE_HOME/gantry/builds or ~/.cache/gantry/builds
//	macOS:   ~/Library/Caches/gantry/builds
func WorkspaceBase() string {
	return filepath.Join(xdg.CacheHome, toolName, "builds")
}
