package image

import "github.com/opencontainers/go-digest"

const (

	// Transport scheme understood by the transport tool.
	transportScheme = "docker://"

	// Suffix for tags derived from a base-image source.
	sourceSuffix = "-src"

	// Suffix for tags derived from a script body.
	destinationSuffix = "-dest"
)

// Returns the transport-qualified form of a base-image reference, as
// passed to the transport tool.
func TransportSource(ref string) string {
	return transportScheme + ref
}

// Derives the tag naming the imported base-image state for a reference.
//
// The tag is the hex digest of the transport-qualified reference plus the
// "-src" suffix, so equal references always name the same state.
func SourceTag(ref string) string {
	return digest.FromString(TransportSource(ref)).Encoded() + sourceSuffix
}

// Derives the tag every mutation of a build run writes to.
//
// The tag is the hex digest of the raw script text plus the "-dest"
// suffix. It is stable for the whole run: each mutation produces it from
// the current source tag, then the source rotates onto it.
func DestinationTag(script string) string {
	return digest.FromString(script).Encoded() + destinationSuffix
}
