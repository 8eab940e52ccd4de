package image

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

var (
	ErrLayout      = errors.New("unreadable image layout")
	ErrTagNotFound = errors.New("tag not found in image layout")
)

// Index filename inside an OCI image layout.
const indexFile = "index.json"

// Resolves a tag to its manifest descriptor in an on-disk OCI layout.
//
// The layout's index is scanned for a manifest whose ref-name annotation
// equals the tag. Fails with [ErrTagNotFound] when no manifest carries
// the tag, or [ErrLayout] when the index cannot be read.
func FindDescriptor(layout, tag string) (ocispec.Descriptor, error) {
	data, err := os.ReadFile(filepath.Join(layout, indexFile))
	if err != nil {
		return ocispec.Descriptor{}, fmt.Errorf("%w: %w", ErrLayout, err)
	}

	var index ocispec.Index
	if err := json.Unmarshal(data, &index); err != nil {
		return ocispec.Descriptor{}, fmt.Errorf("%w: %w", ErrLayout, err)
	}

	for _, desc := range index.Manifests {
		if desc.Annotations[ocispec.AnnotationRefName] == tag {
			return desc, nil
		}
	}

	return ocispec.Descriptor{}, fmt.Errorf("%w: %s", ErrTagNotFound, tag)
}
