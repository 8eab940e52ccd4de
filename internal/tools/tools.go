package tools

import "context"

// Default binary names, resolved through PATH.
const (
	DefaultSkopeo = "skopeo"
	DefaultUmoci  = "umoci"
)

// Materializes a named image reference into the local on-disk layout.
type Transport interface {

	// Copies the image at source into the layout reference dest
	// (e.g. "oci:/path/to/layout:tag").
	Copy(ctx context.Context, source, dest string) error
}

// Creates empty image layouts and applies configuration mutations.
type Layout interface {

	// Creates an empty OCI layout at the given path.
	Init(ctx context.Context, layout string) error

	// Creates an empty image under tag inside an existing layout.
	New(ctx context.Context, layout, tag string) error

	// Applies configuration flags to layout:srcTag, producing destTag.
	Config(ctx context.Context, layout, srcTag, destTag string, flags ...string) error
}

// Transport backed by the skopeo binary.
type Skopeo struct {
	binary string
}

// Returns a [Skopeo] invoking the given binary, or [DefaultSkopeo] when
// empty.
func NewSkopeo(binary string) *Skopeo {
	if binary == "" {
		binary = DefaultSkopeo
	}
	return &Skopeo{binary: binary}
}

func (s *Skopeo) Copy(ctx context.Context, source, dest string) error {
	return run(ctx, s.binary, "copy", source, dest)
}

// Layout tool backed by the umoci binary.
type Umoci struct {
	binary string
}

// Returns a [Umoci] invoking the given binary, or [DefaultUmoci] when
// empty.
func NewUmoci(binary string) *Umoci {
	if binary == "" {
		binary = DefaultUmoci
	}
	return &Umoci{binary: binary}
}

func (u *Umoci) Init(ctx context.Context, layout string) error {
	return run(ctx, u.binary, "init", "--layout="+layout)
}

func (u *Umoci) New(ctx context.Context, layout, tag string) error {
	return run(ctx, u.binary, "new", "--image="+layout+":"+tag)
}

func (u *Umoci) Config(ctx context.Context, layout, srcTag, destTag string, flags ...string) error {
	args := []string{"config", "--image=" + layout + ":" + srcTag, "--tag=" + destTag}
	args = append(args, flags...)
	return run(ctx, u.binary, args...)
}
