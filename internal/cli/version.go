package cli

import (
	"context"
	"fmt"

	"github.com/gantry-build/gantry/internal"
)

// Represents the 'gantry version' command.
type VersionCmd struct{}

// Executes the version command.
func (c *VersionCmd) Run(ctx context.Context) error {
	fmt.Println(internal.VersionString())
	return nil
}
