package build

import "errors"

var (
	ErrBuild                  = errors.New("build failed")
	ErrFileSystemOperation    = errors.New("file system operation failed")
	ErrInvalidArguments       = errors.New("invalid instruction arguments")
	ErrUnsupportedInstruction = errors.New("unsupported instruction")
)
