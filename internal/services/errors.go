package services

import (
	"errors"
	"fmt"
)

// ErrIO is the single failure kind of the file store. Missing files,
// permission problems, decoding failures and write failures all match it.
var ErrIO = errors.New("file i/o failed")

// IOError records which operation failed on which path.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// errNotUTF8 is the cause reported when file bytes are not valid text.
var errNotUTF8 = errors.New("content is not valid UTF-8 text")
