package app

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyPublished is returned when startup args are published twice.
	ErrAlreadyPublished = errors.New("startup args already published")
	// ErrNotPublished is returned when Run is called before Publish.
	ErrNotPublished = errors.New("startup args not published")
)

// StartupFault wraps a failure to publish startup args or to start the
// runtime. It is always fatal.
type StartupFault struct {
	Stage string // "publish" or "run"
	Err   error
}

func (e *StartupFault) Error() string {
	return fmt.Sprintf("startup %s: %v", e.Stage, e.Err)
}

func (e *StartupFault) Unwrap() error {
	return e.Err
}
