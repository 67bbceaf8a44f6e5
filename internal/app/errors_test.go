package app

import (
	"errors"
	"testing"
)

func TestStartupFault_Unwraps(t *testing.T) {
	err := error(&StartupFault{Stage: "publish", Err: ErrAlreadyPublished})

	if !errors.Is(err, ErrAlreadyPublished) {
		t.Fatalf("errors.Is(%v, ErrAlreadyPublished) = false", err)
	}
	var fault *StartupFault
	if !errors.As(err, &fault) || fault.Stage != "publish" {
		t.Fatalf("errors.As did not recover StartupFault: %v", err)
	}
	if got, want := err.Error(), "startup publish: startup args already published"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}
