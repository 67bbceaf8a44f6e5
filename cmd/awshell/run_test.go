package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/five82/awshell/internal/app"
	"github.com/five82/awshell/internal/cli"
)

func parsedArgs() cli.Args {
	return cli.Args{Testing: true}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingRuntime is a stand-in that records the order of calls made on it.
type recordingRuntime struct {
	events     []string
	published  []app.CLIArgs
	publishErr error
	runErr     error
}

func (r *recordingRuntime) Publish(args app.CLIArgs) error {
	r.events = append(r.events, "publish")
	r.published = append(r.published, args)
	return r.publishErr
}

func (r *recordingRuntime) Run(context.Context) error {
	r.events = append(r.events, "run")
	if len(r.published) == 0 {
		return errors.New("run before publish")
	}
	return r.runErr
}

type harness struct {
	rt          *recordingRuntime
	constructed int
	stdout      bytes.Buffer
	stderr      bytes.Buffer
}

func (h *harness) run(argv ...string) int {
	if h.rt == nil {
		h.rt = &recordingRuntime{}
	}
	return run(context.Background(), append([]string{"awshell"}, argv...), &h.stdout, &h.stderr, func() Runtime {
		h.constructed++
		return h.rt
	})
}

func TestRun_PublishesOnceBeforeRun(t *testing.T) {
	var h harness
	if code := h.run("--testing", "-v", "--port", "5667"); code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr=%q)", code, h.stderr.String())
	}

	if got := strings.Join(h.rt.events, ","); got != "publish,run" {
		t.Fatalf("events = %s, want publish,run", got)
	}
	want := app.CLIArgs{Testing: true, Verbose: true, Port: 5667, HasPort: true}
	if len(h.rt.published) != 1 || h.rt.published[0] != want {
		t.Fatalf("published = %+v, want exactly [%+v]", h.rt.published, want)
	}
	if h.constructed != 1 {
		t.Fatalf("runtime constructed %d times, want 1", h.constructed)
	}
}

func TestRun_DefaultsLeavePortUnset(t *testing.T) {
	var h harness
	if code := h.run(); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if got := h.rt.published[0]; got != (app.CLIArgs{}) {
		t.Fatalf("published = %+v, want zero value", got)
	}
}

func TestRun_HelpAndVersionSkipRuntime(t *testing.T) {
	for _, arg := range []string{"-h", "--help", "-V", "--version"} {
		t.Run(arg, func(t *testing.T) {
			var h harness
			if code := h.run(arg); code != 0 {
				t.Fatalf("exit code = %d, want 0", code)
			}
			if h.constructed != 0 || len(h.rt.events) != 0 {
				t.Fatalf("runtime touched on %s: constructed=%d events=%v", arg, h.constructed, h.rt.events)
			}
			if h.stdout.Len() == 0 {
				t.Fatalf("%s wrote nothing to stdout", arg)
			}
		})
	}
}

func TestRun_UsageErrorsSkipRuntime(t *testing.T) {
	for _, argv := range [][]string{{"--port", "70000"}, {"--port", "abc"}, {"--bogus"}} {
		t.Run(strings.Join(argv, " "), func(t *testing.T) {
			var h harness
			if code := h.run(argv...); code == 0 {
				t.Fatalf("exit code = 0, want non-zero")
			}
			if h.constructed != 0 {
				t.Fatalf("runtime constructed on usage error")
			}
			if h.stderr.Len() == 0 {
				t.Fatalf("no diagnostic written to stderr")
			}
		})
	}
}

func TestRun_PublishFailureIsFatal(t *testing.T) {
	h := harness{rt: &recordingRuntime{publishErr: app.ErrAlreadyPublished}}
	if code := h.run(); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if got := strings.Join(h.rt.events, ","); got != "publish" {
		t.Fatalf("events = %s, want publish only", got)
	}
	if !strings.Contains(h.stderr.String(), "startup publish") {
		t.Fatalf("stderr = %q, want startup publish fault", h.stderr.String())
	}
}

func TestRun_RuntimeFailureIsFatal(t *testing.T) {
	h := harness{rt: &recordingRuntime{runErr: errors.New("no display")}}
	if code := h.run(); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(h.stderr.String(), "no display") {
		t.Fatalf("stderr = %q, want runtime error", h.stderr.String())
	}
}

func TestDispatch_WrapsFaults(t *testing.T) {
	rt := &recordingRuntime{runErr: errors.New("boom")}
	err := dispatch(context.Background(), parsedArgs(), rt, discardLogger())

	var fault *app.StartupFault
	if !errors.As(err, &fault) || fault.Stage != "run" {
		t.Fatalf("dispatch error = %v, want run StartupFault", err)
	}
}

func TestDispatch_WithRealRuntimeRejectsSecondPublish(t *testing.T) {
	rt := app.New(app.Options{})
	if err := rt.Publish(app.CLIArgs{}); err != nil {
		t.Fatalf("Publish error = %v", err)
	}

	err := dispatch(context.Background(), parsedArgs(), rt, discardLogger())
	if !errors.Is(err, app.ErrAlreadyPublished) {
		t.Fatalf("dispatch error = %v, want ErrAlreadyPublished", err)
	}
}
