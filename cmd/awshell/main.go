package main

import (
	"context"
	"os"

	"github.com/five82/awshell/internal/app"
	"github.com/five82/awshell/internal/cli"
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr, func() Runtime {
		return app.New(app.Options{Version: cli.Version})
	}))
}
