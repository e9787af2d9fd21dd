package main

import (
	"os"

	"github.com/ytget/yt-batch/internal/cli"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	cli.Version = version
	os.Exit(cli.Execute())
}
