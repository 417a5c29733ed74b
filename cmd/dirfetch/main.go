// Command dirfetch prints directory statistics beside ASCII art.
package main

import (
	"context"
	"os"

	"github.com/idelchi/dirfetch/internal/cli"
)

func main() {
	if err := cli.New(version).Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
