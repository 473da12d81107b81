package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/roster/internal/cli"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/output/styles"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Default().Render("Error", "Error: "+errors.Describe(err)))
		os.Exit(1)
	}
}
