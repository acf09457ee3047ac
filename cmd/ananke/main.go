// Command ananke is a thin CLI over the clew Facade: it extracts
// Constraints from a single file or a directory tree and prints the
// resulting ConstraintSet as JSON.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	if os.Getenv("ANANKE_VERBOSE") != "" {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	root := &cobra.Command{
		Use:           "ananke",
		Short:         "Extract constraints from source code, tests, and telemetry.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newExtractCmd(logger))
	root.AddCommand(newScanCmd(logger))

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ananke: %v\n", err)
		os.Exit(1)
	}
}
