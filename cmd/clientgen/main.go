// clientgen generates the TypeScript artifacts of client fields.
// Run: go run ./cmd/clientgen compile --config clientgen.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	jsonLogs  bool
	verbosity int
)

var rootCmd = &cobra.Command{
	Use:   "clientgen",
	Short: "Generate reader, parameter and output type artifacts for client fields",
	Long: `clientgen compiles client fields declared against a GraphQL schema into
TypeScript artifacts.

For every client field it writes three modules under the artifact directory:
  Type/field/reader.ts       reader artifact record
  Type/field/param_type.ts   type of the data the field reads
  Type/field/output_type.ts  type of the field's result

Examples:
  clientgen compile                       # Use ./clientgen.yaml
  clientgen compile --config web/cg.yaml  # Explicit config file
  clientgen compile --watch               # Recompile on changes`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json", false, "Log JSON instead of human-readable output")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity")
	rootCmd.AddCommand(compileCmd)
}

// newLogger builds the CLI logger.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	if jsonLogs {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	level := zapcore.InfoLevel
	if verbosity > 0 {
		level = zapcore.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
