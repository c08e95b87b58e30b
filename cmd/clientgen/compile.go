package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/syssam/clientgen/compiler"
)

var (
	configPath string
	watch      bool
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Generate artifacts for every client field",
	Args:  cobra.NoArgs,
	RunE:  runCompile,
}

func init() {
	compileCmd.Flags().StringVarP(&configPath, "config", "c", compiler.DefaultConfigFile, "Path to the config file")
	compileCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Recompile when inputs change")
}

func runCompile(cmd *cobra.Command, _ []string) error {
	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := compiler.LoadConfig(configPath)
	if err != nil {
		return err
	}
	c, err := compiler.New(cfg, compiler.WithLogger(log))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if watch {
		return c.Watch(ctx)
	}
	res, err := c.Compile(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res)
	return nil
}
