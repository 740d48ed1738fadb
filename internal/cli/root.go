package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/akita-international-university/ir-color-guide/internal/infra/logger"
	"github.com/akita-international-university/ir-color-guide/internal/infra/workspacefinder"
)

type rootOptions struct {
	debug     bool
	workspace string

	closeLog func() error
}

func Execute() {
	opts := &rootOptions{}
	cmd := newRoot(opts)
	err := cmd.Execute()
	if opts.closeLog != nil {
		_ = opts.closeLog()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	return newRoot(&rootOptions{})
}

func newRoot(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "irpal",
		Short:         "Generate Tableau and R color palette files from palettes.yml",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			opts.closeLog = setupLogging(opts)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .irpal/logs/irpal.log")
	cmd.PersistentFlags().StringVarP(&opts.workspace, "workspace", "w", "", "Repository root (optional; autodetected if omitted)")

	cmd.AddCommand(
		buildCmd(opts),
		validateCmd(opts),
		formatCmd(opts),
		lintCmd(opts),
		testCmd(opts),
		bumpCmd(opts),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

// setupLogging opens the log file under the repository root when one can be
// found. Logging is best effort and never fails a command.
func setupLogging(opts *rootOptions) func() error {
	logRoot := opts.workspace
	if logRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil
		}
		root, err := workspacefinder.NewFinder().FindRoot(wd)
		if err != nil {
			return nil
		}
		logRoot = root
	}
	logRoot, _ = filepath.Abs(logRoot)

	cleanup, err := logger.Setup(logger.Config{Root: logRoot, Debug: opts.debug})
	if err != nil {
		return nil
	}
	return cleanup
}
