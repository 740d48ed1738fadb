package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/akita-international-university/ir-color-guide/internal/infra/globtargets"
	"github.com/akita-international-university/ir-color-guide/internal/infra/logger"
	"github.com/akita-international-university/ir-color-guide/internal/usecase"
)

func formatCmd(opts *rootOptions) *cobra.Command {
	return devTaskCmd(opts, "format", "Format the repository with Prettier, isort and black",
		(*usecase.DevTasks).Format)
}

func lintCmd(opts *rootOptions) *cobra.Command {
	return devTaskCmd(opts, "lint", "Format, then run mypy and pylint on the lint targets",
		(*usecase.DevTasks).Lint)
}

func testCmd(opts *rootOptions) *cobra.Command {
	return devTaskCmd(opts, "test", "Format and lint, then run pytest",
		(*usecase.DevTasks).Test)
}

func devTaskCmd(opts *rootOptions, use, short string, task func(*usecase.DevTasks, context.Context) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(opts.workspace)
			if err != nil {
				return err
			}
			tools, err := ws.devTools()
			if err != nil {
				return err
			}

			uc := usecase.NewDevTasks(ws.runner, globtargets.New(), ws.root, tools, ws.cfg.Lint.Targets,
				usecase.WithDevReporter(newTermReporter(cmd.OutOrStdout(), cmd.ErrOrStderr())),
				usecase.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()),
				usecase.WithDevLogger(logger.ForComponent("dev")),
			)
			return task(uc, cmd.Context())
		},
	}
}
