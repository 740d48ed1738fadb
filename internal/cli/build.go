package cli

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/akita-international-university/ir-color-guide/internal/infra/logger"
	"github.com/akita-international-university/ir-color-guide/internal/infra/prettier"
	"github.com/akita-international-university/ir-color-guide/internal/infra/rscript"
	"github.com/akita-international-university/ir-color-guide/internal/infra/tableau"
	"github.com/akita-international-university/ir-color-guide/internal/infra/watcher"
	"github.com/akita-international-university/ir-color-guide/internal/infra/yamlpalette"
	"github.com/akita-international-university/ir-color-guide/internal/ports"
	"github.com/akita-international-university/ir-color-guide/internal/usecase"
)

func buildCmd(opts *rootOptions) *cobra.Command {
	var watch bool
	var skipFormat bool
	var timeout time.Duration

	c := &cobra.Command{
		Use:   "build",
		Short: "Generate the Tableau preferences file and the R script from palettes.yml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(opts.workspace)
			if err != nil {
				return err
			}

			var formatter ports.Formatter = usecase.SkipFormat{}
			if !skipFormat {
				formatter = prettier.New(ws.runner,
					prettier.WithCommand(ws.cfg.Tools.Prettier),
					prettier.WithLogger(logger.ForComponent("prettier")),
				)
			}

			rep := newTermReporter(cmd.OutOrStdout(), cmd.ErrOrStderr())
			uc := usecase.NewGenerateArtifacts(
				yamlpalette.NewLoader(),
				tableau.NewWriter(),
				rscript.NewWriter(),
				formatter,
				usecase.WithReporter(rep),
				usecase.WithGenerateLogger(logger.ForComponent("generate")),
			)
			paths := ws.artifactPaths()

			runOnce := func(parent context.Context) error {
				ctx := parent
				if timeout > 0 {
					var cancel context.CancelFunc
					ctx, cancel = context.WithTimeout(parent, timeout)
					defer cancel()
				}
				res, err := uc.Execute(ctx, paths)
				if err == nil {
					rep.summary(res)
				}
				return err
			}

			if !watch {
				return runOnce(cmd.Context())
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			if err := runOnce(ctx); err != nil {
				rep.Fail(err.Error())
			}
			rep.Step("Watching " + paths.Source + " for changes (Ctrl+C to stop)...")

			w := watcher.New([]string{paths.Source}, watcher.WithLogger(logger.ForComponent("watcher")))
			return w.Run(ctx, func(changed []string) {
				rep.Step("Changed: " + strings.Join(changed, ", "))
				if err := runOnce(ctx); err != nil {
					rep.Fail(err.Error())
				}
			})
		},
	}

	c.Flags().BoolVar(&watch, "watch", false, "Rebuild whenever the palette source changes")
	c.Flags().BoolVar(&skipFormat, "skip-format", false, "Do not run Prettier on the preferences file")
	c.Flags().DurationVar(&timeout, "timeout", 0, "Abort a build that takes longer than this (0 disables)")
	return c
}
