package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akita-international-university/ir-color-guide/internal/infra/gitvcs"
	"github.com/akita-international-university/ir-color-guide/internal/infra/logger"
	"github.com/akita-international-university/ir-color-guide/internal/infra/versionfile"
	"github.com/akita-international-university/ir-color-guide/internal/usecase"
)

func bumpCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "bump major|minor|patch",
		Short:     "Bump the project version, commit it and tag the commit",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"major", "minor", "patch"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(opts.workspace)
			if err != nil {
				return err
			}

			uc := usecase.NewBumpVersion(
				gitvcs.New(ws.root, ws.runner),
				versionfile.New(ws.root, ws.cfg.Release),
				ws.cfg.Release,
				usecase.WithBumpLogger(logger.ForComponent("bump")),
			)
			res, err := uc.Execute(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), usecase.CompletionMessage(res.Version))
			return nil
		},
	}
}
