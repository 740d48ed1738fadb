package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akita-international-university/ir-color-guide/internal/infra/colorcheck"
	"github.com/akita-international-university/ir-color-guide/internal/infra/yamlpalette"
	"github.com/akita-international-university/ir-color-guide/internal/usecase"
)

func validateCmd(opts *rootOptions) *cobra.Command {
	var source string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Check palettes.yml without writing any file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(opts.workspace)
			if err != nil {
				return err
			}

			path := ws.artifactPaths().Source
			if source != "" {
				path = ws.path(source)
			}

			uc := usecase.NewValidatePalettes(yamlpalette.NewLoader(), colorcheck.New())
			issues, err := uc.Execute(path)
			newTermReporter(cmd.OutOrStdout(), cmd.ErrOrStderr()).issues(issues)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}

	c.Flags().StringVarP(&source, "source", "s", "", "Palette file to check (defaults to paths.source)")
	return c
}
