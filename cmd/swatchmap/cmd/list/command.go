// Package list implements the list command.
package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/swatchmap/cmd/application"
	"github.com/agentstation/swatchmap/internal/cmd/filter"
	"github.com/agentstation/swatchmap/internal/cmd/output"
	"github.com/agentstation/swatchmap/pkg/constants"
	"github.com/agentstation/swatchmap/pkg/nearest"
)

// NewCommand creates the list command.
func NewCommand(app application.Application) *cobra.Command {
	var (
		library string
		search  string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		GroupID: "core",
		Short:   "Print the swatches in a dataset",
		Example: `  swatchmap list
  swatchmap list --filter "cool gray" -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("library") && app.Settings().LibraryPath != "" {
				library = app.Settings().LibraryPath
			}

			list, err := nearest.LoadLibrary(library)
			if err != nil {
				return err
			}
			list = (&filter.SwatchFilter{Search: search}).Apply(list)

			format := output.DetectFormat(app.OutputFormat())
			return output.FormatSwatches(cmd.OutOrStdout(), list, format)
		},
	}

	cmd.Flags().StringVar(&library, "library", constants.DefaultDatasetPath, "dataset to print")
	cmd.Flags().StringVar(&search, "filter", "", "case-insensitive substring of hex, pantone, or name")

	return cmd
}
