package cmd

import (
	"fmt"

	"github.com/samosastudio/samosa/internal/export"
	"github.com/samosastudio/samosa/internal/scene"
	"github.com/spf13/cobra"
)

func newPromptsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "prompts",
		Short: "Compose the prompt for every settings combination",
		Long: `Composes the generation prompt for every combination of scene settings.

Without --output the prompts are printed as YAML. With --output they are
written to a file whose extension selects the format.`,
		Example: `  # Print every prompt as YAML
  samosa prompts

  # Export a parquet catalog
  samosa prompts --output catalog.parquet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := export.Build(scene.All())
			if err != nil {
				return err
			}

			if output == "" {
				return export.WriteYAML(cmd.OutOrStdout(), entries)
			}
			if err := export.WriteFile(output, entries); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d prompts to %s\n", len(entries), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (.yaml, .parquet or .jsonl)")

	return cmd
}
