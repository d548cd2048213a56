package cmd

import (
	"fmt"
	"strings"

	"github.com/samosastudio/samosa/internal/scene"
	"github.com/spf13/cobra"
)

func newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the accepted values for each scene setting",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := scene.Options()
			d := scene.DefaultSettings()
			defaults := map[string]string{
				"lighting":   string(d.Lighting),
				"background": string(d.Background),
				"sauce":      string(d.Sauce),
				"plate":      string(d.Plate),
				"angle":      string(d.Angle),
			}

			for _, name := range []string{"lighting", "background", "sauce", "plate", "angle"} {
				fmt.Fprintf(cmd.OutOrStdout(), "%-11s %s (default %s)\n", name, strings.Join(opts[name], ", "), defaults[name])
			}
			return nil
		},
	}
}
