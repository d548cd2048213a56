package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/samosastudio/samosa/internal/models"
	"github.com/samosastudio/samosa/internal/scene"
	"github.com/samosastudio/samosa/internal/session"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var (
		server     string
		lighting   string
		background string
		sauce      string
		plate      string
		angle      string
		download   string
		timeout    time.Duration
	)

	defaults := scene.DefaultSettings()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a samosa scene through a running gateway",
		Long: `Submits scene settings to a running gateway, reports estimated progress
while the image renders and prints the resulting image URL.

Use "samosa options" to list the accepted values for each setting.`,
		Example: `  # Generate the default scene
  samosa generate

  # Dramatic close-up with tamarind on a brass plate, saved locally
  samosa generate --lighting dramatic --sauce tamarind --plate traditional --angle close-up --download ./images`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var settings scene.Settings
			for _, field := range []struct {
				value string
				dst   interface{ UnmarshalText([]byte) error }
			}{
				{lighting, &settings.Lighting},
				{background, &settings.Background},
				{sauce, &settings.Sauce},
				{plate, &settings.Plate},
				{angle, &settings.Angle},
			} {
				if err := field.dst.UnmarshalText([]byte(field.value)); err != nil {
					return err
				}
			}

			client := session.NewHTTPClient(server, &http.Client{Timeout: timeout})
			controller := session.NewController(client, session.WithObserver(func(s models.GenerationState) {
				if s.IsGenerating {
					slog.Info("Generating", "progress", fmt.Sprintf("%.0f%%", s.Progress))
				}
			}))

			image, err := controller.Generate(cmd.Context(), settings)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), image.URL)
			slog.Debug("Prompt used", "prompt", image.Prompt)

			if download != "" {
				name := fmt.Sprintf("3d-samosa-%d.jpg", image.Timestamp.UnixMilli())
				path, err := client.Download(cmd.Context(), image.URL, download, name)
				if err != nil {
					return err
				}
				slog.Info("Image downloaded", "path", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&server, "server", "http://localhost:8888", "Gateway base URL")
	cmd.Flags().StringVar(&lighting, "lighting", string(defaults.Lighting), "Lighting (warm, cool, dramatic, natural)")
	cmd.Flags().StringVar(&background, "background", string(defaults.Background), "Background (kitchen, wooden-table, marble, rustic)")
	cmd.Flags().StringVar(&sauce, "sauce", string(defaults.Sauce), "Sauce (tomato, mint-chutney, tamarind, spicy-red)")
	cmd.Flags().StringVar(&plate, "plate", string(defaults.Plate), "Plate (wooden-rustic, ceramic-handmade, modern-white, traditional)")
	cmd.Flags().StringVar(&angle, "angle", string(defaults.Angle), "Camera angle (top-down, side-view, three-quarter, close-up)")
	cmd.Flags().StringVar(&download, "download", "", "Directory to save the generated image in")
	cmd.Flags().DurationVar(&timeout, "timeout", 3*time.Minute, "How long to wait for the gateway")

	return cmd
}
