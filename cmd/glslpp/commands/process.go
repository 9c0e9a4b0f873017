package commands

import (
	"github.com/spf13/cobra"

	"glslpp/internal/app"
	"glslpp/internal/core/domain"
)

func (c *CLI) newProcessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process [shaders...]",
		Short: "Flatten configured shaders into the output directory",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := processOptions(cmd, args)
			if err != nil {
				return err
			}
			return c.app.Process(cmd.Context(), opts)
		},
	}
	addProcessFlags(cmd)
	return cmd
}

// addProcessFlags registers the flags shared by process and watch.
func addProcessFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", domain.ManifestFileName, "Path to the manifest file")
	cmd.Flags().StringP("out", "o", "", "Override the manifest's output directory")
	cmd.Flags().String("cache", "smart", "Source cache strategy: none, forever or smart")
	cmd.Flags().BoolP("force", "f", false, "Rewrite outputs even when their content is unchanged")
}

// processOptions builds app.ProcessOptions from the command's flags and the
// positional shader names.
func processOptions(cmd *cobra.Command, shaders []string) (app.ProcessOptions, error) {
	configPath, _ := cmd.Flags().GetString("config")
	outDir, _ := cmd.Flags().GetString("out")
	cache, _ := cmd.Flags().GetString("cache")
	force, _ := cmd.Flags().GetBool("force")

	mode, err := domain.ParseCacheMode(cache)
	if err != nil {
		return app.ProcessOptions{}, err
	}

	return app.ProcessOptions{
		ConfigPath: configPath,
		OutDir:     outDir,
		CacheMode:  mode,
		Force:      force,
		Shaders:    shaders,
	}, nil
}
