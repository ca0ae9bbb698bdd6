package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/pasteimg/internal/buildinfo"
	"github.com/Iron-Ham/pasteimg/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "pasteimg",
	Short: "Save the clipboard image to your Downloads folder",
	Long: `pasteimg writes the image currently on the system clipboard to
$HOME/Downloads. The file is named after a short SHA-256 fingerprint of the
image, so capturing the same image twice produces the same file.

Images are saved as JPEG (quality 85) unless --lossless is given, in which
case they are saved as PNG.`,
	Args:          cobra.NoArgs,
	Version:       buildinfo.Version(),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runCapture,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().BoolVar(&lossless, "lossless", false, "save as PNG instead of JPEG")

	// Diagnostics only; not part of the documented interface
	rootCmd.Flags().String("log-level", "", "write JSON logs to stderr at this level (debug, info, warn, error)")
	_ = rootCmd.Flags().MarkHidden("log-level")
	_ = viper.BindPFlag("logging.level", rootCmd.Flags().Lookup("log-level"))
}

func initConfig() {
	// No config file or environment is read; HOME is consulted by the
	// capture pipeline alone.
	config.SetDefaults()
}
