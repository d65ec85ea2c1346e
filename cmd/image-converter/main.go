// Package main is the entry point for the image-converter application.
// Without a subcommand it opens the desktop UI; convert runs the same
// conversion pipeline headlessly for a single file.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// Config keys shared by flags, the config file and IMAGE_CONVERTER_* variables
const (
	ConfigKeyFormat    = "format"
	ConfigKeyOutputDir = "output_dir"
	ConfigKeyTimeout   = "timeout"
	ConfigKeyReport    = "report"
	ConfigKeyOpen      = "open"
	ConfigKeyEmbed     = "embed"
)

// rootCmd is the base command for the image-converter CLI.
var rootCmd = &cobra.Command{
	Use:   "image-converter",
	Short: "Convert images between PNG, JPEG and WEBP",
	Long: `image-converter re-encodes an image into PNG, JPEG or WEBP at its
original size. Run without arguments to open the desktop application, or use
the convert subcommand to convert a file from the command line.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGUI()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./image-converter.yaml or ~/.config/image-converter/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("image-converter")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "image-converter"))
		}
	}

	viper.SetEnvPrefix("IMAGE_CONVERTER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
