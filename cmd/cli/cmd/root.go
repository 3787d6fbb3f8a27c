// Package cmd provides the CLI commands for kitchhub.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kitchhub/core/engine"
	"kitchhub/core/output"
	"kitchhub/internal/bootstrap"
	"kitchhub/internal/config"
	"kitchhub/internal/logging"
)

// Version is the CLI version
const Version = "0.1.0"

var (
	cfgFile      string
	verbose      bool
	outputFormat string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "kitchhub",
	Short: "Price shared-kitchen offers and check lead forms",
	Long: `kitchhub computes the displayed price of a KitchHub offer for a city and
billing period, and validates the contact form the way the booking page does.

Examples:
  kitchhub price --city paris --duration annual
  kitchhub quote --city lille --duration quarterly --format json
  kitchhub validate --field phone --value "06 01 02 03 04"
  kitchhub submit --lastname Dupont --firstname Léa --email lea@kitchhub.fr \
    --phone 0601020304 --city paris --offer starter --consent`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, JSON or YAML (default is $HOME/.kitchhub.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")

	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// loadCore builds the booking core from the active configuration
func loadCore() (*engine.Core, error) {
	core, err := bootstrap.Core(config.Get())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}
	return core, nil
}

// formatter returns the formatter selected by --format or the config default
func formatter() (output.Formatter, error) {
	name := outputFormat
	if name == "" {
		name = config.Get().Output.DefaultFormat
	}
	f, err := output.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return output.New(f), nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "kitchhub version %s\n", Version)
	},
}
