// Package cmd provides the CLI commands for siteflow-quote.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"siteflow-quote/core/catalog"
	"siteflow-quote/core/quote"
	"siteflow-quote/core/ui"
	"siteflow-quote/internal/config"
	"siteflow-quote/internal/logging"
)

const version = "0.1.0"

var (
	cfgFile         string
	catalogPath     string
	locale          string
	verbose         bool
	noColor         bool
	strictOwnership bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "siteflow-quote",
	Short: "Compute Siteflow quotes from the price list",
	Long: `siteflow-quote prices projects, hosting, support and packaged
services from the Siteflow price list (JSON, YAML or HCL).

Examples:
  siteflow-quote report
  siteflow-quote project Elixir-utvecklare 300 --ownership shared
  siteflow-quote hosting Growth --format json
  siteflow-quote --catalog prislista.hcl support "Standard Support"`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (JSON)")
	flags.StringVar(&catalogPath, "catalog", config.DefaultCatalogPath, "price list file (.json, .yaml, .yml, .hcl)")
	flags.StringVar(&locale, "locale", "sv", "locale used to format amounts")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&strictOwnership, "strict-ownership", false, "reject ownership models missing from the price list")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(hostingCmd)
	rootCmd.AddCommand(supportCmd)
	rootCmd.AddCommand(serviceCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig loads the config file, then lets explicit flags override it
func initConfig() {
	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	flags := rootCmd.PersistentFlags()
	if flags.Changed("catalog") || cfg.Catalog.Path == "" {
		cfg.Catalog.Path = catalogPath
	}
	if flags.Changed("locale") {
		cfg.Output.Locale = locale
	}
	if noColor {
		cfg.Output.NoColor = true
	}
	if strictOwnership {
		cfg.Quote.StrictOwnership = true
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// newCalculator loads the configured catalog. A catalog failure ends the run.
func newCalculator() (*quote.Calculator, error) {
	cfg := config.Get()
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	return quote.NewCalculator(cat, quote.WithStrictOwnership(cfg.Quote.StrictOwnership)), nil
}

// newWriter creates a UI writer on the command's output
func newWriter(cmd *cobra.Command) *ui.Writer {
	cfg := config.Get()
	return ui.NewWriter(cmd.OutOrStdout(), cfg.Output.NoColor, cfg.Output.Locale)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "siteflow-quote version %s\n", version)
	},
}
