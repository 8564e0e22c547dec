// Package cmd - report command
package cmd

import (
	"github.com/spf13/cobra"

	"siteflow-quote/core/report"
)

// reportCmd prints the full demonstration report
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the price calculation example report",
	Long: `Run every quote query with the illustrative inputs of the pricing
documentation and print the results: project cost per ownership model,
hosting and support tiers, a packaged service and a complete project.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	calc, err := newCalculator()
	if err != nil {
		return err
	}
	return report.Generate(newWriter(cmd), calc, report.Default())
}
