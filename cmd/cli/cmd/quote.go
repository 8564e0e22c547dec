// Package cmd - single quote commands
package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"siteflow-quote/core/output"
	"siteflow-quote/core/quote"
	"siteflow-quote/core/report"
	"siteflow-quote/internal/config"
	"siteflow-quote/internal/errors"
)

var (
	outputFormat string
	ownership    string
)

var projectCmd = &cobra.Command{
	Use:   "project <role> <hours>",
	Short: "Price hours of work for a role",
	Long: `Price hours of work for a role under an ownership model.

The ownership model is license, shared or full, or a literal model name
from the price list. Unknown models are priced at multiplier 1 unless
--strict-ownership is set.

Examples:
  siteflow-quote project Elixir-utvecklare 300
  siteflow-quote project "Senior Elixir-arkitekt" 80 --ownership full`,
	Args: cobra.ExactArgs(2),
	RunE: runProject,
}

var hostingCmd = &cobra.Command{
	Use:   "hosting <package>",
	Short: "Show monthly and yearly cost of a hosting package",
	Args:  cobra.ExactArgs(1),
	RunE:  runHosting,
}

var supportCmd = &cobra.Command{
	Use:   "support <level>",
	Short: "Show monthly and yearly cost of a support level",
	Args:  cobra.ExactArgs(1),
	RunE:  runSupport,
}

var serviceCmd = &cobra.Command{
	Use:   "service <name>",
	Short: "Show a packaged service",
	Args:  cobra.ExactArgs(1),
	RunE:  runService,
}

func init() {
	for _, c := range []*cobra.Command{projectCmd, hostingCmd, supportCmd, serviceCmd} {
		c.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	}
	projectCmd.Flags().StringVarP(&ownership, "ownership", "o", quote.OwnershipLicense, "ownership model (license, shared, full or a model name)")
}

// format resolves the output format from the flag or config
func format() (output.Format, error) {
	f := outputFormat
	if f == "" {
		f = config.Get().Output.DefaultFormat
	}
	return output.ParseFormat(f)
}

func runProject(cmd *cobra.Command, args []string) error {
	f, err := format()
	if err != nil {
		return err
	}
	hours, err := decimal.NewFromString(args[1])
	if err != nil {
		return errors.Wrapf(errors.TypeInput, err, "invalid hours %q", args[1])
	}

	calc, err := newCalculator()
	if err != nil {
		return err
	}
	res, err := calc.ProjectCost(hours, args[0], ownership)
	if err != nil {
		return err
	}

	if f == output.FormatJSON {
		return output.JSON(cmd.OutOrStdout(), res)
	}

	w := newWriter(cmd)
	w.SubHeader(fmt.Sprintf("%s, %sh × %s (%s):", res.Role, w.Number(res.Hours), w.Amount(res.HourlyRate), res.OwnershipModel))
	report.WriteProjectCost(w, res, report.VATLabel(calc.Catalog().VATRate()))
	return nil
}

func runHosting(cmd *cobra.Command, args []string) error {
	f, err := format()
	if err != nil {
		return err
	}
	calc, err := newCalculator()
	if err != nil {
		return err
	}
	h, err := calc.HostingMonthly(args[0])
	if err != nil {
		return err
	}

	if f == output.FormatJSON {
		return output.JSON(cmd.OutOrStdout(), struct {
			quote.Hosting
			Annual decimal.Decimal `json:"annual"`
		}{h, h.Annual()})
	}

	w := newWriter(cmd)
	report.WriteHosting(w, h)
	if len(h.Specs) > 0 {
		w.Field("Specifikation", formatSpecs(h.Specs))
	}
	return nil
}

func runSupport(cmd *cobra.Command, args []string) error {
	f, err := format()
	if err != nil {
		return err
	}
	calc, err := newCalculator()
	if err != nil {
		return err
	}
	s, err := calc.SupportAnnual(args[0])
	if err != nil {
		return err
	}

	if f == output.FormatJSON {
		return output.JSON(cmd.OutOrStdout(), s)
	}

	report.WriteSupport(newWriter(cmd), s)
	return nil
}

func runService(cmd *cobra.Command, args []string) error {
	f, err := format()
	if err != nil {
		return err
	}
	calc, err := newCalculator()
	if err != nil {
		return err
	}
	svc, err := calc.PackagedService(args[0])
	if err != nil {
		return err
	}

	if f == output.FormatJSON {
		return output.JSON(cmd.OutOrStdout(), svc)
	}

	report.WriteService(newWriter(cmd), svc)
	return nil
}

// formatSpecs renders specs as sorted key=value pairs
func formatSpecs(specs map[string]any) string {
	keys := make([]string, 0, len(specs))
	for k := range specs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, specs[k])
	}
	return strings.Join(parts, ", ")
}
