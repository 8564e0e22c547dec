// Package cmd - price list inspection
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"siteflow-quote/core/catalog"
	"siteflow-quote/internal/errors"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the contents of the price list",
	Long: `List hourly rates, ownership models, hosting packages, support
levels and packaged services of the configured price list.`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check that a price list file loads",
	Long: `Load a price list file (.json, .yaml, .yml or .hcl) and report what
it contains. Missing required fields are reported with the field path.
Inconsistencies such as duplicate names or hosting totals that do not
add up are listed and make the command fail.`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogValidate,
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	calc, err := newCalculator()
	if err != nil {
		return err
	}
	cat := calc.Catalog()
	w := newWriter(cmd)

	company := cat.Company()
	if company.Name != "" {
		w.Banner(company.Name)
	}
	w.Println("Valuta: %s, moms: %s%%", company.Currency, w.Number(cat.VATRate().Shift(2)))

	w.Blank()
	w.SubHeader("Timpriser")
	t := w.NewTable("Roll", "Timpris")
	for _, r := range cat.HourlyRates() {
		t.AddRow(r.Role, w.Amount(r.PricePerHour))
	}
	t.Render()

	w.Blank()
	w.SubHeader("Ägandemodeller")
	t = w.NewTable("Modell", "Multiplier", "Beskrivning")
	for _, m := range cat.OwnershipModels() {
		mult := "-"
		if m.HasMultiplier() {
			mult = w.Multiplier(*m.Multiplier)
		}
		t.AddRow(m.Name, mult, m.Description)
	}
	t.Render()

	w.Blank()
	w.SubHeader("Hosting")
	t = w.NewTable("Paket", "Fly.io", "Förvaltning", "Totalt")
	for _, p := range cat.HostingPackages() {
		t.AddRow(p.Name,
			w.Monthly(p.Costs.FlyioMonthly),
			w.Monthly(p.Costs.SiteflowManagementMonthly),
			w.Monthly(p.Costs.TotalMonthly))
	}
	t.Render()

	w.Blank()
	w.SubHeader("Support")
	t = w.NewTable("Nivå", "Pris", "SLA", "Timmar")
	for _, s := range cat.SupportPackages() {
		t.AddRow(s.Name, w.Monthly(s.PriceMonthly), s.SLAResponseTime, w.Number(s.DevelopmentHoursMonthly))
	}
	t.Render()

	w.Blank()
	w.SubHeader("Paketerade tjänster")
	t = w.NewTable("Tjänst", "Pris", "Tidsåtgång")
	for _, s := range cat.PackagedServices() {
		t.AddRow(s.Name, fmt.Sprintf("%s - %s", w.Number(s.PriceMin), w.Amount(s.PriceMax)), s.Duration)
	}
	t.Render()
	return nil
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load(args[0])
	if err != nil {
		return err
	}

	problems := cat.Validate(catalog.DefaultValidationRules())
	stats := cat.Stats()
	w := newWriter(cmd)
	if len(problems) == 0 {
		w.Highlight("✓ %s", args[0])
	} else {
		w.Error("%s", args[0])
	}
	w.Field("Roller", fmt.Sprint(stats.HourlyRates))
	w.Field("Ägandemodeller", fmt.Sprint(stats.OwnershipModels))
	w.Field("Hostingpaket", fmt.Sprint(stats.HostingPackages))
	w.Field("Supportnivåer", fmt.Sprint(stats.SupportPackages))
	w.Field("Tjänster", fmt.Sprint(stats.PackagedServices))

	for _, p := range problems {
		w.Warning("%v", p)
	}
	if len(problems) > 0 {
		return errors.Newf(errors.TypeCatalogMalformed, "%s has %d inconsistencies", args[0], len(problems))
	}
	return nil
}
