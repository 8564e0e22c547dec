// Package catalog - Catalog validation
// Consistency checks beyond the required fields. Problems are reported,
// never repaired; lookups keep using the data as written.
package catalog

import (
	"github.com/shopspring/decimal"

	"siteflow-quote/internal/errors"
)

// ValidationRule checks one aspect of a catalog
type ValidationRule func(*Catalog) []error

// DefaultValidationRules returns the standard validation rules
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validateUniqueNames,
		validateNonNegative,
		validateHostingTotals,
		validateServiceRanges,
	}
}

// Validate checks a catalog against validation rules
func (c *Catalog) Validate(rules []ValidationRule) []error {
	var problems []error
	for _, rule := range rules {
		problems = append(problems, rule(c)...)
	}
	return problems
}

func problem(section, name, format string, args ...interface{}) error {
	return errors.Newf(errors.TypeCatalogMalformed, section+" %q: "+format, append([]interface{}{name}, args...)...).
		WithContext("section", section).
		WithContext("name", name)
}

// validateUniqueNames flags shadowed entries; lookups return the first match
func validateUniqueNames(c *Catalog) []error {
	var problems []error
	check := func(section string, names []string) {
		seen := make(map[string]bool, len(names))
		for _, n := range names {
			if seen[n] {
				problems = append(problems, problem(section, n, "duplicate entry is never matched"))
			}
			seen[n] = true
		}
	}

	d := c.data
	names := make([]string, 0, len(d.HourlyRates))
	for _, r := range d.HourlyRates {
		names = append(names, r.Role)
	}
	check("hourly_rates", names)

	names = names[:0]
	for _, m := range d.OwnershipModels {
		names = append(names, m.Name)
	}
	check("ownership_models", names)

	names = names[:0]
	for _, p := range d.HostingPackages {
		names = append(names, p.Name)
	}
	check("hosting_packages", names)

	names = names[:0]
	for _, s := range d.SupportPackages {
		names = append(names, s.Name)
	}
	check("support_packages", names)

	names = names[:0]
	for _, s := range d.PackagedServices {
		names = append(names, s.Name)
	}
	check("packaged_services", names)
	return problems
}

func validateNonNegative(c *Catalog) []error {
	var problems []error
	neg := func(section, name, field string, v decimal.Decimal) {
		if v.IsNegative() {
			problems = append(problems, problem(section, name, "%s is negative: %s", field, v))
		}
	}

	d := c.data
	neg("company", d.Company.Name, "vat_rate", d.Company.VATRate)
	for _, r := range d.HourlyRates {
		neg("hourly_rates", r.Role, "price_per_hour", r.PricePerHour)
	}
	for _, m := range d.OwnershipModels {
		if m.HasMultiplier() {
			neg("ownership_models", m.Name, "multiplier", *m.Multiplier)
		}
	}
	for _, p := range d.HostingPackages {
		neg("hosting_packages", p.Name, "total_monthly", p.Costs.TotalMonthly)
	}
	for _, s := range d.SupportPackages {
		neg("support_packages", s.Name, "price_monthly", s.PriceMonthly)
		neg("support_packages", s.Name, "development_hours_monthly", s.DevelopmentHoursMonthly)
	}
	for _, s := range d.PackagedServices {
		neg("packaged_services", s.Name, "price_min", s.PriceMin)
	}
	return problems
}

// validateHostingTotals checks total_monthly against its parts
func validateHostingTotals(c *Catalog) []error {
	var problems []error
	for _, p := range c.data.HostingPackages {
		sum := p.Costs.FlyioMonthly.Add(p.Costs.SiteflowManagementMonthly)
		if !sum.Equal(p.Costs.TotalMonthly) {
			problems = append(problems, problem("hosting_packages", p.Name,
				"total_monthly %s differs from flyio_monthly + siteflow_management_monthly = %s",
				p.Costs.TotalMonthly, sum))
		}
	}
	return problems
}

func validateServiceRanges(c *Catalog) []error {
	var problems []error
	for _, s := range c.data.PackagedServices {
		if s.PriceMin.GreaterThan(s.PriceMax) {
			problems = append(problems, problem("packaged_services", s.Name,
				"price_min %s exceeds price_max %s", s.PriceMin, s.PriceMax))
		}
	}
	return problems
}
