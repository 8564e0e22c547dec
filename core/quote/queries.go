package quote

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"siteflow-quote/core/catalog"
	"siteflow-quote/internal/errors"
)

// Hosting is a hosting package as priced in the catalog
type Hosting struct {
	Package string               `json:"package"`
	Specs   map[string]any       `json:"specs,omitempty"`
	Costs   catalog.HostingCosts `json:"costs"`
}

// Annual is the yearly hosting cost
func (h Hosting) Annual() decimal.Decimal {
	return h.Costs.TotalMonthly.Mul(monthsPerYear)
}

// HostingMonthly returns the monthly costs of a hosting package unmodified
func (c *Calculator) HostingMonthly(packageName string) (Hosting, error) {
	pkg, ok := c.catalog.HostingPackage(packageName)
	if !ok {
		return Hosting{}, errors.PackageNotFound(packageName)
	}

	c.log.Debug("hosting cost",
		zap.String("package", pkg.Name),
		zap.String("total_monthly", pkg.Costs.TotalMonthly.String()),
	)
	return Hosting{
		Package: pkg.Name,
		Specs:   pkg.Specs,
		Costs:   pkg.Costs,
	}, nil
}

// Support is the cost of a support level
type Support struct {
	Level           string          `json:"level"`
	Monthly         decimal.Decimal `json:"monthly"`
	Annual          decimal.Decimal `json:"annual"`
	SLA             string          `json:"sla"`
	DevHoursMonthly decimal.Decimal `json:"dev_hours_monthly"`
}

// SupportAnnual returns monthly and yearly cost of a support level
func (c *Calculator) SupportAnnual(level string) (Support, error) {
	pkg, ok := c.catalog.SupportPackage(level)
	if !ok {
		return Support{}, errors.LevelNotFound(level)
	}

	c.log.Debug("support cost",
		zap.String("level", pkg.Name),
		zap.String("monthly", pkg.PriceMonthly.String()),
	)
	return Support{
		Level:           pkg.Name,
		Monthly:         pkg.PriceMonthly,
		Annual:          pkg.PriceMonthly.Mul(monthsPerYear),
		SLA:             pkg.SLAResponseTime,
		DevHoursMonthly: pkg.DevelopmentHoursMonthly,
	}, nil
}

// PackagedService returns the catalog record of a packaged service
func (c *Calculator) PackagedService(name string) (catalog.PackagedService, error) {
	svc, ok := c.catalog.PackagedService(name)
	if !ok {
		return catalog.PackagedService{}, errors.ServiceNotFound(name)
	}
	return svc, nil
}

// RecurringCost is the combined running cost of hosting and support
type RecurringCost struct {
	HostingMonthly decimal.Decimal `json:"hosting_monthly"`
	SupportMonthly decimal.Decimal `json:"support_monthly"`
	Monthly        decimal.Decimal `json:"monthly"`
	Annual         decimal.Decimal `json:"annual"`
}

// Recurring combines a hosting and a support quote
func Recurring(h Hosting, s Support) RecurringCost {
	monthly := h.Costs.TotalMonthly.Add(s.Monthly)
	return RecurringCost{
		HostingMonthly: h.Costs.TotalMonthly,
		SupportMonthly: s.Monthly,
		Monthly:        monthly,
		Annual:         monthly.Mul(monthsPerYear),
	}
}

// Totals sums the line items of a project
type Totals struct {
	BaseCost     decimal.Decimal `json:"base_cost"`
	FinalCost    decimal.Decimal `json:"final_cost"`
	VAT          decimal.Decimal `json:"vat"`
	TotalWithVAT decimal.Decimal `json:"total_with_vat"`
}

// ProjectTotal sums base, final and VAT over lines.
// TotalWithVAT is final plus VAT.
func ProjectTotal(lines ...ProjectCost) Totals {
	t := Totals{
		BaseCost:  decimal.Zero,
		FinalCost: decimal.Zero,
		VAT:       decimal.Zero,
	}
	for _, l := range lines {
		t.BaseCost = t.BaseCost.Add(l.BaseCost)
		t.FinalCost = t.FinalCost.Add(l.FinalCost)
		t.VAT = t.VAT.Add(l.VAT)
	}
	t.TotalWithVAT = t.FinalCost.Add(t.VAT)
	return t
}
